package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/utils"
)

// TokenHeader is the custom request header carrying the access token. The
// raw token is sent as-is, with no auth scheme prefix.
const TokenHeader = "x-auth-token"

// Protected validates the access token and loads the caller's identity into
// the request locals. The decoded role and approval flag are trusted for the
// rest of the request; they are not re-checked against the store.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(TokenHeader)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "no token",
			})
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(utils.JWTSecret()), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "token not valid",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "token not valid",
			})
		}

		userID, ok := claims["id"].(string)
		if !ok || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "token not valid",
			})
		}
		role, ok := claims["role"].(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "token not valid",
			})
		}

		username, _ := claims["username"].(string)
		isApproved, _ := claims["is_approved"].(bool)

		c.Locals("userID", userID)
		c.Locals("role", role)
		c.Locals("username", username)
		c.Locals("isApproved", isApproved)

		return c.Next()
	}
}
