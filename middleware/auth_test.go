package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/utils"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", Protected(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  c.Locals("userID"),
			"role":     c.Locals("role"),
			"username": c.Locals("username"),
		})
	})
	return app
}

func TestProtected_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	user := &models.User{
		ID:         primitive.NewObjectID(),
		Username:   "alice",
		Role:       models.RoleCustomer,
		IsApproved: true,
	}
	token, err := utils.GenerateToken(user)
	assert.NoError(t, err)

	app := protectedApp()
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(TokenHeader, token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, user.ID.Hex(), body["user_id"])
	assert.Equal(t, models.RoleCustomer, body["role"])
	assert.Equal(t, "alice", body["username"])
}

func TestProtected_MissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	app := protectedApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "no token", body["msg"])
}

func TestProtected_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	app := protectedApp()
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(TokenHeader, "not.a.token")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "token not valid", body["msg"])
}

func TestProtected_TokenSignedWithWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret1")
	user := &models.User{ID: primitive.NewObjectID(), Username: "bob", Role: models.RoleDoctor}
	token, err := utils.GenerateToken(user)
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret2")
	app := protectedApp()
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(TokenHeader, token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
