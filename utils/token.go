package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
)

// JWTSecret returns the signing key for access tokens.
func JWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return secret
}

// TokenExpiry returns the validity window for access tokens.
func TokenExpiry() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_MINUTES"))
	if err != nil || minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

// GenerateToken signs the access credential for a user. The embedded role and
// approval flag are trusted for the token's whole lifetime; a later role or
// approval change is only picked up at the next login.
func GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":          user.ID.Hex(),
		"username":    user.Username,
		"role":        user.Role,
		"is_approved": user.IsApproved,
		"exp":         time.Now().Add(TokenExpiry()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(JWTSecret()))
}
