package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
)

func TestGenerateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	t.Setenv("JWT_EXPIRE_MINUTES", "60")

	user := &models.User{
		ID:         primitive.NewObjectID(),
		Username:   "drwho",
		Role:       models.RoleDoctor,
		IsApproved: false,
	}

	tokenString, err := GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(JWTSecret()), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID.Hex(), claims["id"])
	assert.Equal(t, "drwho", claims["username"])
	assert.Equal(t, models.RoleDoctor, claims["role"])
	assert.Equal(t, false, claims["is_approved"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
}

func TestGenerateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret1")

	user := &models.User{ID: primitive.NewObjectID(), Username: "alice", Role: models.RoleCustomer}
	tokenString, err := GenerateToken(user)
	assert.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret2"), nil
	})
	assert.Error(t, err)
}

func TestTokenExpiry_Default(t *testing.T) {
	t.Setenv("JWT_EXPIRE_MINUTES", "")
	assert.Equal(t, time.Hour, TokenExpiry())

	t.Setenv("JWT_EXPIRE_MINUTES", "15")
	assert.Equal(t, 15*time.Minute, TokenExpiry())
}
