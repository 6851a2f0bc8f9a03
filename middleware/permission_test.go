package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
)

// appWithRole mounts a gated route behind a stub that injects the given role,
// the way Protected() would after decoding a token.
func appWithRole(role string, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("role", role)
		}
		return c.Next()
	})
	app.Get("/resource", gate, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name string
		role string
		gate fiber.Handler
		want int
	}{
		{"admin passes admin gate", models.RoleAdmin, AdminOnly(), fiber.StatusOK},
		{"doctor fails admin gate", models.RoleDoctor, AdminOnly(), fiber.StatusForbidden},
		{"doctor passes doctor gate", models.RoleDoctor, DoctorOnly(), fiber.StatusOK},
		{"customer fails doctor gate", models.RoleCustomer, DoctorOnly(), fiber.StatusForbidden},
		{"customer passes customer gate", models.RoleCustomer, CustomerOrAdmin(), fiber.StatusOK},
		{"admin passes customer gate", models.RoleAdmin, CustomerOrAdmin(), fiber.StatusOK},
		{"doctor fails customer gate", models.RoleDoctor, CustomerOrAdmin(), fiber.StatusForbidden},
		{"no role fails every gate", "", AdminOnly(), fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appWithRole(tt.role, tt.gate)
			resp, err := app.Test(httptest.NewRequest("GET", "/resource", nil))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
