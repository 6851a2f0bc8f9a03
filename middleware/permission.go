package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
)

// RequireRoles gates a route on the role embedded in the caller's token.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"msg": "Role not found in token",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"msg": "You don't have permission to perform this action",
		})
	}
}

// AdminOnly restricts a route to admins.
func AdminOnly() fiber.Handler {
	return RequireRoles(models.RoleAdmin)
}

// DoctorOnly restricts a route to doctors.
func DoctorOnly() fiber.Handler {
	return RequireRoles(models.RoleDoctor)
}

// CustomerOrAdmin restricts a route to customers and admins.
func CustomerOrAdmin() fiber.Handler {
	return RequireRoles(models.RoleCustomer, models.RoleAdmin)
}
