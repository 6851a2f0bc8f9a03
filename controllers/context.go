package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
)

// callerID returns the caller's user id as stored in the token claims.
func callerID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

// callerRole returns the caller's role as stored in the token claims.
func callerRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

// isOwnerOrAdmin reports whether the caller owns the record or is an admin.
func isOwnerOrAdmin(c *fiber.Ctx, owner primitive.ObjectID) bool {
	return owner.Hex() == callerID(c) || callerRole(c) == models.RoleAdmin
}
