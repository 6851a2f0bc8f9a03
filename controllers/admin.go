package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/db"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
)

// GetAllUsers lists every user, password excluded.
func GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := db.Ctx()
	defer cancel()

	projection := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := db.Users().Find(ctx, bson.M{}, projection)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to fetch users",
		})
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to decode users",
		})
	}

	return c.JSON(users)
}

// ApproveDoctor marks a doctor and their profile as approved. Approval is
// one-way; there is no de-approval operation.
func ApproveDoctor(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Invalid user ID",
		})
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	var user models.User
	if err := db.Users().FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"msg": "User not found",
		})
	}
	if user.Role != models.RoleDoctor {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"msg": "User is not a doctor",
		})
	}

	var profile models.DoctorProfile
	if err := db.DoctorProfiles().FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"msg": "Doctor profile not found",
		})
	}

	now := time.Now()
	update := bson.M{"$set": bson.M{"isApproved": true, "updatedAt": now}}

	// The flag lives on both records; the profile copy drives listings, so it
	// is written first.
	if _, err := db.DoctorProfiles().UpdateOne(ctx, bson.M{"_id": profile.ID}, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to approve doctor profile",
		})
	}
	if _, err := db.Users().UpdateOne(ctx, bson.M{"_id": userID}, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to approve doctor",
		})
	}

	invalidateDoctorsCache()

	profile.IsApproved = true
	profile.UpdatedAt = now
	return c.JSON(fiber.Map{
		"msg":     "Doctor approved successfully",
		"profile": profile,
	})
}

// DeleteUser removes a user and cascades to their profile and appointments.
// Admin accounts cannot be deleted, and admins cannot delete themselves.
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == callerID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"msg": "Admins cannot delete their own account",
		})
	}

	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Invalid user ID",
		})
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	var user models.User
	if err := db.Users().FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"msg": "User not found",
		})
	}
	if user.Role == models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"msg": "Admin accounts cannot be deleted",
		})
	}

	// Dependents go first so a partial failure can simply be re-run.
	switch user.Role {
	case models.RoleDoctor:
		if _, err := db.Appointments().DeleteMany(ctx, bson.M{"doctorId": userID}); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Failed to delete doctor appointments",
			})
		}
		if _, err := db.DoctorProfiles().DeleteOne(ctx, bson.M{"userId": userID}); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Failed to delete doctor profile",
			})
		}
	case models.RoleCustomer:
		if _, err := db.Appointments().DeleteMany(ctx, bson.M{"customerId": userID}); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Failed to delete customer appointments",
			})
		}
	}

	if _, err := db.Users().DeleteOne(ctx, bson.M{"_id": userID}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to delete user",
		})
	}

	invalidateDoctorsCache()

	return c.JSON(fiber.Map{
		"msg": "User deleted successfully",
	})
}
