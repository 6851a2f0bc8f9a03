package controllers

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/db"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/utils"
)

// doctorEmailDomain is the organisational marker that assigns the doctor role
// at registration.
func doctorEmailDomain() string {
	domain := os.Getenv("DOCTOR_EMAIL_DOMAIN")
	if domain == "" {
		domain = "org.doctor"
	}
	return domain
}

// Register creates a user and, for doctor registrations, the empty doctor
// profile that goes with it. A signed access token is returned right away.
func Register(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Cannot parse JSON",
		})
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Missing required fields",
		})
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	// Duplicate username or email both count as a conflict.
	var existing models.User
	err := db.Users().FindOne(ctx, bson.M{
		"$or": []bson.M{
			{"username": input.Username},
			{"email": input.Email},
		},
	}).Decode(&existing)
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"msg": "User with this username or email already exists",
		})
	}
	if err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to check existing users",
		})
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to hash password",
		})
	}

	role := models.RoleForEmail(input.Email, doctorEmailDomain())
	now := time.Now()
	user := models.User{
		Username:   input.Username,
		Email:      input.Email,
		Password:   hashedPassword,
		Role:       role,
		IsApproved: role != models.RoleDoctor, // doctors wait for admin approval
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result, err := db.Users().InsertOne(ctx, user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to create user",
		})
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	if role == models.RoleDoctor {
		profile := models.NewDoctorProfile(user.ID)
		if _, err := db.DoctorProfiles().InsertOne(ctx, profile); err != nil {
			// Compensate so a failed registration can simply be retried.
			if _, delErr := db.Users().DeleteOne(ctx, bson.M{"_id": user.ID}); delErr != nil {
				log.Printf("Failed to roll back user %s after profile error: %v", user.ID.Hex(), delErr)
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Failed to create doctor profile",
			})
		}
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to generate token",
		})
	}

	user.Sanitize()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":   "Registration successful",
		"user":  user,
		"token": token,
	})
}

// Login authenticates by email and password. A missing user and a wrong
// password return the same message so accounts cannot be enumerated.
func Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Cannot parse JSON",
		})
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	var user models.User
	err := db.Users().FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
	if err != nil || !utils.CheckPasswordHash(input.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "Invalid Credentials",
		})
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to generate token",
		})
	}

	user.Sanitize()
	return c.JSON(fiber.Map{
		"msg":   "Login successful",
		"user":  user,
		"token": token,
	})
}

// GetCurrentUser returns the caller's own record, password excluded.
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "token not valid",
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

	user.Sanitize()
	return c.JSON(user)
}

// Logout doesn't invalidate the token as JWTs are stateless.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"msg": "Successfully logged out",
	})
}
