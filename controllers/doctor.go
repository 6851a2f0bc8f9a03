package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/db"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
)

// UpsertDoctorProfile creates or updates the caller's practice details. The
// approval flag is never touched here; only the admin approval operation
// changes it.
func UpsertDoctorProfile(c *fiber.Ctx) error {
	var input struct {
		Specialty  string `json:"specialty"`
		ClinicName string `json:"clinic_name"`
		Address    string `json:"address"`
		Phone      string `json:"phone"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Cannot parse JSON",
		})
	}

	userID, err := primitive.ObjectIDFromHex(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "token not valid",
		})
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	now := time.Now()
	var profile models.DoctorProfile
	err = db.DoctorProfiles().FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		profile = models.NewDoctorProfile(userID)
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to fetch doctor profile",
		})
	}

	if input.Specialty != "" {
		profile.Specialty = input.Specialty
	}
	profile.ClinicName = input.ClinicName
	profile.Address = input.Address
	profile.Phone = input.Phone
	profile.UpdatedAt = now

	if profile.ID.IsZero() {
		result, err := db.DoctorProfiles().InsertOne(ctx, profile)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Failed to create doctor profile",
			})
		}
		profile.ID = result.InsertedID.(primitive.ObjectID)
	} else {
		update := bson.M{"$set": bson.M{
			"specialty":  profile.Specialty,
			"clinicName": profile.ClinicName,
			"address":    profile.Address,
			"phone":      profile.Phone,
			"updatedAt":  now,
		}}
		if _, err := db.DoctorProfiles().UpdateOne(ctx, bson.M{"_id": profile.ID}, update); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Failed to update doctor profile",
			})
		}
	}

	invalidateDoctorsCache()

	return c.JSON(fiber.Map{
		"msg":     "Profile saved successfully",
		"profile": profile,
	})
}

// GetMyDoctorProfile returns the caller's own profile.
func GetMyDoctorProfile(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "token not valid",
		})
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	var profile models.DoctorProfile
	if err := db.DoctorProfiles().FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"msg": "Doctor profile not found",
		})
	}

	return c.JSON(profile)
}

// GetDoctorAppointments lists the caller's appointments ordered by date and
// time. Emergency reprioritisation is a display concern left to the client.
func GetDoctorAppointments(c *fiber.Ctx) error {
	doctorID, err := primitive.ObjectIDFromHex(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "token not valid",
		})
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := db.Appointments().Find(ctx, bson.M{"doctorId": doctorID}, sort)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to fetch appointments",
		})
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to decode appointments",
		})
	}

	return c.JSON(appointments)
}

// UpdateAppointmentStatus moves an appointment through the status table and
// optionally reschedules its date and time in the same operation.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	var input struct {
		Status models.AppointmentStatus `json:"status"`
		Date   string                   `json:"date"`
		Time   string                   `json:"time"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Cannot parse JSON",
		})
	}

	appointmentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Invalid appointment ID",
		})
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	var appointment models.Appointment
	if err := db.Appointments().FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"msg": "Appointment not found",
		})
	}

	if appointment.DoctorID.Hex() != callerID(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "You are not authorized to update this appointment",
		})
	}

	now := time.Now()
	set := bson.M{"updatedAt": now}

	if input.Status != "" {
		if !models.IsValidStatus(input.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": "Invalid appointment status",
			})
		}
		if err := appointment.CanTransitionTo(input.Status); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"msg": err.Error(),
			})
		}
		set["status"] = input.Status
		appointment.Status = input.Status
	}
	if input.Date != "" {
		set["date"] = input.Date
		appointment.Date = input.Date
	}
	if input.Time != "" {
		set["time"] = input.Time
		appointment.Time = input.Time
	}

	// Compare-and-swap on the version field so concurrent writers lose
	// cleanly instead of overwriting each other.
	filter := bson.M{"_id": appointmentID, "version": appointment.Version}
	result, err := db.Appointments().UpdateOne(ctx, filter, bson.M{
		"$set": set,
		"$inc": bson.M{"version": 1},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to update appointment",
		})
	}
	if result.ModifiedCount == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"msg": "Appointment was updated by another request, please retry",
		})
	}

	appointment.Version++
	appointment.UpdatedAt = now
	return c.JSON(fiber.Map{
		"msg":         "Appointment updated successfully",
		"appointment": appointment,
	})
}
