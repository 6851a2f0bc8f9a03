package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/db"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/redis"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/utils"
)

const (
	doctorsCacheKey = "doctors:approved"
	doctorsCacheTTL = time.Minute
)

// invalidateDoctorsCache drops the cached approved-doctor listing. Called
// whenever approval state or the doctor population changes.
func invalidateDoctorsCache() {
	if redis.Client == nil {
		return
	}
	if err := redis.Client.Del(redis.Ctx, doctorsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate doctors cache: %v", err)
	}
}

// ApprovedDoctor is the booking-facing view of a doctor, joining the profile
// with the owning user's public identity.
type ApprovedDoctor struct {
	UserID     primitive.ObjectID `json:"user_id"`
	Username   string             `json:"username"`
	Email      string             `json:"email"`
	Specialty  string             `json:"specialty"`
	ClinicName string             `json:"clinic_name,omitempty"`
	Address    string             `json:"address,omitempty"`
	Phone      string             `json:"phone,omitempty"`
}

// GetApprovedDoctors lists every doctor a customer can book against. The
// listing is served from Redis when a fresh copy is cached.
func GetApprovedDoctors(c *fiber.Ctx) error {
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, doctorsCacheKey).Result(); err == nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(cached)
		}
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	cursor, err := db.DoctorProfiles().Find(ctx, bson.M{"isApproved": true})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to fetch doctors",
		})
	}
	defer cursor.Close(ctx)

	var profiles []models.DoctorProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to decode doctors",
		})
	}

	userIDs := make([]primitive.ObjectID, 0, len(profiles))
	for _, profile := range profiles {
		userIDs = append(userIDs, profile.UserID)
	}

	usersByID := make(map[primitive.ObjectID]models.User, len(userIDs))
	if len(userIDs) > 0 {
		userCursor, err := db.Users().Find(ctx, bson.M{"_id": bson.M{"$in": userIDs}})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Failed to fetch doctor accounts",
			})
		}
		defer userCursor.Close(ctx)

		var users []models.User
		if err := userCursor.All(ctx, &users); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"msg": "Failed to decode doctor accounts",
			})
		}
		for _, user := range users {
			usersByID[user.ID] = user
		}
	}

	doctors := make([]ApprovedDoctor, 0, len(profiles))
	for _, profile := range profiles {
		user := usersByID[profile.UserID]
		doctors = append(doctors, ApprovedDoctor{
			UserID:     profile.UserID,
			Username:   user.Username,
			Email:      user.Email,
			Specialty:  profile.Specialty,
			ClinicName: profile.ClinicName,
			Address:    profile.Address,
			Phone:      profile.Phone,
		})
	}

	if redis.Client != nil {
		if payload, err := json.Marshal(doctors); err == nil {
			if err := redis.Client.Set(redis.Ctx, doctorsCacheKey, payload, doctorsCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache doctors listing: %v", err)
			}
		}
	}

	return c.JSON(doctors)
}

// BookAppointment creates a pending, unpaid appointment against an approved
// doctor.
func BookAppointment(c *fiber.Ctx) error {
	var input struct {
		DoctorID    string   `json:"doctor_id"`
		Date        string   `json:"date"`
		Time        string   `json:"time"`
		Documents   []string `json:"documents"`
		Notes       string   `json:"notes"`
		IsEmergency bool     `json:"is_emergency"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Cannot parse JSON",
		})
	}

	if input.DoctorID == "" || input.Date == "" || input.Time == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Missing required fields",
		})
	}

	doctorID, err := primitive.ObjectIDFromHex(input.DoctorID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Invalid doctor ID",
		})
	}
	customerID, err := primitive.ObjectIDFromHex(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "token not valid",
		})
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	// Only doctors with an approved profile are bookable.
	var profile models.DoctorProfile
	err = db.DoctorProfiles().FindOne(ctx, bson.M{"userId": doctorID}).Decode(&profile)
	if err != nil || !profile.IsApproved {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Doctor is not available for booking",
		})
	}

	if input.Documents == nil {
		input.Documents = []string{}
	}

	now := time.Now()
	appointment := models.Appointment{
		CustomerID:    customerID,
		DoctorID:      doctorID,
		Date:          input.Date,
		Time:          input.Time,
		Documents:     input.Documents,
		Notes:         input.Notes,
		IsEmergency:   input.IsEmergency,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	result, err := db.Appointments().InsertOne(ctx, appointment)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to create appointment",
		})
	}
	appointment.ID = result.InsertedID.(primitive.ObjectID)

	// Confirmation mail is best-effort; the booking stands either way.
	var customer models.User
	if err := db.Users().FindOne(ctx, bson.M{"_id": customerID}).Decode(&customer); err == nil {
		go sendBookingConfirmation(&customer, &appointment)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":         "Appointment booked successfully",
		"appointment": appointment,
	})
}

func sendBookingConfirmation(customer *models.User, appointment *models.Appointment) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been booked.</p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Best regards,<br>DocSpot</p>
	`, customer.Username, appointment.Date, appointment.Time, appointment.Status)

	if err := utils.SendEmail(customer.Email, "Appointment Confirmation", body); err != nil {
		log.Printf("Failed to send booking confirmation to %s: %v", customer.Email, err)
	}
}

// GetMyAppointments lists the caller's own appointments.
func GetMyAppointments(c *fiber.Ctx) error {
	customerID, err := primitive.ObjectIDFromHex(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "token not valid",
		})
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := db.Appointments().Find(ctx, bson.M{"customerId": customerID}, sort)
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

// CancelAppointment sets an owned appointment to cancelled. Completed and
// already-cancelled appointments are rejected.
func CancelAppointment(c *fiber.Ctx) error {
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

	if !isOwnerOrAdmin(c, appointment.CustomerID) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "You are not authorized to cancel this appointment",
		})
	}

	if err := appointment.CanCancel(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": err.Error(),
		})
	}

	now := time.Now()
	filter := bson.M{"_id": appointmentID, "version": appointment.Version}
	result, err := db.Appointments().UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"status": models.StatusCancelled, "updatedAt": now},
		"$inc": bson.M{"version": 1},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to cancel appointment",
		})
	}
	if result.ModifiedCount == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"msg": "Appointment was updated by another request, please retry",
		})
	}

	appointment.Status = models.StatusCancelled
	appointment.Version++
	appointment.UpdatedAt = now
	return c.JSON(fiber.Map{
		"msg":         "Appointment cancelled successfully",
		"appointment": appointment,
	})
}

// PayAppointment simulates a payment. It always succeeds once the state
// checks pass; a pending appointment is promoted to scheduled.
func PayAppointment(c *fiber.Ctx) error {
	var input struct {
		Method string `json:"method"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Cannot parse JSON",
		})
	}
	if input.Method == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": "Payment method is required",
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

	if !isOwnerOrAdmin(c, appointment.CustomerID) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"msg": "You are not authorized to pay for this appointment",
		})
	}

	if err := appointment.CanPay(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"msg": err.Error(),
		})
	}

	appointment.ApplyPayment()

	now := time.Now()
	filter := bson.M{"_id": appointmentID, "version": appointment.Version}
	result, err := db.Appointments().UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{
			"status":        appointment.Status,
			"paymentStatus": appointment.PaymentStatus,
			"updatedAt":     now,
		},
		"$inc": bson.M{"version": 1},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"msg": "Failed to record payment",
		})
	}
	if result.ModifiedCount == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"msg": "Appointment was updated by another request, please retry",
		})
	}

	payment := models.Payment{
		AppointmentID: appointmentID,
		CustomerID:    appointment.CustomerID,
		Method:        input.Method,
		TransactionID: uuid.NewString(),
		CreatedAt:     now,
	}
	paymentResult, err := db.Payments().InsertOne(ctx, payment)
	if err != nil {
		log.Printf("Failed to record payment receipt for appointment %s: %v", appointmentID.Hex(), err)
	} else {
		payment.ID = paymentResult.InsertedID.(primitive.ObjectID)
	}

	appointment.Version++
	appointment.UpdatedAt = now
	return c.JSON(fiber.Map{
		"msg":         "Payment successful",
		"appointment": appointment,
		"payment":     payment,
	})
}
