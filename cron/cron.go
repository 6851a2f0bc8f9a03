package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/db"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/models"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/utils"
)

// StartCronJobs initializes and starts the scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	_, err := c.AddFunc("@hourly", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders mails every customer with a scheduled appointment
// tomorrow. Batch mail, not a real-time channel.
func sendAppointmentReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	ctx, cancel := db.Ctx()
	defer cancel()

	cursor, err := db.Appointments().Find(ctx, bson.M{
		"date":   tomorrow,
		"status": models.StatusScheduled,
	})
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		log.Printf("Error decoding appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		var customer models.User
		if err := db.Users().FindOne(ctx, bson.M{"_id": appointment.CustomerID}).Decode(&customer); err != nil {
			log.Printf("Customer %s not found for reminder: %v", appointment.CustomerID.Hex(), err)
			continue
		}
		if err := sendReminderEmail(&customer, &appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %s: %v", appointment.ID.Hex(), err)
			continue
		}
		log.Printf("Sent reminder for appointment %s to %s", appointment.ID.Hex(), customer.Email)
	}
}

func sendReminderEmail(customer *models.User, appointment *models.Appointment) error {
	subject := "Reminder: Upcoming Appointment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your appointment tomorrow.</p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, do so as soon as possible.</p>
		<p>Best regards,<br>DocSpot</p>
	`, customer.Username, appointment.Date, appointment.Time)

	return utils.SendEmail(customer.Email, subject, body)
}
