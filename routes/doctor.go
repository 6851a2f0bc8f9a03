package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/controllers"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/middleware"
)

// SetupDoctorRoutes configures all doctor related routes
func SetupDoctorRoutes(app *fiber.App) {
	doctor := app.Group("/doctor", middleware.Protected(), middleware.DoctorOnly())
	doctor.Post("/profile", controllers.UpsertDoctorProfile)
	doctor.Get("/profile/me", controllers.GetMyDoctorProfile)
	doctor.Get("/appointments", controllers.GetDoctorAppointments)
	doctor.Put("/appointments/:id/status", controllers.UpdateAppointmentStatus)
}
