package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/controllers"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/middleware"
)

// SetupCustomerRoutes configures all customer related routes
func SetupCustomerRoutes(app *fiber.App) {
	customer := app.Group("/customer", middleware.Protected(), middleware.CustomerOrAdmin())
	customer.Get("/doctors", controllers.GetApprovedDoctors)
	customer.Post("/appointments", controllers.BookAppointment)
	customer.Get("/appointments/me", controllers.GetMyAppointments)
	customer.Put("/appointments/:id/cancel", controllers.CancelAppointment)
	customer.Post("/appointments/:id/pay", controllers.PayAppointment)
}
