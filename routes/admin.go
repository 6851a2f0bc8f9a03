package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/controllers"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/middleware"
)

// SetupAdminRoutes configures all admin related routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.AdminOnly())
	admin.Get("/users", controllers.GetAllUsers)
	admin.Put("/doctors/:id/approve", controllers.ApproveDoctor)
	admin.Delete("/users/:id", controllers.DeleteUser)
}
