package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/controllers"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)

	// Protected routes
	auth.Get("/user", middleware.Protected(), controllers.GetCurrentUser)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
