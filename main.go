package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/cron"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/db"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/redis"
	"github.com/yaswanthi03/Docspot-Seamless-appointment-for-health/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	db.Init()
	redis.InitRedis()
	cron.StartCronJobs()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, x-auth-token",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("DocSpot API is running")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupCustomerRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
