package main

import (
	"log"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	authRoutes "learnhub/routers/authRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	instructorRoutes "learnhub/routers/instructorRoutes"
	uploadRoutes "learnhub/routers/uploadRoutes"
	userRoutes "learnhub/routers/userRoutes"
	"learnhub/storage"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	storage.InitStorage()
	utils.InitializeReconcileScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: false,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve locally stored uploads (object-store fallback)
	app.Static("/uploads", "./"+config.AppConfig.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Login landing for unauthenticated UI redirects; the real login UI is
	// served by the frontend deployment
	app.Get("/login", func(c *fiber.Ctx) error {
		return c.SendString("Sign in to continue.")
	})

	// Every route below the gate sees only authenticated mutating requests
	app.Use(middleware.AuthGate)

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	userRoutes.SetupUserRoutes(app)
	instructorRoutes.SetupInstructorRoutes(app)
	uploadRoutes.SetupUploadRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
