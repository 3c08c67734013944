package main

import (
	"log"
	"time"

	"elimu/certificates"
	"elimu/config"
	courseControllers "elimu/controllers/course"
	"elimu/database"
	authRoutes "elimu/routers/authRoutes"
	courseRoutes "elimu/routers/courseRoutes"
	dashboardRoutes "elimu/routers/dashboardRoutes"
	feedbackRoutes "elimu/routers/feedbackRoutes"
	userRoutes "elimu/routers/userRoutes"
	"elimu/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	renderer := certificates.NewHTTPRenderer(
		config.AppConfig.RendererURL,
		time.Duration(config.AppConfig.RendererTimeoutSec)*time.Second,
	)

	store, err := certificates.NewCloudinaryStore(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
		time.Duration(config.AppConfig.RendererTimeoutSec)*time.Second,
	)
	if err != nil {
		log.Fatalf("Failed to initialize certificate storage: %v", err)
	}

	courseControllers.CertService = certificates.NewService(database.Database.Db, renderer, store)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	feedbackRoutes.SetupFeedbackRoutes(app)

	utils.StartScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
