package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"hrmarket/backend/config"
	"hrmarket/backend/gateway"
	"hrmarket/backend/middleware"
	"hrmarket/backend/routes"
	"hrmarket/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database connection
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger(cfg.LogLevel)

	// The gateway is the only path to the marketplace database
	gw := gateway.NewClient(db, logger)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Accept-Language",
	}))
	app.Use(middleware.LoggingMiddleware(logger))
	app.Use(middleware.LanguageMiddleware())

	// Setup routes
	routes.SetupRoutes(app, gw, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
