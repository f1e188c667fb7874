package main

import (
	"log"

	"courseportal/backend/config"
	"courseportal/backend/middleware"
	"courseportal/backend/routes"
	"courseportal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Access-Token",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg)

	// Static frontend, with index.html as the fallback for non-API paths
	app.Static("/", "./frontend")
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile("./frontend/index.html")
	})

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
