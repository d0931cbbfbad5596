package main

import (
	"log"
	"os"
	"time"

	"teamtask/config"
	"teamtask/database"
	"teamtask/handlers"
	"teamtask/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	cfg := config.Load()

	// Initialize database
	database.InitDB(cfg)
	defer func() {
		if err := database.CloseDB(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Wire handlers to services
	handlers.Init(database.GetDB(), cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      config.AppName,
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestId} ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)

	// User routes (require authentication)
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetCurrentUser)
	userGroup.Put("/me", handlers.UpdateCurrentUser)
	userGroup.Get("/me/tasks", handlers.GetMyTasks)

	// Team routes
	teamGroup := api.Group("/teams")
	teamGroup.Use(middleware.AuthMiddleware)
	teamGroup.Post("/", handlers.CreateTeam)
	teamGroup.Get("/", handlers.GetTeams)
	teamGroup.Get("/:id", handlers.GetTeam)
	teamGroup.Put("/:id", handlers.UpdateTeam)
	teamGroup.Delete("/:id", handlers.DeleteTeam)
	teamGroup.Post("/:id/members", handlers.AddTeamMember)
	teamGroup.Get("/:id/members", handlers.GetTeamMembers)
	teamGroup.Delete("/:id/members/:userId", handlers.RemoveTeamMember)
	teamGroup.Put("/:id/members/:userId/role", handlers.UpdateTeamMemberRole)
	teamGroup.Get("/:id/tasks", handlers.GetTeamTasks)
	teamGroup.Get("/:id/stats", handlers.GetTeamTaskStats)

	// Task routes
	taskGroup := api.Group("/tasks")
	taskGroup.Use(middleware.AuthMiddleware)
	taskGroup.Post("/", handlers.CreateTask)
	taskGroup.Get("/:id", handlers.GetTask)
	taskGroup.Put("/:id", handlers.UpdateTask)
	taskGroup.Delete("/:id", handlers.DeleteTask)

	// Activity feed
	activityGroup := api.Group("/activity")
	activityGroup.Use(middleware.AuthMiddleware)
	activityGroup.Get("/", handlers.GetActivityLogs)

	// Display metadata (no auth; labels are public)
	api.Get("/meta/labels", handlers.GetLabels)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	log.Printf("HTTP server starting on port %s", cfg.Port)
	log.Printf("Environment: %s", getEnv("APP_ENV", "development"))

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
