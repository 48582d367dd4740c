package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"

	"github.com/cheihkseck32-hue/solo-leveling-system/database"
	"github.com/cheihkseck32-hue/solo-leveling-system/handlers"
	"github.com/cheihkseck32-hue/solo-leveling-system/middleware"
	"github.com/cheihkseck32-hue/solo-leveling-system/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database
	database.InitDB()
	defer database.CloseDB()

	// Core service
	svc := services.New(database.GetDB())
	if endpoint := os.Getenv("SUGGESTER_URL"); endpoint != "" {
		log.Printf("Using external quest suggester at %s", endpoint)
		svc.SetSuggester(services.NewHTTPSuggester(endpoint))
	}
	handlers.Init(svc)

	// Optional overdue quest sweeper
	if raw := os.Getenv("SWEEP_INTERVAL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			log.Printf("Warning: ignoring invalid SWEEP_INTERVAL_MINUTES %q", raw)
		} else {
			sweeper := services.NewSweeper(svc, time.Duration(minutes)*time.Minute)
			sweeper.Start()
			defer sweeper.Stop()
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

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

	app.Use(middleware.FiberRateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.FiberAuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/guest", handlers.GuestLogin)

	// Profile
	api.Get("/profile", middleware.AuthMiddleware, handlers.GetProfile)
	api.Put("/profile", middleware.AuthMiddleware, handlers.UpdateProfile)

	// Dashboard and achievements
	api.Get("/dashboard", middleware.AuthMiddleware, handlers.GetDashboard)
	api.Get("/achievements", middleware.AuthMiddleware, handlers.GetAchievements)

	// Quests
	api.Get("/quests", middleware.AuthMiddleware, handlers.GetQuests)
	api.Post("/quests", middleware.AuthMiddleware, handlers.CreateQuest)
	api.Get("/quests/suggestions", middleware.AuthMiddleware, handlers.GetQuestSuggestions)
	api.Get("/quests/:id", middleware.AuthMiddleware, handlers.GetQuest)
	api.Post("/quests/:id/start", middleware.AuthMiddleware, handlers.StartQuest)
	api.Post("/quests/:id/complete", middleware.AuthMiddleware, handlers.CompleteQuest)
	api.Post("/quests/:id/fail", middleware.AuthMiddleware, handlers.FailQuest)

	// Goals
	api.Get("/goals", middleware.AuthMiddleware, handlers.GetGoals)
	api.Post("/goals", middleware.AuthMiddleware, handlers.CreateGoal)
	api.Get("/goals/:id", middleware.AuthMiddleware, handlers.GetGoal)
	api.Put("/goals/:id", middleware.AuthMiddleware, handlers.UpdateGoal)
	api.Delete("/goals/:id", middleware.AuthMiddleware, handlers.DeleteGoal)

	// Shop and inventory
	api.Get("/shop/items", handlers.GetShopItems)
	api.Post("/shop/items/:id/purchase", middleware.AuthMiddleware, handlers.PurchaseItem)
	api.Get("/shop/inventory", middleware.AuthMiddleware, handlers.GetInventory)
	api.Put("/shop/inventory/:id/equip", middleware.AuthMiddleware, handlers.EquipItem)

	// Community feed
	api.Get("/community/posts", middleware.AuthMiddleware, handlers.GetPosts)
	api.Post("/community/posts", middleware.AuthMiddleware, handlers.CreatePost)
	api.Get("/community/posts/:id", middleware.AuthMiddleware, handlers.GetPost)
	api.Put("/community/posts/:id", middleware.AuthMiddleware, handlers.UpdatePost)
	api.Post("/community/posts/:id/comments", middleware.AuthMiddleware, handlers.AddComment)

	// Live progression event feed
	api.Use("/ws/events", handlers.UpgradeRequired)
	api.Get("/ws/events", websocket.New(handlers.EventsSocket))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func validateEnvironment() {
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("Warning: JWT_SECRET not set, using insecure development default")
	}
	if os.Getenv("DATABASE_URL") == "" && os.Getenv("DB_HOST") == "" {
		log.Println("Warning: no PostgreSQL configured, SQLite fallback will be used")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
