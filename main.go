package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/kovalets-vlad/Gamified-habit-tracker/database"
	"github.com/kovalets-vlad/Gamified-habit-tracker/handlers"
	"github.com/kovalets-vlad/Gamified-habit-tracker/handlers/admin"
	"github.com/kovalets-vlad/Gamified-habit-tracker/middleware"
	"github.com/kovalets-vlad/Gamified-habit-tracker/models"

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

	// Initialize database (runs migrations and seeds bootstrap data)
	database.InitDB()
	defer database.CloseDB()

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

	// Apply rate limiting to all routes
	app.Use(middleware.FiberRateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.FiberAuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)

	// User routes
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetCurrentUser)
	userGroup.Put("/me", handlers.UpdateCurrentUser)

	// Wallet
	api.Get("/wallet", middleware.AuthMiddleware, handlers.GetWallet)

	// Habit routes
	habitGroup := api.Group("/habits")
	habitGroup.Use(middleware.AuthMiddleware)
	habitGroup.Post("/", handlers.CreateHabit)
	habitGroup.Get("/", handlers.GetHabits)
	habitGroup.Get("/user/:id", handlers.GetHabitsByUser)
	habitGroup.Get("/:id", handlers.GetHabit)
	habitGroup.Put("/:id", handlers.UpdateHabit)
	habitGroup.Delete("/:id", handlers.DeleteHabit)
	habitGroup.Post("/:id/complete", handlers.CompleteHabit)

	// Streak routes (read-only; streaks change through habit completion)
	streakGroup := api.Group("/streaks")
	streakGroup.Use(middleware.AuthMiddleware)
	streakGroup.Get("/", handlers.GetStreaks)
	streakGroup.Get("/:id", handlers.GetStreak)

	// Achievement routes
	achievementGroup := api.Group("/achievements")
	achievementGroup.Use(middleware.AuthMiddleware)
	achievementGroup.Get("/", handlers.GetAchievements)
	achievementGroup.Get("/mine", handlers.GetUserAchievements)

	// Quest routes
	questGroup := api.Group("/quests")
	questGroup.Use(middleware.AuthMiddleware)
	questGroup.Get("/", handlers.GetQuests)
	questGroup.Post("/:id/complete", handlers.CompleteQuest)
	questGroup.Post("/",
		middleware.RequireRole(string(models.RoleAdmin), string(models.RoleManager)),
		handlers.CreateQuest)
	questGroup.Delete("/:id",
		middleware.RequireRole(string(models.RoleAdmin), string(models.RoleManager)),
		handlers.DeleteQuest)

	// Shop routes
	shopGroup := api.Group("/shop")
	shopGroup.Use(middleware.AuthMiddleware)
	shopGroup.Get("/items", handlers.GetShopItems)
	shopGroup.Get("/items/:id", handlers.GetShopItem)
	shopGroup.Post("/buy", handlers.BuyItem)
	shopGroup.Get("/inventory", handlers.GetUserItems)
	shopGroup.Post("/inventory/:id/equip", handlers.EquipItem)
	shopGroup.Post("/inventory/:id/unequip", handlers.UnequipItem)

	// Live reward feed
	app.Use("/ws/events", handlers.EventsUpgrade)
	app.Get("/ws/events", handlers.EventsSocket)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	// Start admin server (net/http) on its own port
	adminPort := getEnv("ADMIN_PORT", "4000")
	adminServer := &http.Server{
		Addr:         ":" + adminPort,
		Handler:      adminMux(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🔧 Admin server starting on port %s", adminPort)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Admin server failed:", err)
		}
	}()

	// Start Fiber HTTP/REST server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🌐 Reward feed available at ws://localhost:%s/ws/events", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// adminMux wires the net/http admin endpoints behind the admin JWT gate.
func adminMux() http.Handler {
	mux := http.NewServeMux()

	register := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.AdminHTTPMiddleware(h))
	}

	register("GET /admin/users", admin.GetUsers)
	register("GET /admin/users/{id}", admin.GetUser)
	register("PUT /admin/users/{id}", admin.UpdateUser)
	register("DELETE /admin/users/{id}", admin.DeleteUser)

	register("GET /admin/achievements", admin.GetAchievements)
	register("POST /admin/achievements", admin.CreateAchievement)
	register("PUT /admin/achievements/{id}", admin.UpdateAchievement)
	register("DELETE /admin/achievements/{id}", admin.DeleteAchievement)

	register("GET /admin/medals", admin.GetMedals)
	register("POST /admin/medals", admin.CreateMedal)
	register("PUT /admin/medals/{id}", admin.UpdateMedal)
	register("DELETE /admin/medals/{id}", admin.DeleteMedal)
	register("POST /admin/medals/{id}/achievements/{achievementId}", admin.LinkAchievement)
	register("DELETE /admin/medals/{id}/achievements/{achievementId}", admin.UnlinkAchievement)

	register("GET /admin/quests", admin.GetQuests)
	register("POST /admin/quests", admin.CreateQuest)
	register("PUT /admin/quests/{id}", admin.UpdateQuest)
	register("DELETE /admin/quests/{id}", admin.DeleteQuest)

	return mux
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

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
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
