package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/ecclesiabr/ecclesia/internal/config"
	"github.com/ecclesiabr/ecclesia/internal/database"
	"github.com/ecclesiabr/ecclesia/internal/handlers"
	"github.com/ecclesiabr/ecclesia/internal/middleware"
	"github.com/ecclesiabr/ecclesia/internal/services"
	"github.com/ecclesiabr/ecclesia/internal/types"

	_ "github.com/ecclesiabr/ecclesia/docs/api" // Swagger docs
)

// @title Ecclesia API
// @version 1.0.0
// @description Parish tithe and membership management service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/ecclesiabr/ecclesia

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("ecclesia")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health probe stays outside the authenticated API surface
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg}
	parishHandler := &handlers.ParishHandler{DB: db}
	communityHandler := &handlers.CommunityHandler{DB: db}
	parishionerHandler := &handlers.ParishionerHandler{DB: db}
	contributionHandler := &handlers.ContributionHandler{DB: db}
	reportHandler := &handlers.ReportHandler{DB: db}

	requireAuth := middleware.RequireAuth(cfg, db)
	requireAdmin := middleware.RequireAdmin(cfg, db)

	// Auth routes. Login and register are throttled per client IP.
	auth := api.Group("/auth")
	auth.Post("/login", rateLimit(5, time.Minute), authHandler.Login)
	auth.Post("/register", rateLimit(10, time.Minute), requireAdmin, authHandler.Register)
	auth.Get("/me", requireAuth, authHandler.Me)

	// Parish routes
	parishes := api.Group("/parishes", requireAuth)
	parishes.Get("/", parishHandler.List)
	parishes.Get("/:id", parishHandler.Get)
	parishes.Post("/", requireAdmin, parishHandler.Create)
	parishes.Patch("/:id", requireAdmin, parishHandler.Update)
	parishes.Delete("/:id", requireAdmin, parishHandler.Delete)

	// Community routes
	communities := api.Group("/communities", requireAuth)
	communities.Get("/", communityHandler.List)
	communities.Get("/:id", communityHandler.Get)
	communities.Post("/", communityHandler.Create)
	communities.Patch("/:id", communityHandler.Update)
	communities.Delete("/:id", requireAdmin, communityHandler.Delete)

	// Parishioner routes
	parishioners := api.Group("/parishioners", requireAuth)
	parishioners.Get("/", parishionerHandler.List)
	parishioners.Get("/:id", parishionerHandler.Get)
	parishioners.Post("/", parishionerHandler.Create)
	parishioners.Patch("/:id", parishionerHandler.Update)
	parishioners.Delete("/:id", parishionerHandler.Delete)

	// Contribution routes
	contributions := api.Group("/contributions", requireAuth)
	contributions.Get("/", contributionHandler.List)
	contributions.Get("/:id", contributionHandler.Get)
	contributions.Post("/", contributionHandler.Create)
	contributions.Patch("/:id", contributionHandler.Update)
	contributions.Delete("/:id", contributionHandler.Delete)

	// Report routes
	reports := api.Group("/reports", requireAuth)
	reports.Get("/period-total", reportHandler.PeriodTotal)
	reports.Get("/type-totals", reportHandler.TypeTotals)
	reports.Get("/parishioners/:id/history", reportHandler.History)
	reports.Get("/birthdays", reportHandler.Birthdays)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// rateLimit throttles a route to max requests per window, keyed by client IP.
func rateLimit(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return &types.CustomError{
				Code:    fiber.StatusTooManyRequests,
				Message: "too many requests, try again later",
				Type:    "rateLimit",
			}
		},
	})
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var customErr *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
