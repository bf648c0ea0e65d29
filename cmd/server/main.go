package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/Jannescynatix/ipg/config"
	"github.com/Jannescynatix/ipg/internal/database"
	"github.com/Jannescynatix/ipg/internal/middleware"
	"github.com/Jannescynatix/ipg/internal/rabbitmq"
	"github.com/Jannescynatix/ipg/internal/routes"
	"github.com/Jannescynatix/ipg/internal/services"
	workers "github.com/Jannescynatix/ipg/internal/worker"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	log.Printf("Connected to database successfully")

	ctx := context.Background()
	if err := database.CreateSchema(ctx, db); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	// Initialize services
	jwtService := services.NewJWTService(cfg.JWTSecret, time.Hour)
	cryptoService := services.NewCryptoService(cfg.AppSecret)
	authService := services.NewAuthService(jwtService)
	geoService := services.NewGeoService(cfg.GeoAPIURL)
	visitService := services.NewVisitService(geoService)
	giveawayService := services.NewGiveawayService(cryptoService)

	// Bootstrap the single admin account
	if err := authService.EnsureAdminUser(ctx, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to ensure admin user: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:       "IPG API",
		CaseSensitive: true,
		StrictRouting: false,
		ServerHeader:  "IPG",
		ErrorHandler:  customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e any) {
			log.Printf("PANIC RECOVERED: %v", e)
			log.Printf("Request: %s %s", c.Method(), c.Path())
			log.Printf("Stack Trace:\n%s", string(debug.Stack()))
		},
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} (${latency})\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Setup RabbitMQ (optional signup notification pipeline)
	if cfg.RabbitMQURL != "" {
		if err := rabbitmq.SetupRabbitMQ(cfg.RabbitMQURL); err != nil {
			// Graceful degradation: signups still work, only notifications are lost
			log.Printf("Failed to connect to RabbitMQ: %v", err)
		} else {
			workerCtx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go func() {
				emailService := services.NewEmailService()
				signupWorker := workers.NewSignupWorker(giveawayService, emailService, cfg.AdminEmail)

				if err := signupWorker.StartWorker(workerCtx); err != nil {
					log.Printf("Signup worker failed: %v", err)
				}
			}()

			defer rabbitmq.Close()
		}
	}

	// Setup routes
	routes.SetupRoutes(app, cfg, jwtService, authService, visitService, giveawayService)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting server on %s", addr)
	log.Printf("Environment: %s", cfg.Env)
	log.Printf("Allowed origins: %v", cfg.AllowedOrigins)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func customErrorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   "Error",
		"message": err.Error(),
	})
}
