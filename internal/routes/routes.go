package routes

import (
	"path/filepath"

	"github.com/Jannescynatix/ipg/config"
	"github.com/Jannescynatix/ipg/internal/handlers"
	"github.com/Jannescynatix/ipg/internal/middleware"
	"github.com/Jannescynatix/ipg/internal/services"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, jwtService *services.JWTService, authService *services.AuthService, visitService *services.VisitService, giveawayService *services.GiveawayService) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, jwtService)
	visitHandler := handlers.NewVisitHandler(visitService)
	giveawayHandler := handlers.NewGiveawayHandler(giveawayService)
	dashboardHandler := handlers.NewDashboardHandler(visitService)

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "IPG API is running",
		})
	})

	// API group
	api := app.Group("/api")

	// ==================
	// Public Routes
	// ==================
	api.Post("/visit", visitHandler.Record)
	api.Post("/login", authHandler.Login)
	api.Post("/giveaway-signup", giveawayHandler.Signup)

	// ==================
	// Protected Routes (JWT)
	// ==================
	protected := api.Group("", middleware.AuthMiddleware(jwtService))

	protected.Post("/logout", authHandler.Logout)

	protected.Get("/dashboard/stats", dashboardHandler.Stats)
	protected.Delete("/dashboard/clear-data", dashboardHandler.ClearData)

	protected.Get("/visits", visitHandler.List)
	protected.Get("/failed-logins", dashboardHandler.FailedLogins)
	protected.Get("/successful-logins", dashboardHandler.SuccessfulLogins)
	protected.Get("/successful-logouts", dashboardHandler.SuccessfulLogouts)
	protected.Get("/giveaway-participants", giveawayHandler.List)
	protected.Get("/giveaway-participants/export", giveawayHandler.ExportExcel)

	// ==================
	// Static Pages
	// ==================
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.PublicDir, "index.html"))
	})
	app.Get("/admin", func(c fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.PublicDir, "admin.html"))
	})
	app.Get("/login", func(c fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.PublicDir, "login.html"))
	})
	app.Use("/", static.New(cfg.PublicDir))
}
