// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"time"

	"sebengine/internal/config"
	"sebengine/internal/handlers"
	"sebengine/internal/metrics"
	"sebengine/internal/middleware"
	"sebengine/internal/models"
	"sebengine/internal/services/auth"
	"sebengine/internal/services/calculator"
	"sebengine/internal/services/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the services the routes are wired to.
type Dependencies struct {
	Config   *config.AppConfig
	Settings *settings.Service
	Auth     auth.Service
	Sessions *calculator.SessionStore
	// Metrics defaults to a no-op collector when nil.
	Metrics metrics.Collector
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	collector := deps.Metrics
	if collector == nil {
		collector = metrics.NoopCollector{}
	}

	healthHandler := handlers.NewHealthHandler(deps.Settings, deps.Config.SettingsBackend)
	feeHandler := handlers.NewFeeHandler(deps.Settings, collector)
	calculatorHandler := handlers.NewCalculatorHandler(deps.Sessions, collector)
	adminHandler := handlers.NewAdminHandler(deps.Auth, deps.Settings, collector)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Public endpoints
	api.Get("/health", healthHandler.HealthCheck)
	api.Get("/version", healthHandler.Version)
	api.Get("/settings", healthHandler.GetSettings)
	api.Post("/fee/quote", feeHandler.Quote)

	setupCalculatorRoutes(api, calculatorHandler)

	setupAdminRoutes(api, adminHandler, middleware.NewAuthMiddleware(deps.Config.JWTSecret))
}

func setupAdminRoutes(router fiber.Router, h *handlers.AdminHandler, authMiddleware *middleware.AuthMiddleware) {
	admin := router.Group("/admin")

	// Login is not rate limited; failed attempts carry no lockout.
	admin.Post("/login", h.Login)

	read := middleware.HasPermission(models.PermissionSettingsRead)
	write := middleware.HasPermission(models.PermissionSettingsWrite)
	admin.Get("/draft", authMiddleware.Handler, read, h.GetDraft)
	admin.Patch("/draft", authMiddleware.Handler, write, h.PatchDraft)
	admin.Post("/draft/reset", authMiddleware.Handler, write, h.ResetDraft)
	admin.Post("/commit", authMiddleware.Handler, write, h.Commit)
}

func setupCalculatorRoutes(router fiber.Router, h *handlers.CalculatorHandler) {
	calc := router.Group("/calculator")
	calc.Get("/keypad", h.Keypad)
	calc.Post("/apply", h.Apply)

	sessions := calc.Group("/sessions")
	sessions.Post("/", sessionLimiter(), h.CreateSession)
	sessions.Get("/:id", h.GetSession)
	sessions.Post("/:id/tokens", h.ApplyToSession)
	sessions.Delete("/:id", h.DeleteSession)
}

// sessionLimiter bounds how fast one client can allocate server-held sessions.
func sessionLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
