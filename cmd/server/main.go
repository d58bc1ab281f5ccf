// Package main is the entry point for the fee engine API.
// It loads configuration, opens the settings store, wires the services
// and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"sebengine/internal/config"
	"sebengine/internal/metrics"
	"sebengine/internal/repositories"
	"sebengine/internal/routes"
	"sebengine/internal/services/auth"
	"sebengine/internal/services/calculator"
	"sebengine/internal/services/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := repositories.OpenSettingsRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s settings store: %v", cfg.SettingsBackend, err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			log.Printf("Failed to close settings store: %v", err)
		}
	}()

	settingsService, err := settings.NewService(ctx, repo, cfg.AdminSessionTTL)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	authService, err := auth.NewService(cfg, settingsService)
	if err != nil {
		log.Fatalf("Failed to initialise admin gate: %v", err)
	}

	collector := metrics.PrometheusCollector{}

	sessions := calculator.NewSessionStore(cfg.CalculatorSessionTTL)
	go sessions.Run(ctx, time.Minute, collector.SetActiveSessions)

	app := fiber.New(fiber.Config{
		AppName:      "seb-engine " + config.Version,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(recover.New())

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.TrimSpace(cfg.CORSOrigins),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD,PATCH,DELETE",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Config:   cfg,
		Settings: settingsService,
		Auth:     authService,
		Sessions: sessions,
		Metrics:  collector,
	})

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("seb-engine %s listening on :%s (settings backend: %s)", config.Version, cfg.Port, cfg.SettingsBackend)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
