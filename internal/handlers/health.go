package handlers

import (
	"context"
	"time"

	"sebengine/internal/config"
	"sebengine/internal/services/settings"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	settings *settings.Service
	backend  string
}

func NewHealthHandler(settingsService *settings.Service, backend string) *HealthHandler {
	return &HealthHandler{settings: settingsService, backend: backend}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status, store, code := "ok", "connected", fiber.StatusOK
	if err := h.settings.Ping(ctx); err != nil {
		status, store, code = "degraded", "unavailable", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"version": config.Version,
		"services": fiber.Map{
			"settings_store": store,
			"backend":        h.backend,
		},
	})
}

func (h *HealthHandler) Version(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"version": config.Version})
}

// GetSettings returns the committed settings.
func (h *HealthHandler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(h.settings.Load().Record())
}
