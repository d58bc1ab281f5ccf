package handlers

import (
	"sebengine/internal/metrics"
	"sebengine/internal/services/fee"
	"sebengine/internal/services/settings"

	"github.com/gofiber/fiber/v2"
)

type FeeHandler struct {
	settings *settings.Service
	metrics  metrics.Collector
}

func NewFeeHandler(settingsService *settings.Service, collector metrics.Collector) *FeeHandler {
	return &FeeHandler{settings: settingsService, metrics: collector}
}

// Quote computes the sell value for the submitted bond fields using the
// committed settings. Malformed amounts are treated as zero.
func (h *FeeHandler) Quote(c *fiber.Ctx) error {
	var input struct {
		Mode string `json:"mode"`
		fee.Inputs
	}
	if err := c.BodyParser(&input); err != nil {
		return badBody(c)
	}

	s := h.settings.Load()
	result := fee.Compute(fee.ParseMode(input.Mode), input.Inputs, s)
	h.metrics.RecordQuote(string(result.Mode), result.IsBelowMin)
	return c.JSON(fee.Present(result, s))
}
