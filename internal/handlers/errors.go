package handlers

import (
	"errors"
	"log"

	apperrors "sebengine/internal/errors"
	"sebengine/internal/services/auth"
	"sebengine/internal/services/calculator"
	"sebengine/internal/services/settings"
	"sebengine/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// writeError maps a service error onto its API status and code.
func writeError(c *fiber.Ctx, err error) error {
	var verr *settings.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.Domain(c, fiber.StatusUnprocessableEntity, apperrors.ErrInvalidSettings.WithFields(verr.Fields))
	case errors.Is(err, settings.ErrDraftNotFound):
		return response.Domain(c, fiber.StatusNotFound, apperrors.ErrDraftNotFound)
	case errors.Is(err, auth.ErrInvalidCredential):
		return response.Domain(c, fiber.StatusUnauthorized, apperrors.ErrInvalidCredential)
	case errors.Is(err, calculator.ErrSessionNotFound):
		return response.Domain(c, fiber.StatusNotFound, apperrors.ErrSessionNotFound)
	case errors.Is(err, calculator.ErrInvalidSnapshot), errors.Is(err, calculator.ErrUnknownToken):
		return response.Domain(c, fiber.StatusBadRequest, apperrors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return response.Domain(c, fiber.StatusServiceUnavailable, apperrors.ErrStoreUnavailable)
}

func badBody(c *fiber.Ctx) error {
	return response.Domain(c, fiber.StatusBadRequest, apperrors.ErrInvalidRequest)
}
