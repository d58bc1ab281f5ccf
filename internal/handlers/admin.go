package handlers

import (
	"time"

	"sebengine/internal/metrics"
	"sebengine/internal/models"
	"sebengine/internal/services/auth"
	"sebengine/internal/services/settings"
	"sebengine/internal/utils"
	"sebengine/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	auth     auth.Service
	settings *settings.Service
	metrics  metrics.Collector
}

func NewAdminHandler(authService auth.Service, settingsService *settings.Service, collector metrics.Collector) *AdminHandler {
	return &AdminHandler{auth: authService, settings: settingsService, metrics: collector}
}

type draftView struct {
	ID        string                `json:"id"`
	Settings  models.SettingsRecord `json:"settings"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

func newDraftView(d settings.Draft) draftView {
	return draftView{ID: d.ID, Settings: d.Settings.Record(), UpdatedAt: d.UpdatedAt}
}

// Login exchanges the shared passcode for an admin token and a fresh draft.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Passcode string `json:"passcode"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badBody(c)
	}

	sess, err := h.auth.Login(input.Passcode)
	if err != nil {
		h.metrics.RecordLogin("denied")
		return writeError(c, err)
	}
	h.metrics.RecordLogin("ok")

	return c.JSON(fiber.Map{
		"token":      sess.Token,
		"expires_at": sess.ExpiresAt,
		"draft":      newDraftView(sess.Draft),
	})
}

func (h *AdminHandler) GetDraft(c *fiber.Ctx) error {
	claims, err := utils.GetAdminClaims(c)
	if err != nil {
		return response.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	d, err := h.settings.Draft(claims.DraftID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(newDraftView(d))
}

// PatchDraft stages field edits. Values are coerced, not rejected.
func (h *AdminHandler) PatchDraft(c *fiber.Ctx) error {
	claims, err := utils.GetAdminClaims(c)
	if err != nil {
		return response.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var patch settings.Patch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c)
	}

	d, err := h.settings.Edit(claims.DraftID, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(newDraftView(d))
}

func (h *AdminHandler) ResetDraft(c *fiber.Ctx) error {
	claims, err := utils.GetAdminClaims(c)
	if err != nil {
		return response.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	d, err := h.settings.ResetDraftToDefault(claims.DraftID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(newDraftView(d))
}

// Commit validates and persists the draft, then publishes it.
func (h *AdminHandler) Commit(c *fiber.Ctx) error {
	claims, err := utils.GetAdminClaims(c)
	if err != nil {
		return response.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	committed, err := h.settings.Commit(c.UserContext(), claims.DraftID)
	if err != nil {
		h.metrics.RecordCommit("failed")
		return writeError(c, err)
	}
	h.metrics.RecordCommit("ok")
	return response.Success(c, "Settings committed", committed.Record())
}
