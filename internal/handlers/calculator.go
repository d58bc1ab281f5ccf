package handlers

import (
	apperrors "sebengine/internal/errors"
	"sebengine/internal/metrics"
	"sebengine/internal/services/calculator"

	"github.com/gofiber/fiber/v2"
)

type CalculatorHandler struct {
	sessions *calculator.SessionStore
	metrics  metrics.Collector
}

func NewCalculatorHandler(sessions *calculator.SessionStore, collector metrics.Collector) *CalculatorHandler {
	return &CalculatorHandler{sessions: sessions, metrics: collector}
}

// recordSolves counts each solve in a batch under the state it produced.
func (h *CalculatorHandler) recordSolves(res calculator.Result) {
	for _, state := range res.Solves {
		h.metrics.RecordSolve(string(state))
	}
}

type calculatorInput struct {
	Tokens []string              `json:"tokens"`
	Keys   []calculator.KeyEvent `json:"keys"`
}

func (in calculatorInput) parse() (calculator.Input, error) {
	tokens := make([]calculator.Token, 0, len(in.Tokens))
	for _, raw := range in.Tokens {
		t, err := calculator.ParseToken(raw)
		if err != nil {
			return calculator.Input{}, err
		}
		tokens = append(tokens, t)
	}
	return calculator.Input{Tokens: tokens, Keys: in.Keys}, nil
}

type calculatorView struct {
	ID string `json:"id,omitempty"`
	calculator.Snapshot
	Error *apperrors.DomainError `json:"error,omitempty"`
}

func newCalculatorView(id string, snap calculator.Snapshot) calculatorView {
	v := calculatorView{ID: id, Snapshot: snap}
	if snap.Reason != "" {
		v.Error = apperrors.ErrMalformedExpression.WithMessage(snap.Reason)
	}
	return v
}

func (h *CalculatorHandler) Keypad(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"rows": calculator.Keypad})
}

// Apply runs tokens against a client-held state and returns the next state.
func (h *CalculatorHandler) Apply(c *fiber.Ctx) error {
	var input struct {
		State calculator.Snapshot `json:"state"`
		calculatorInput
	}
	if err := c.BodyParser(&input); err != nil {
		return badBody(c)
	}

	in, err := input.parse()
	if err != nil {
		return writeError(c, err)
	}
	res, err := calculator.Apply(input.State, in)
	if err != nil {
		return writeError(c, err)
	}
	h.recordSolves(res)
	return c.JSON(newCalculatorView("", res.Snapshot))
}

func (h *CalculatorHandler) CreateSession(c *fiber.Ctx) error {
	sess := h.sessions.Create()
	h.metrics.SetActiveSessions(h.sessions.Len())
	return c.Status(fiber.StatusCreated).JSON(newCalculatorView(sess.ID, sess.Snapshot()))
}

func (h *CalculatorHandler) GetSession(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(newCalculatorView(sess.ID, sess.Snapshot()))
}

func (h *CalculatorHandler) ApplyToSession(c *fiber.Ctx) error {
	var input calculatorInput
	if err := c.BodyParser(&input); err != nil {
		return badBody(c)
	}
	in, err := input.parse()
	if err != nil {
		return writeError(c, err)
	}

	id := c.Params("id")
	res, err := h.sessions.Apply(id, in)
	if err != nil {
		return writeError(c, err)
	}
	h.recordSolves(res)
	return c.JSON(newCalculatorView(id, res.Snapshot))
}

func (h *CalculatorHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.sessions.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	h.metrics.SetActiveSessions(h.sessions.Len())
	return c.SendStatus(fiber.StatusNoContent)
}
