package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/agent"
)

// Handler bundles the dependencies the HTTP layer needs.
type Handler struct {
	agent *agent.Agent
}

// New returns a Handler backed by the given agent.
func New(a *agent.Agent) *Handler {
	return &Handler{agent: a}
}

// HandleHealthCheck reports service liveness.
// GET /health
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "inventoryagentservice",
	})
}
