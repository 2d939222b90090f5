package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/logger"
)

// HandleInsights returns a strategic analysis from the model plus the
// performance summary of the prediction log.
// GET /agent/insights
func (h *Handler) HandleInsights(c *fiber.Ctx) error {
	insights, err := h.agent.Insights(c.UserContext())
	if err != nil {
		logger.Log.Error().Err(err).Msg("error generating insights")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(insights)
}
