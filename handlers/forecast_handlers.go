package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/forecast"
	"app/logger"
	"app/models"
)

// HandleForecast generates a demand forecast for a single product.
// POST /forecast
func (h *Handler) HandleForecast(c *fiber.Ctx) error {
	var req models.ForecastRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_id is required"})
	}

	forecastDays := req.ForecastDays
	if forecastDays <= 0 {
		forecastDays = forecast.DefaultForecastDays
	}

	result, err := h.agent.Forecast(c.UserContext(), req.ProductID, forecastDays)
	if err != nil {
		logger.Log.Error().Err(err).Str("product_id", req.ProductID).Msg("error generating forecast")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}
