package handlers

import (
	"github.com/gofiber/fiber/v2"

	"app/models"
)

// HandleRecommendations generates inventory recommendations for a
// batch of products. Each product is processed independently; a
// failing product becomes an error entry rather than aborting the
// batch.
// POST /inventory/recommendations
func (h *Handler) HandleRecommendations(c *fiber.Ctx) error {
	var req models.RecommendationsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if len(req.Products) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "products list is required"})
	}

	recommendations, batchErrors := h.agent.ProcessBatch(c.UserContext(), req.Products)

	return c.JSON(models.RecommendationsResponse{
		Recommendations: recommendations,
		Errors:          batchErrors,
	})
}
