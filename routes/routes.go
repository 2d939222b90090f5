package routes

import (
	"github.com/gofiber/fiber/v2"

	"app/handlers"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/health", h.HandleHealthCheck)
	app.Post("/forecast", h.HandleForecast)
	app.Post("/inventory/recommendations", h.HandleRecommendations)
	app.Get("/agent/insights", h.HandleInsights)
}
