package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"app/logger"
)

// RequestLogger logs each request with method, path, status and
// latency.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		logger.Log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("ip", c.IP()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request processed")

		return err
	}
}
