package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware tags each request with an ID and logs method, path,
// status and latency as structured fields.
func LoggingMiddleware(logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"ip":         c.IP(),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.WithField("error", err.Error()).Warn("request failed")
			return err
		}
		entry.Info("request")
		return nil
	}
}
