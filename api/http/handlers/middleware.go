package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/ragguard/pkg/logger"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalRequestID  = "requestId"
)

// RequestLogger tags each request with an id (kept from the caller when
// present) and writes one access log line.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		c.Set(HeaderRequestID, id)

		start := time.Now()
		err := c.Next()
		log.Info("http request",
			"request_id", id,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}
