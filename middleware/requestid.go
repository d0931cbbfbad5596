// middleware/requestid.go
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags every request with a UUID so log lines from one request can
// be correlated. An incoming X-Request-ID is trusted and passed through.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Locals("requestId", id)
		c.Set("X-Request-ID", id)

		return c.Next()
	}
}
