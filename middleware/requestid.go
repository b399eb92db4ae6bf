package middleware

import (
	"strconv"

	"inventario-api/idgen"

	"github.com/gofiber/fiber/v2"
)

// RequestID asigna un identificador snowflake a cada petición.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strconv.FormatInt(idgen.GenerateID(), 10)
		c.Locals("requestID", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}
