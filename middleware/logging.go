package middleware

import (
	"time"

	"inventario-api/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AccessLog escribe una línea por petición con el request id asignado.
func AccessLog() fiber.Handler {
	log := logger.GetLogger()
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		requestID, _ := c.Locals("requestID").(string)
		log.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestID),
		)
		return err
	}
}
