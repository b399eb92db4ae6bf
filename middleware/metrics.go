package middleware

import (
	"strconv"
	"time"

	"inventario-api/prometheus"

	"github.com/gofiber/fiber/v2"
)

// MetricsMiddleware registra contadores y duración por petición HTTP.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		duration := time.Since(start).Seconds()
		method := c.Method()
		path := c.Path()

		if prometheus.HttpRequestsTotal != nil {
			prometheus.HttpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			prometheus.HttpRequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration)
		}

		return err
	}
}
