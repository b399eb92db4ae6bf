package controllers

import (
	"inventario-api/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// internalError registra el detalle del lado del servidor y responde un
// mensaje genérico; los internos nunca llegan al cliente.
func internalError(ctx *fiber.Ctx, operation string, err error) error {
	requestID, _ := ctx.Locals("requestID").(string)
	logger.GetLogger().Error("query failed",
		zap.String("operation", operation),
		zap.String("request_id", requestID),
		zap.Error(err),
	)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"ok":      false,
		"message": "Error interno del servidor",
	})
}
