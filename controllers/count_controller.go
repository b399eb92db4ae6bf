package controllers

import (
	"inventario-api/controllers/helpers"
	"inventario-api/models"
	"inventario-api/services"

	"github.com/gofiber/fiber/v2"
)

type CountController struct {
	Service *services.CountService
}

func NewCountController(service *services.CountService) *CountController {
	return &CountController{Service: service}
}

func (c *CountController) GetPendingCounts(ctx *fiber.Ctx) error {
	return c.respondCounts(ctx, models.CountStatusScheduled)
}

func (c *CountController) GetFinishedCounts(ctx *fiber.Ctx) error {
	return c.respondCounts(ctx, models.CountStatusCompleted)
}

func (c *CountController) GetAllCounts(ctx *fiber.Ctx) error {
	return c.respondCounts(ctx, "")
}

// El filtro por estado y la paginación se aplican en memoria sobre el
// set generado completo.
func (c *CountController) respondCounts(ctx *fiber.Ctx, status string) error {
	pagination := helpers.ParsePagination(ctx.Query("limit"), ctx.Query("page"), helpers.DefaultPageOptions())

	schedules, err := c.Service.Schedules()
	if err != nil {
		return internalError(ctx, "conteos", err)
	}

	filtered := services.FilterByStatus(schedules, status)
	page := services.Paginate(filtered, pagination.Skip, pagination.Limit)
	total := int64(len(filtered))

	return ctx.JSON(fiber.Map{
		"ok":              true,
		"data":            page,
		"totalPaginas":    helpers.TotalPages(total, pagination.Limit),
		"paginaActual":    pagination.Page,
		"totalDocumentos": total,
	})
}
