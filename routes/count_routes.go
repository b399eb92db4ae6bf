package routes

import (
	"inventario-api/controllers"
	"inventario-api/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCountRoutes(app *fiber.App, countService *services.CountService) {
	countController := controllers.NewCountController(countService)

	api := app.Group("/inventario")
	api.Get("/conteos-pendientes", countController.GetPendingCounts)
	api.Get("/conteos-finalizados", countController.GetFinishedCounts)
	api.Get("/conteos-todos", countController.GetAllCounts)
}
