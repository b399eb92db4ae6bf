package routes

import (
	"inventario-api/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWarehouseRoutes(app *fiber.App, db *gorm.DB) {
	warehouseController := controllers.NewWarehouseController(db)

	app.Get("/almacenes", warehouseController.GetAllWarehouses)
}
