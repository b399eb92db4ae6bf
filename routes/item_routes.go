package routes

import (
	"inventario-api/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupItemRoutes(app *fiber.App, db *gorm.DB) {
	itemController := controllers.NewItemController(db)

	api := app.Group("/articulos")
	api.Get("/", itemController.GetAllItems)
	api.Post("/", itemController.CreateItem)
	api.Get("/:sku", itemController.GetItemBySku)
}
