package routes

import (
	"inventario-api/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCatalogRoutes(app *fiber.App, db *gorm.DB) {
	catalogController := controllers.NewCatalogController(db)

	app.Get("/subcategorias", catalogController.GetAllSubCategories)

	api := app.Group("/catalogos/marcas")
	api.Get("/buscar", catalogController.SearchBrands)
	api.Get("/:marcaId/subcategorias", catalogController.GetSubCategoriesByBrand)
}
