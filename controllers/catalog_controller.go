package controllers

import (
	"strings"
	"sync"
	"time"

	"inventario-api/controllers/helpers"
	"inventario-api/models"
	"inventario-api/prometheus"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CatalogController struct {
	DB *gorm.DB
}

func NewCatalogController(DB *gorm.DB) *CatalogController {
	return &CatalogController{DB: DB}
}

// GetAllSubCategories regresa las primeras 50 subcategorías con su marca.
func (c *CatalogController) GetAllSubCategories(ctx *fiber.Ctx) error {
	defer prometheus.TrackDBOperation("subcategories_list")(time.Now())

	subcategories := []models.SubCategory{}
	err := c.DB.
		Preload("Brand").
		Order("name asc").
		Limit(50).
		Find(&subcategories).Error
	if err != nil {
		return internalError(ctx, "subcategorias", err)
	}

	return ctx.JSON(fiber.Map{
		"ok":   true,
		"data": subcategories,
	})
}

// SearchBrands busca por subcadena sin distinguir mayúsculas; sin término
// regresa el catálogo completo paginado.
func (c *CatalogController) SearchBrands(ctx *fiber.Ctx) error {
	q := ctx.Query("q")
	pagination := helpers.ParsePagination(ctx.Query("limit"), ctx.Query("page"), helpers.DefaultPageOptions())

	query := c.DB.Model(&models.Brand{})
	if q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	query = query.Session(&gorm.Session{})

	defer prometheus.TrackDBOperation("brand_search")(time.Now())

	// lista y conteo como dos consultas independientes en paralelo;
	// no se exige que vean el mismo snapshot
	brands := []models.Brand{}
	var total int64
	var listErr, countErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		listErr = query.
			Order("name asc").
			Offset(pagination.Skip).
			Limit(pagination.Limit).
			Find(&brands).Error
	}()
	go func() {
		defer wg.Done()
		countErr = query.Count(&total).Error
	}()
	wg.Wait()

	if listErr != nil {
		return internalError(ctx, "buscar_marcas", listErr)
	}
	if countErr != nil {
		return internalError(ctx, "contar_marcas", countErr)
	}

	return ctx.JSON(fiber.Map{
		"ok":              true,
		"data":            brands,
		"totalPaginas":    helpers.TotalPages(total, pagination.Limit),
		"paginaActual":    pagination.Page,
		"totalDocumentos": total,
	})
}

// GetSubCategoriesByBrand exige un id numérico; si no lo es responde 400
// sin tocar la base de datos.
func (c *CatalogController) GetSubCategoriesByBrand(ctx *fiber.Ctx) error {
	brandID, err := ctx.ParamsInt("marcaId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":      false,
			"data":    []models.SubCategory{},
			"message": "marcaId debe ser numérico",
		})
	}

	pagination := helpers.ParsePagination(ctx.Query("limit"), ctx.Query("page"), helpers.DefaultPageOptions())

	query := c.DB.Model(&models.SubCategory{}).
		Where("brand_id = ? AND active = ?", brandID, true).
		Session(&gorm.Session{})

	defer prometheus.TrackDBOperation("subcategories_by_brand")(time.Now())

	subcategories := []models.SubCategory{}
	var total int64
	var listErr, countErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		listErr = query.
			Order("name asc").
			Offset(pagination.Skip).
			Limit(pagination.Limit).
			Find(&subcategories).Error
	}()
	go func() {
		defer wg.Done()
		countErr = query.Count(&total).Error
	}()
	wg.Wait()

	if listErr != nil {
		return internalError(ctx, "subcategorias_por_marca", listErr)
	}
	if countErr != nil {
		return internalError(ctx, "contar_subcategorias", countErr)
	}

	return ctx.JSON(fiber.Map{
		"ok":              true,
		"data":            subcategories,
		"totalPaginas":    helpers.TotalPages(total, pagination.Limit),
		"paginaActual":    pagination.Page,
		"totalDocumentos": total,
	})
}
