package controllers

import (
	"errors"
	"time"

	"inventario-api/models"
	"inventario-api/prometheus"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(DB *gorm.DB) *ItemController {
	return &ItemController{DB: DB}
}

type itemInput struct {
	Sku            string  `json:"sku" validate:"required"`
	Descripcion    *string `json:"descripcion"`
	IDMarca        uint    `json:"id_marca" validate:"required"`
	IDDepartamento uint    `json:"id_departamento" validate:"required"`
	IDSubcategoria *uint   `json:"id_subcategoria"`
}

// GetAllItems regresa los últimos 50 artículos con sus catálogos.
func (c *ItemController) GetAllItems(ctx *fiber.Ctx) error {
	defer prometheus.TrackDBOperation("items_list")(time.Now())

	items := []models.Item{}
	err := c.DB.
		Preload("Brand").
		Preload("Department").
		Preload("SubCategory").
		Order("created_at desc").
		Limit(50).
		Find(&items).Error
	if err != nil {
		return internalError(ctx, "articulos", err)
	}

	return ctx.JSON(fiber.Map{
		"ok":   true,
		"data": items,
	})
}

func (c *ItemController) GetItemBySku(ctx *fiber.Ctx) error {
	sku := ctx.Params("sku")

	defer prometheus.TrackDBOperation("item_by_sku")(time.Now())

	var item models.Item
	err := c.DB.
		Preload("Brand").
		Preload("Department").
		Preload("SubCategory").
		Where("sku = ?", sku).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"ok":      false,
				"data":    nil,
				"message": "No se encontró el artículo " + sku,
			})
		}
		return internalError(ctx, "articulo_por_sku", err)
	}

	return ctx.JSON(fiber.Map{
		"ok":   true,
		"data": item,
	})
}

func (c *ItemController) CreateItem(ctx *fiber.Ctx) error {
	var input itemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":      false,
			"message": "Cuerpo de la petición inválido",
		})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":      false,
			"message": err.Error(),
		})
	}

	item := models.Item{
		Sku:           input.Sku,
		Description:   input.Descripcion,
		BrandID:       input.IDMarca,
		DepartmentID:  input.IDDepartamento,
		SubCategoryID: input.IDSubcategoria,
		Active:        true,
	}

	defer prometheus.TrackDBOperation("item_create")(time.Now())
	if err := c.DB.Create(&item).Error; err != nil {
		return internalError(ctx, "crear_articulo", err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":   true,
		"data": item,
	})
}
