package controllers

import (
	"time"

	"inventario-api/models"
	"inventario-api/prometheus"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WarehouseController struct {
	DB *gorm.DB
}

func NewWarehouseController(DB *gorm.DB) *WarehouseController {
	return &WarehouseController{DB: DB}
}

func (c *WarehouseController) GetAllWarehouses(ctx *fiber.Ctx) error {
	defer prometheus.TrackDBOperation("warehouses_list")(time.Now())

	warehouses := []models.Warehouse{}
	err := c.DB.
		Preload("Branch").
		Where("active = ?", true).
		Order("name asc").
		Find(&warehouses).Error
	if err != nil {
		return internalError(ctx, "almacenes", err)
	}

	return ctx.JSON(fiber.Map{
		"ok":   true,
		"data": warehouses,
	})
}
