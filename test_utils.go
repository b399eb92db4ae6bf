package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"inventario-api/idgen"
	"inventario-api/migration"
	"inventario-api/models"
	"inventario-api/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB crea una base de datos de prueba en memoria
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to test database")
	}
	if err := migration.Migrate(db); err != nil {
		panic(err)
	}
	return db
}

// setupTestApp arma la aplicación completa sobre la base de prueba
func setupTestApp(db *gorm.DB) *fiber.App {
	idgen.Init()
	countService := services.NewCountService(db, 5*time.Minute, 100)
	return buildApp(db, countService)
}

// seedTestCatalog crea una marca, un departamento y una subcategoría base
func seedTestCatalog(db *gorm.DB) (models.Brand, models.Department, models.SubCategory) {
	brand := models.Brand{Name: "Truper", Active: true}
	db.Create(&brand)

	department := models.Department{Name: "Herramientas", Active: true}
	db.Create(&department)

	subcategory := models.SubCategory{Name: "Taladros", BrandID: brand.ID, Active: true}
	db.Create(&subcategory)

	return brand, department, subcategory
}

// createTestItems inserta n artículos secuenciales sobre el catálogo base
func createTestItems(db *gorm.DB, n int) {
	brand, department, subcategory := seedTestCatalog(db)
	for i := 0; i < n; i++ {
		subID := subcategory.ID
		item := models.Item{
			Sku:           fmt.Sprintf("SKU-%03d", i+1),
			BrandID:       brand.ID,
			DepartmentID:  department.ID,
			SubCategoryID: &subID,
			Active:        true,
		}
		db.Create(&item)
	}
}

type apiResponse struct {
	Ok              bool            `json:"ok"`
	Data            json.RawMessage `json:"data"`
	Message         string          `json:"message"`
	TotalPaginas    int             `json:"totalPaginas"`
	PaginaActual    int             `json:"paginaActual"`
	TotalDocumentos int             `json:"totalDocumentos"`
}

// performRequest ejecuta una petición contra la app y decodifica el envelope
func performRequest(app *fiber.App, method, path string, body interface{}) (*http.Response, apiResponse) {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}

	var envelope apiResponse
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &envelope)
	return resp, envelope
}
