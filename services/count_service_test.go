package services

import (
	"fmt"
	"testing"
	"time"

	"inventario-api/migration"
	"inventario-api/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCountTestDB(t *testing.T, items int) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, migration.Migrate(db))

	brand := models.Brand{Name: "Truper", Active: true}
	db.Create(&brand)
	department := models.Department{Name: "Herramientas", Active: true}
	db.Create(&department)

	for i := 0; i < items; i++ {
		db.Create(&models.Item{
			Sku:          fmt.Sprintf("SKU-%03d", i+1),
			BrandID:      brand.ID,
			DepartmentID: department.ID,
			Active:       true,
		})
	}
	return db
}

func TestSchedulesStatusCycle(t *testing.T) {
	db := setupCountTestDB(t, 6)
	service := NewCountService(db, 5*time.Minute, 100)

	schedules, err := service.Schedules()
	assert.NoError(t, err)
	assert.Len(t, schedules, 6)

	expected := []string{
		models.CountStatusScheduled,
		models.CountStatusCompleted,
		models.CountStatusCancelled,
		models.CountStatusScheduled,
		models.CountStatusCompleted,
		models.CountStatusCancelled,
	}
	for i, schedule := range schedules {
		assert.Equal(t, expected[i], schedule.Status)
	}
}

func TestSchedulesBoundedByMaxItems(t *testing.T) {
	db := setupCountTestDB(t, 5)
	service := NewCountService(db, 5*time.Minute, 3)

	schedules, err := service.Schedules()
	assert.NoError(t, err)
	assert.Len(t, schedules, 3)
}

func TestSchedulesServedFromCacheWithinTTL(t *testing.T) {
	db := setupCountTestDB(t, 4)
	service := NewCountService(db, 5*time.Minute, 100)

	first, err := service.Schedules()
	assert.NoError(t, err)
	assert.Len(t, first, 4)

	// borrar los artículos no afecta al set mientras la caché viva
	assert.NoError(t, db.Where("1 = 1").Delete(&models.Item{}).Error)

	second, err := service.Schedules()
	assert.NoError(t, err)
	assert.Len(t, second, 4)
}

func TestSchedulesRegeneratedAfterTTL(t *testing.T) {
	db := setupCountTestDB(t, 4)
	service := NewCountService(db, 0, 100)

	first, err := service.Schedules()
	assert.NoError(t, err)
	assert.Len(t, first, 4)

	assert.NoError(t, db.Where("1 = 1").Delete(&models.Item{}).Error)

	second, err := service.Schedules()
	assert.NoError(t, err)
	assert.Len(t, second, 0)
}

func TestFilterByStatusAndPaginate(t *testing.T) {
	db := setupCountTestDB(t, 9)
	service := NewCountService(db, 5*time.Minute, 100)

	schedules, err := service.Schedules()
	assert.NoError(t, err)

	pending := FilterByStatus(schedules, models.CountStatusScheduled)
	assert.Len(t, pending, 3)

	all := FilterByStatus(schedules, "")
	assert.Len(t, all, 9)

	page := Paginate(pending, 0, 2)
	assert.Len(t, page, 2)

	page = Paginate(pending, 2, 2)
	assert.Len(t, page, 1)

	page = Paginate(pending, 10, 2)
	assert.Empty(t, page)
}
