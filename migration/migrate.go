package migration

import (
	"inventario-api/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Branch{},
		&models.Warehouse{},
		&models.Brand{},
		&models.Department{},
		&models.SubCategory{},
		&models.Item{},
		&models.StockLocation{},
		&models.CountSchedule{},
		&models.CountDetail{},
	)
}
