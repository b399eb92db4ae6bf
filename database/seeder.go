package database

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"inventario-api/models"

	"gorm.io/gorm"
)

//go:embed data/seed.json
var seedData []byte

type seedBranch struct {
	Nombre    string  `json:"nombre"`
	Ciudad    *string `json:"ciudad"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Activo    *bool   `json:"activo"`
}

type seedBrand struct {
	Nombre string `json:"nombre"`
}

type seedDepartment struct {
	Nombre string `json:"nombre"`
}

type seedSubCategory struct {
	Nombre string `json:"nombre"`
	Marca  string `json:"marca"`
}

type seedItem struct {
	Sku          string  `json:"sku"`
	Descripcion  *string `json:"descripcion"`
	Marca        string  `json:"marca"`
	Departamento string  `json:"departamento"`
	Subcategoria string  `json:"subcategoria"`
	Activo       *bool   `json:"activo"`
}

type seedFile struct {
	Sucursales    []seedBranch      `json:"sucursales"`
	Marcas        []seedBrand       `json:"marcas"`
	Departamentos []seedDepartment  `json:"departamentos"`
	Subcategorias []seedSubCategory `json:"subcategorias"`
	Articulos     []seedItem        `json:"articulos"`
}

func boolOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// Seed aplica el seed embebido de forma idempotente: cada entidad se
// crea o actualiza por su clave natural (nombre, nombre+marca, sku).
func Seed(db *gorm.DB) error {
	var data seedFile
	if err := json.Unmarshal(seedData, &data); err != nil {
		return fmt.Errorf("seed: invalid seed.json: %w", err)
	}

	if err := seedBranches(db, data.Sucursales); err != nil {
		return err
	}
	if err := seedBrands(db, data.Marcas); err != nil {
		return err
	}
	if err := seedDepartments(db, data.Departamentos); err != nil {
		return err
	}
	if err := seedSubCategories(db, data.Subcategorias); err != nil {
		return err
	}
	return seedItems(db, data.Articulos)
}

func seedBranches(db *gorm.DB, branches []seedBranch) error {
	for _, s := range branches {
		payload := models.Branch{
			Name:    s.Nombre,
			City:    s.Ciudad,
			Address: s.Direccion,
			Phone:   s.Telefono,
			Active:  boolOrDefault(s.Activo),
		}

		var existing models.Branch
		err := db.Where("name = ?", s.Nombre).First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := db.Create(&payload).Error; err != nil {
				return err
			}
			continue
		}

		payload.ID = existing.ID
		if err := db.Save(&payload).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedBrands(db *gorm.DB, brands []seedBrand) error {
	for _, m := range brands {
		var existing models.Brand
		err := db.Where("name = ?", m.Nombre).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&models.Brand{Name: m.Nombre, Active: true}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedDepartments(db *gorm.DB, departments []seedDepartment) error {
	for _, d := range departments {
		var existing models.Department
		err := db.Where("name = ?", d.Nombre).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&models.Department{Name: d.Nombre, Active: true}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSubCategories(db *gorm.DB, subcategories []seedSubCategory) error {
	for _, sc := range subcategories {
		var brand models.Brand
		if err := db.Where("name = ?", sc.Marca).First(&brand).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// marca desconocida, se ignora la subcategoría
				continue
			}
			return err
		}

		var existing models.SubCategory
		err := db.Where("name = ? AND brand_id = ?", sc.Nombre, brand.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		sub := models.SubCategory{Name: sc.Nombre, BrandID: brand.ID, Active: true}
		if err := db.Create(&sub).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedItems(db *gorm.DB, items []seedItem) error {
	for _, a := range items {
		var brand models.Brand
		if err := db.Where("name = ?", a.Marca).First(&brand).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}

		var department models.Department
		if err := db.Where("name = ?", a.Departamento).First(&department).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}

		var sub models.SubCategory
		if err := db.Where("name = ? AND brand_id = ?", a.Subcategoria, brand.ID).First(&sub).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}

		subID := sub.ID
		payload := models.Item{
			Sku:           a.Sku,
			Description:   a.Descripcion,
			BrandID:       brand.ID,
			DepartmentID:  department.ID,
			SubCategoryID: &subID,
			Active:        boolOrDefault(a.Activo),
		}

		var existing models.Item
		err := db.Where("sku = ?", a.Sku).First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := db.Create(&payload).Error; err != nil {
				return err
			}
			continue
		}

		payload.ID = existing.ID
		payload.CreatedAt = existing.CreatedAt
		if err := db.Save(&payload).Error; err != nil {
			return err
		}
	}
	return nil
}
