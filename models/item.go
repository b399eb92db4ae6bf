package models

import "time"

type Item struct {
	ID            uint         `json:"id_articulo" gorm:"primaryKey"`
	Sku           string       `json:"sku" gorm:"uniqueIndex"`
	Description   *string      `json:"descripcion"`
	BrandID       uint         `json:"id_marca"`
	DepartmentID  uint         `json:"id_departamento"`
	SubCategoryID *uint        `json:"id_subcategoria"`
	CreatedAt     time.Time    `json:"fecha_creacion"`
	Active        bool         `json:"activo" gorm:"default:true"`
	Brand         *Brand       `json:"Marca,omitempty" gorm:"foreignKey:BrandID"`
	Department    *Department  `json:"Departamento,omitempty" gorm:"foreignKey:DepartmentID"`
	SubCategory   *SubCategory `json:"SubCategoria,omitempty" gorm:"foreignKey:SubCategoryID"`
}
