package models

type Brand struct {
	ID     uint   `json:"id_marca" gorm:"primaryKey"`
	Name   string `json:"nombre" gorm:"uniqueIndex"`
	Active bool   `json:"activo" gorm:"default:true"`
	Code   *int   `json:"codigo"`
}

type Department struct {
	ID     uint   `json:"id_departamento" gorm:"primaryKey"`
	Name   string `json:"nombre" gorm:"uniqueIndex"`
	Active bool   `json:"activo" gorm:"default:true"`
}

// SubCategoria es unica por (nombre, marca)
type SubCategory struct {
	ID      uint   `json:"id_subcategoria" gorm:"primaryKey"`
	Name    string `json:"nombre" gorm:"uniqueIndex:idx_subcategory_name_brand"`
	BrandID uint   `json:"id_marca" gorm:"uniqueIndex:idx_subcategory_name_brand"`
	Active  bool   `json:"activo" gorm:"default:true"`
	Brand   *Brand `json:"Marca,omitempty" gorm:"foreignKey:BrandID"`
}
