package models

type Branch struct {
	ID      uint    `json:"id_sucursal" gorm:"primaryKey"`
	Name    string  `json:"nombre"`
	Address *string `json:"direccion"`
	Phone   *string `json:"telefono"`
	City    *string `json:"ciudad"`
	Active  bool    `json:"activo" gorm:"default:true"`
}

type Warehouse struct {
	ID       uint   `json:"id_almacen" gorm:"primaryKey"`
	Name     string `json:"nombre"`
	BranchID uint   `json:"id_sucursal"`
	Active   bool   `json:"activo" gorm:"default:true"`
	Branch   *Branch `json:"Sucursal,omitempty" gorm:"foreignKey:BranchID"`
}
