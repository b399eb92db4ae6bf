package models

import "time"

// Estados de una programación de conteo. Enum cerrado de tres valores.
const (
	CountStatusScheduled = "Programado"
	CountStatusCompleted = "Completado"
	CountStatusCancelled = "Cancelado"
)

type StockLocation struct {
	ID        uint   `json:"id_ubicacion" gorm:"primaryKey"`
	ItemID    uint   `json:"id_articulo"`
	Zone      string `json:"zona"`
	Aisle     string `json:"pasillo"`
	Column    string `json:"columna"`
	Level     string `json:"nivel"`
	Position  string `json:"posicion"`
	StockQty  int    `json:"cantidad_stock"`
	Active    bool   `json:"activo" gorm:"default:true"`
	IsDefault bool   `json:"predeterminado"`
	BranchID  *uint  `json:"sucursal"`
	Item      *Item  `json:"Articulo,omitempty" gorm:"foreignKey:ItemID"`
}

type CountSchedule struct {
	ID            uint          `json:"id_programacion" gorm:"primaryKey"`
	ScheduledDate time.Time     `json:"fecha_programada"`
	Description   *string       `json:"descripcion"`
	Status        string        `json:"estado"`
	CreatedAt     time.Time     `json:"fecha_creacion"`
	FinishedAt    *time.Time    `json:"fecha_finalizacion"`
	Details       []CountDetail `json:"Detalle_Conteo,omitempty" gorm:"foreignKey:ScheduleID"`
}

type CountDetail struct {
	ID         uint           `json:"id_detalle" gorm:"primaryKey"`
	ScheduleID uint           `json:"id_programacion"`
	ItemID     uint           `json:"id_articulo"`
	LocationID uint           `json:"id_ubicacion"`
	SystemQty  int            `json:"cantidad_sistema"`
	CountedQty int            `json:"cantidad_contada"`
	Difference *int           `json:"diferencia"` // solo se llena cuando el conteo está completado
	CountedBy  *uint          `json:"id_usuario_conteo"`
	CountedAt  time.Time      `json:"fecha_conteo"`
	Notes      *string        `json:"observaciones"`
	Item       *Item          `json:"Articulo,omitempty" gorm:"foreignKey:ItemID"`
	Location   *StockLocation `json:"Ubicacion,omitempty" gorm:"foreignKey:LocationID"`
}
