package entity

import "time"

// WarehouseStatus estado de una bodega.
type WarehouseStatus string

const (
	WarehouseActive   WarehouseStatus = "ACTIVE"
	WarehouseInactive WarehouseStatus = "INACTIVE"
)

// Warehouse bodega o sucursal donde se realizan conteos físicos.
// Solo las bodegas ACTIVE aceptan conteos nuevos.
type Warehouse struct {
	Code        string // clave natural, ej. "00009"
	Description string
	Status      WarehouseStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
