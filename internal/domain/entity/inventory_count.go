package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CountStatus estado de revisión de un conteo.
type CountStatus string

const (
	CountPending          CountStatus = "PENDING"
	CountApproved         CountStatus = "APPROVED"
	CountRecountRequested CountStatus = "RECOUNT_REQUESTED"
	CountRejected         CountStatus = "REJECTED"
)

// InventoryCount registro de un conteo físico de un producto en una bodega
// a una fecha de corte. La tupla (ProductCode, WarehouseCode, CutoffDate,
// CountNumber) es única; CountNumber es la ronda de conteo (1 a 3).
// UnitQuantity siempre es PackageQuantity * factor de conversión del producto.
type InventoryCount struct {
	ID              string
	CountNumber     int
	CutoffDate      time.Time // solo fecha; la hora es irrelevante
	WarehouseCode   string
	ProductCode     string
	PackageQuantity decimal.Decimal
	UnitQuantity    decimal.Decimal
	Status          CountStatus
	UserID          string // creador / último en modificar la cantidad
	ReviewedBy      *string
	ReviewedAt      *time.Time
	ReviewNotes     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InventoryCountDetail conteo junto con los campos de presentación de
// producto, bodega y usuario (equivalente al include de las consultas).
type InventoryCountDetail struct {
	InventoryCount
	Product   Product
	Warehouse Warehouse
	User      UserSummary
}
