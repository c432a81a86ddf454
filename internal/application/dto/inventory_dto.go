package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryCountRequest body para POST /api/inventory-counts.
// warehouseId y productId son los códigos naturales de bodega y producto.
type CreateInventoryCountRequest struct {
	CountNumber     int             `json:"countNumber"`
	CutoffDate      string          `json:"cutoffDate"` // YYYY-MM-DD
	WarehouseID     string          `json:"warehouseId"`
	ProductID       string          `json:"productId"`
	PackageQuantity decimal.Decimal `json:"packageQuantity"`
}

// QueryInventoryCountRequest filtros de query para GET /api/inventory-counts.
type QueryInventoryCountRequest struct {
	CountNumber *int    `query:"countNumber"`
	CutoffDate  *string `query:"cutoffDate"` // YYYY-MM-DD, compara el día completo
	WarehouseID *string `query:"warehouseId"`
	ProductID   *string `query:"productId"`
}

// UpdateInventoryCountRequest body para PUT /api/inventory-counts/:id.
type UpdateInventoryCountRequest struct {
	PackageQuantity decimal.Decimal `json:"packageQuantity"`
}

// ReviewRequest body para las acciones de revisión (approve / request-recount / reject).
// Notes es obligatorio solo para reject.
type ReviewRequest struct {
	Notes *string `json:"notes"`
}

// InventoryCountResponse salida de un conteo con producto, bodega y usuario.
type InventoryCountResponse struct {
	ID              string                    `json:"id"`
	CountNumber     int                       `json:"countNumber"`
	CutoffDate      string                    `json:"cutoffDate"` // YYYY-MM-DD
	WarehouseID     string                    `json:"warehouseId"`
	ProductID       string                    `json:"productId"`
	PackageQuantity decimal.Decimal           `json:"packageQuantity"`
	UnitQuantity    decimal.Decimal           `json:"unitQuantity"`
	Status          string                    `json:"status"`
	ReviewedBy      *string                   `json:"reviewedBy"`
	ReviewedAt      *time.Time                `json:"reviewedAt"`
	ReviewNotes     *string                   `json:"reviewNotes"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
	Product         ProductResponse           `json:"product"`
	Warehouse       WarehouseResponse         `json:"warehouse"`
	User            InventoryCountUserSummary `json:"user"`
}

// InventoryCountUserSummary usuario anidado en la respuesta de un conteo.
type InventoryCountUserSummary struct {
	ID             string `json:"id"`
	Identification string `json:"identification"`
	Name           string `json:"name"`
}
