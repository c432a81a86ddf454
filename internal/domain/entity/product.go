package entity

import "time"

// PackagingUnit unidad de empaque natural del producto.
type PackagingUnit string

const (
	PackagingCaja   PackagingUnit = "CAJA"
	PackagingArroba PackagingUnit = "ARROBA"
	PackagingSaco   PackagingUnit = "SACO"
	PackagingPaca   PackagingUnit = "PACA"
)

// Product producto o SKU sujeto a conteo físico.
// ConversionFactor es la cantidad de unidades mínimas por empaque (> 0).
type Product struct {
	Code             string // clave natural, ej. "4779"
	Description      string
	PackagingUnit    PackagingUnit
	ConversionFactor int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
