// Package conteo contiene los servicios de dominio del ciclo de conteo
// físico: conversión empaque↔unidad, elegibilidad de rondas y la máquina
// de estados de revisión. Todo es puro, sin I/O.
package conteo

import (
	"github.com/shopspring/decimal"

	"github.com/sbastiane/conteo-api/internal/domain"
)

// ConvertPackageToUnits convierte cantidad de empaques a unidades mínimas:
// multiplicación exacta por el factor de conversión (sin redondeo; la
// cantidad de empaques puede ser fraccionaria).
func ConvertPackageToUnits(packageQuantity decimal.Decimal, conversionFactor int) (decimal.Decimal, error) {
	if packageQuantity.IsNegative() {
		return decimal.Zero, domain.NewValidationError("La cantidad de empaques no puede ser negativa")
	}
	if conversionFactor <= 0 {
		return decimal.Zero, domain.NewValidationError("El factor de conversión debe ser mayor a cero")
	}
	return packageQuantity.Mul(decimal.NewFromInt(int64(conversionFactor))), nil
}

// ConvertUnitsToPackage convierte unidades mínimas a empaques completos:
// división entera hacia abajo (los empaques incompletos se truncan).
func ConvertUnitsToPackage(unitQuantity decimal.Decimal, conversionFactor int) (decimal.Decimal, error) {
	if unitQuantity.IsNegative() {
		return decimal.Zero, domain.NewValidationError("La cantidad de unidades no puede ser negativa")
	}
	if conversionFactor <= 0 {
		return decimal.Zero, domain.NewValidationError("El factor de conversión debe ser mayor a cero")
	}
	return unitQuantity.Div(decimal.NewFromInt(int64(conversionFactor))).Floor(), nil
}
