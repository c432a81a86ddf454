package conteo

import (
	"fmt"

	"github.com/sbastiane/conteo-api/internal/domain"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
)

// Rango permitido de rondas de conteo para una misma tupla
// (producto, bodega, fecha de corte). La ronda 3 es terminal.
const (
	MinCountNumber = 1
	MaxCountNumber = 3
)

// CheckEligibility decide si puede crearse el conteo de la ronda countNumber.
// previous es el conteo de la ronda anterior para la misma tupla (nil si no
// existe); para la ronda 1 se ignora.
//
// Cada ronda queda bloqueada hasta que un administrador libere la anterior
// con una solicitud de reconteo: es una compuerta estrictamente secuencial.
func CheckEligibility(countNumber int, previous *entity.InventoryCount) error {
	if countNumber < MinCountNumber || countNumber > MaxCountNumber {
		return domain.NewValidationError("El número de conteo debe estar entre 1 y 3")
	}
	if countNumber == MinCountNumber {
		return nil
	}
	if previous == nil {
		return domain.NewValidationError(fmt.Sprintf(
			"No existe el conteo %d para este producto en esta bodega y fecha", countNumber-1))
	}
	if previous.Status != entity.CountRecountRequested {
		return domain.NewValidationError(fmt.Sprintf(
			"El conteo %d no fue liberado para reconteo", countNumber-1))
	}
	return nil
}
