package conteo

import (
	"strings"
	"time"

	"github.com/sbastiane/conteo-api/internal/domain"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
)

// Máquina de estados de revisión. PENDING es el único estado revisable;
// APPROVED, REJECTED y RECOUNT_REQUESTED son terminales para el registro
// (no existe reapertura). Ninguna transición es reversible.

// Approve marca el conteo como aprobado y registra los campos de revisión.
func Approve(count *entity.InventoryCount, adminID string, notes *string, now time.Time) error {
	if err := ensureReviewable(count); err != nil {
		return err
	}
	applyReview(count, entity.CountApproved, adminID, notes, now)
	return nil
}

// Reject marca el conteo como rechazado. Las notas son obligatorias: un
// rechazo sin justificación no es accionable para quien debe recontar.
func Reject(count *entity.InventoryCount, adminID string, notes string, now time.Time) error {
	if err := ensureReviewable(count); err != nil {
		return err
	}
	if strings.TrimSpace(notes) == "" {
		return domain.NewValidationError("Las notas son requeridas para rechazar un conteo")
	}
	applyReview(count, entity.CountRejected, adminID, &notes, now)
	return nil
}

// RequestRecount libera el conteo para una nueva ronda. Es la única
// transición que habilita la creación de la ronda siguiente.
// nextRoundExists indica si ya hay un conteo countNumber+1 para la tupla.
func RequestRecount(count *entity.InventoryCount, adminID string, notes *string, nextRoundExists bool, now time.Time) error {
	if err := ensureReviewable(count); err != nil {
		return err
	}
	if count.CountNumber >= MaxCountNumber {
		return domain.NewValidationError("El conteo 3 es el final, no es posible solicitar otro reconteo")
	}
	if nextRoundExists {
		return domain.NewValidationError("Ya existe un conteo posterior registrado para este producto, bodega y fecha")
	}
	applyReview(count, entity.CountRecountRequested, adminID, notes, now)
	return nil
}

func ensureReviewable(count *entity.InventoryCount) error {
	if count.Status != entity.CountPending {
		return domain.NewValidationError("El conteo no está en estado revisable")
	}
	return nil
}

func applyReview(count *entity.InventoryCount, status entity.CountStatus, adminID string, notes *string, now time.Time) {
	count.Status = status
	count.ReviewedBy = &adminID
	count.ReviewedAt = &now
	count.ReviewNotes = notes
	count.UpdatedAt = now
}
