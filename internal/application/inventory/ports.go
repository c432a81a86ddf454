package inventory

import (
	"context"

	"github.com/sbastiane/conteo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la verificación de
// elegibilidad/duplicado y el insert del conteo sean una sola unidad atómica
// (el índice único de la tabla sigue siendo el respaldo ante carreras).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		countRepo repository.InventoryCountRepository,
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
	) error) error
}
