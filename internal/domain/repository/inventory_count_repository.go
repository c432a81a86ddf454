package repository

import (
	"context"
	"time"

	"github.com/sbastiane/conteo-api/internal/domain/entity"
)

// InventoryCountFilter filtros opcionales para listar conteos. Cada campo
// es independiente y nullable; CutoffDate compara solo la fecha calendario.
type InventoryCountFilter struct {
	CountNumber   *int
	CutoffDate    *time.Time
	WarehouseCode *string
	ProductCode   *string
}

// InventoryCountRepository define el puerto de persistencia para InventoryCount (DIP).
// La tabla subyacente debe garantizar con un índice único la tupla
// (product_code, warehouse_code, cutoff_date, count_number); Create traduce
// esa violación al error de duplicado de negocio.
type InventoryCountRepository interface {
	Create(ctx context.Context, count *entity.InventoryCount) error
	GetByID(ctx context.Context, id string) (*entity.InventoryCount, error)
	GetDetailByID(ctx context.Context, id string) (*entity.InventoryCountDetail, error)
	// GetByNaturalKey busca por la tupla natural; la fecha se compara solo por día.
	GetByNaturalKey(ctx context.Context, productCode, warehouseCode string, cutoffDate time.Time, countNumber int) (*entity.InventoryCount, error)
	// List devuelve los conteos que cumplen el filtro, ordenados por
	// cutoff_date DESC, count_number ASC, created_at DESC.
	List(ctx context.Context, filter InventoryCountFilter) ([]*entity.InventoryCountDetail, error)
	Update(ctx context.Context, count *entity.InventoryCount) error
	Delete(ctx context.Context, id string) error
}
