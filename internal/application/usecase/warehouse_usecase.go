package usecase

import (
	"context"

	"github.com/sbastiane/conteo-api/internal/application/dto"
	"github.com/sbastiane/conteo-api/internal/domain/repository"
)

// WarehouseUseCase catálogo de bodegas (solo lectura).
type WarehouseUseCase struct {
	warehouses repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouses repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouses: warehouses}
}

// List lista todas las bodegas ordenadas por código.
func (uc *WarehouseUseCase) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouses.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, dto.WarehouseResponse{
			Code:        w.Code,
			Description: w.Description,
			Status:      string(w.Status),
		})
	}
	return items, nil
}
