package usecase

import (
	"context"

	"github.com/sbastiane/conteo-api/internal/application/dto"
	"github.com/sbastiane/conteo-api/internal/domain/repository"
)

// ProductUseCase catálogo de productos (solo lectura).
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// List lista todos los productos ordenados por código.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductResponse{
			Code:             p.Code,
			Description:      p.Description,
			PackagingUnit:    string(p.PackagingUnit),
			ConversionFactor: p.ConversionFactor,
		})
	}
	return items, nil
}
