package repository

import (
	"context"

	"github.com/sbastiane/conteo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
}
