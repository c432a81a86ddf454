package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sbastiane/conteo-api/internal/domain/entity"
	"github.com/sbastiane/conteo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	query := `
		SELECT code, description, packaging_unit, conversion_factor, created_at, updated_at
		FROM products WHERE code = $1`
	var p entity.Product
	err := r.db.QueryRow(ctx, query, code).Scan(
		&p.Code, &p.Description, &p.PackagingUnit, &p.ConversionFactor, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista todos los productos ordenados por código.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT code, description, packaging_unit, conversion_factor, created_at, updated_at
		FROM products ORDER BY code ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Code, &p.Description, &p.PackagingUnit, &p.ConversionFactor, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
