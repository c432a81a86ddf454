package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sbastiane/conteo-api/internal/domain"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
	"github.com/sbastiane/conteo-api/internal/domain/repository"
)

var _ repository.InventoryCountRepository = (*InventoryCountRepo)(nil)

// InventoryCountRepo implementación del puerto InventoryCountRepository sobre
// PostgreSQL. La tabla inventory_counts tiene un índice único sobre
// (product_code, warehouse_code, cutoff_date, count_number); cutoff_date es
// una columna DATE, así que la comparación de la tupla es solo por día.
type InventoryCountRepo struct {
	db Querier
}

// NewInventoryCountRepository construye el adaptador de persistencia para conteos.
func NewInventoryCountRepository(db Querier) *InventoryCountRepo {
	return &InventoryCountRepo{db: db}
}

const countColumns = `
	c.id, c.count_number, c.cutoff_date, c.warehouse_code, c.product_code,
	c.package_quantity, c.unit_quantity, c.status, c.user_id,
	c.reviewed_by, c.reviewed_at, c.review_notes, c.created_at, c.updated_at`

const detailColumns = countColumns + `,
	p.code, p.description, p.packaging_unit, p.conversion_factor,
	w.code, w.description, w.status,
	u.id, u.identification, u.name`

const detailFrom = `
	FROM inventory_counts c
	JOIN products p ON p.code = c.product_code
	JOIN warehouses w ON w.code = c.warehouse_code
	JOIN users u ON u.id = c.user_id`

// Create persiste un conteo nuevo. Una violación del índice único de la tupla
// natural (carrera entre dos creaciones concurrentes) se traduce al mismo
// error de duplicado que la verificación de negocio.
func (r *InventoryCountRepo) Create(ctx context.Context, count *entity.InventoryCount) error {
	query := `
		INSERT INTO inventory_counts (
			id, count_number, cutoff_date, warehouse_code, product_code,
			package_quantity, unit_quantity, status, user_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		count.ID, count.CountNumber, count.CutoffDate, count.WarehouseCode, count.ProductCode,
		count.PackageQuantity, count.UnitQuantity, count.Status, count.UserID,
		count.CreatedAt, count.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError(fmt.Sprintf(
				"Ya existe un registro para el conteo %d de este producto en esta bodega y fecha", count.CountNumber))
		}
		return fmt.Errorf("insert inventory count: %w", err)
	}
	return nil
}

// GetByID obtiene un conteo por ID (sin joins).
func (r *InventoryCountRepo) GetByID(ctx context.Context, id string) (*entity.InventoryCount, error) {
	query := `SELECT` + countColumns + ` FROM inventory_counts c WHERE c.id = $1`
	var c entity.InventoryCount
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CountNumber, &c.CutoffDate, &c.WarehouseCode, &c.ProductCode,
		&c.PackageQuantity, &c.UnitQuantity, &c.Status, &c.UserID,
		&c.ReviewedBy, &c.ReviewedAt, &c.ReviewNotes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory count: %w", err)
	}
	return &c, nil
}

// GetDetailByID obtiene un conteo por ID con producto, bodega y usuario.
func (r *InventoryCountRepo) GetDetailByID(ctx context.Context, id string) (*entity.InventoryCountDetail, error) {
	query := `SELECT` + detailColumns + detailFrom + ` WHERE c.id = $1`
	d, err := scanDetail(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory count detail: %w", err)
	}
	return d, nil
}

// GetByNaturalKey busca por la tupla natural; cutoff_date es DATE, la
// comparación ignora cualquier componente de hora del parámetro.
func (r *InventoryCountRepo) GetByNaturalKey(ctx context.Context, productCode, warehouseCode string, cutoffDate time.Time, countNumber int) (*entity.InventoryCount, error) {
	query := `SELECT` + countColumns + `
		FROM inventory_counts c
		WHERE c.product_code = $1 AND c.warehouse_code = $2
		  AND c.cutoff_date = $3::date AND c.count_number = $4`
	var c entity.InventoryCount
	err := r.db.QueryRow(ctx, query, productCode, warehouseCode, cutoffDate, countNumber).Scan(
		&c.ID, &c.CountNumber, &c.CutoffDate, &c.WarehouseCode, &c.ProductCode,
		&c.PackageQuantity, &c.UnitQuantity, &c.Status, &c.UserID,
		&c.ReviewedBy, &c.ReviewedAt, &c.ReviewNotes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory count by natural key: %w", err)
	}
	return &c, nil
}

// List devuelve los conteos que cumplen el filtro con producto, bodega y
// usuario, ordenados por cutoff_date DESC, count_number ASC, created_at DESC.
func (r *InventoryCountRepo) List(ctx context.Context, filter repository.InventoryCountFilter) ([]*entity.InventoryCountDetail, error) {
	var conditions []string
	var args []any

	if filter.CountNumber != nil {
		args = append(args, *filter.CountNumber)
		conditions = append(conditions, fmt.Sprintf("c.count_number = $%d", len(args)))
	}
	if filter.CutoffDate != nil {
		args = append(args, *filter.CutoffDate)
		conditions = append(conditions, fmt.Sprintf("c.cutoff_date = $%d::date", len(args)))
	}
	if filter.WarehouseCode != nil {
		args = append(args, *filter.WarehouseCode)
		conditions = append(conditions, fmt.Sprintf("c.warehouse_code = $%d", len(args)))
	}
	if filter.ProductCode != nil {
		args = append(args, *filter.ProductCode)
		conditions = append(conditions, fmt.Sprintf("c.product_code = $%d", len(args)))
	}

	query := `SELECT` + detailColumns + detailFrom
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY c.cutoff_date DESC, c.count_number ASC, c.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory counts: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryCountDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory count: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update persiste cantidad, usuario y campos de revisión de un conteo.
func (r *InventoryCountRepo) Update(ctx context.Context, count *entity.InventoryCount) error {
	query := `
		UPDATE inventory_counts SET
			package_quantity = $2, unit_quantity = $3, status = $4, user_id = $5,
			reviewed_by = $6, reviewed_at = $7, review_notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		count.ID, count.PackageQuantity, count.UnitQuantity, count.Status, count.UserID,
		count.ReviewedBy, count.ReviewedAt, count.ReviewNotes, count.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory count: %w", err)
	}
	return nil
}

// Delete elimina un conteo por ID.
func (r *InventoryCountRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM inventory_counts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory count: %w", err)
	}
	return nil
}

func scanDetail(row pgx.Row) (*entity.InventoryCountDetail, error) {
	var d entity.InventoryCountDetail
	err := row.Scan(
		&d.ID, &d.CountNumber, &d.CutoffDate, &d.WarehouseCode, &d.ProductCode,
		&d.PackageQuantity, &d.UnitQuantity, &d.Status, &d.UserID,
		&d.ReviewedBy, &d.ReviewedAt, &d.ReviewNotes, &d.CreatedAt, &d.UpdatedAt,
		&d.Product.Code, &d.Product.Description, &d.Product.PackagingUnit, &d.Product.ConversionFactor,
		&d.Warehouse.Code, &d.Warehouse.Description, &d.Warehouse.Status,
		&d.User.ID, &d.User.Identification, &d.User.Name,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
