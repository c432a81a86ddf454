package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sbastiane/conteo-api/internal/domain"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
	"github.com/sbastiane/conteo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un usuario y sus asignaciones de bodega.
func (r *UserRepo) Create(ctx context.Context, user *entity.User, warehouseCodes []string) error {
	query := `
		INSERT INTO users (id, identification, name, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Identification, user.Name, user.Password, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidationError("Ya existe un usuario con esta identificación")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return r.insertWarehouses(ctx, user.ID, warehouseCodes)
}

// GetByID obtiene un usuario por ID con sus bodegas.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByIdentification obtiene un usuario por identificación con sus bodegas.
func (r *UserRepo) GetByIdentification(ctx context.Context, identification string) (*entity.User, error) {
	return r.getOne(ctx, `WHERE identification = $1`, identification)
}

func (r *UserRepo) getOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, identification, name, password, role, created_at, updated_at
		FROM users ` + where
	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Identification, &u.Name, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	warehouses, err := r.loadWarehouses(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Warehouses = warehouses
	return &u, nil
}

// List lista todos los usuarios con sus bodegas, más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, identification, name, password, role, created_at, updated_at
		FROM users ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Identification, &u.Name, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, u := range list {
		warehouses, err := r.loadWarehouses(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		u.Warehouses = warehouses
	}
	return list, nil
}

// Update actualiza los campos del usuario; si warehouseCodes no es nil,
// reemplaza las asignaciones de bodega completas.
func (r *UserRepo) Update(ctx context.Context, user *entity.User, warehouseCodes []string) error {
	query := `
		UPDATE users SET name = $2, password = $3, role = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Password, user.Role, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if warehouseCodes == nil {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM user_warehouses WHERE user_id = $1`, user.ID); err != nil {
		return fmt.Errorf("delete user warehouses: %w", err)
	}
	return r.insertWarehouses(ctx, user.ID, warehouseCodes)
}

// Delete elimina un usuario por ID (las asignaciones caen por cascada).
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepo) insertWarehouses(ctx context.Context, userID string, warehouseCodes []string) error {
	for _, code := range warehouseCodes {
		_, err := r.db.Exec(ctx,
			`INSERT INTO user_warehouses (user_id, warehouse_code) VALUES ($1, $2)`,
			userID, code,
		)
		if err != nil {
			return fmt.Errorf("insert user warehouse: %w", err)
		}
	}
	return nil
}

func (r *UserRepo) loadWarehouses(ctx context.Context, userID string) ([]entity.Warehouse, error) {
	query := `
		SELECT w.code, w.description, w.status, w.created_at, w.updated_at
		FROM user_warehouses uw
		JOIN warehouses w ON w.code = uw.warehouse_code
		WHERE uw.user_id = $1
		ORDER BY w.code ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("load user warehouses: %w", err)
	}
	defer rows.Close()
	var list []entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.Code, &w.Description, &w.Status, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
