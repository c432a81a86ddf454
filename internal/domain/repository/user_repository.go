package repository

import (
	"context"

	"github.com/sbastiane/conteo-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas devuelven el usuario con sus bodegas asignadas cargadas.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User, warehouseCodes []string) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByIdentification(ctx context.Context, identification string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Update actualiza nombre, password y rol; si warehouseCodes no es nil,
	// reemplaza las asignaciones de bodega completas.
	Update(ctx context.Context, user *entity.User, warehouseCodes []string) error
	Delete(ctx context.Context, id string) error
}
