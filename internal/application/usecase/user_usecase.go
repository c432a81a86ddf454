package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbastiane/conteo-api/internal/application/auth"
	"github.com/sbastiane/conteo-api/internal/application/dto"
	"github.com/sbastiane/conteo-api/internal/domain"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
	"github.com/sbastiane/conteo-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios (solo administradores).
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Create crea un usuario con sus bodegas asignadas; hashea el password con bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByIdentification(ctx, in.Identification)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("Ya existe un usuario con esta identificación")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		Identification: in.Identification,
		Name:           in.Name,
		Password:       string(hash),
		Role:           entity.Role(in.Role),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.users.Create(ctx, user, in.WarehouseIDs); err != nil {
		return nil, err
	}
	created, err := uc.users.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(created), nil
}

// List lista todos los usuarios con sus bodegas.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("Usuario no encontrado")
	}
	return auth.ToUserResponse(user), nil
}

// Update actualiza nombre, password, rol y/o asignaciones de bodega.
// WarehouseIDs nil deja las asignaciones como están; no nil las reemplaza.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("Usuario no encontrado")
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		user.Role = entity.Role(*in.Role)
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := uc.users.Update(ctx, user, in.WarehouseIDs); err != nil {
		return nil, err
	}
	updated, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(updated), nil
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (string, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.NewNotFoundError("Usuario no encontrado")
	}
	if err := uc.users.Delete(ctx, id); err != nil {
		return "", err
	}
	return "Usuario eliminado correctamente", nil
}
