package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbastiane/conteo-api/internal/application/dto"
	"github.com/sbastiane/conteo-api/internal/domain"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
	"github.com/sbastiane/conteo-api/internal/domain/repository"
	"github.com/sbastiane/conteo-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: login por identificación.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifica identificación/password, genera JWT y retorna token + usuario
// con sus bodegas. Devuelve ErrInvalidCredentials sin distinguir usuario
// inexistente de password incorrecto.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByIdentification(ctx, in.Identification)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Identification, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse mapea un usuario de dominio a su DTO (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	warehouses := make([]dto.WarehouseResponse, 0, len(u.Warehouses))
	for _, w := range u.Warehouses {
		warehouses = append(warehouses, dto.WarehouseResponse{
			Code:        w.Code,
			Description: w.Description,
			Status:      string(w.Status),
		})
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Identification: u.Identification,
		Name:           u.Name,
		Role:           string(u.Role),
		Warehouses:     warehouses,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
