package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Identification string   `json:"identification"`
	Name           string   `json:"name"`
	Password       string   `json:"password"`
	Role           string   `json:"role"` // "ADMIN" | "USER"
	WarehouseIDs   []string `json:"warehouseIds"`
}

// UpdateUserRequest entrada para actualizar un usuario; todos los campos opcionales.
type UpdateUserRequest struct {
	Name         *string  `json:"name"`
	Password     *string  `json:"password"`
	Role         *string  `json:"role"`
	WarehouseIDs []string `json:"warehouseIds"` // nil = no tocar asignaciones
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string              `json:"id"`
	Identification string              `json:"identification"`
	Name           string              `json:"name"`
	Role           string              `json:"role"`
	Warehouses     []WarehouseResponse `json:"warehouses"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
