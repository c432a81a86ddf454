package entity

import "time"

// Role rol de un usuario dentro de la aplicación.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User usuario que registra conteos o los revisa (ADMIN).
// Warehouses son las bodegas asignadas; un ADMIN tiene acceso a todas.
type User struct {
	ID             string
	Identification string // cédula, única
	Name           string
	Password       string // hash bcrypt
	Role           Role
	Warehouses     []Warehouse
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasWarehouse indica si el usuario tiene asignada la bodega con ese código.
func (u *User) HasWarehouse(code string) bool {
	for _, w := range u.Warehouses {
		if w.Code == code {
			return true
		}
	}
	return false
}

// UserSummary campos de presentación del usuario en respuestas anidadas.
type UserSummary struct {
	ID             string
	Identification string
	Name           string
}
