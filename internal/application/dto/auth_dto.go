package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Identification string `json:"identification"`
	Password       string `json:"password"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
