package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("no tiene permisos para realizar esta acción")
)

// ValidationError regla de negocio violada (HTTP 400 en la capa de transporte).
type ValidationError struct {
	Message string
}

// NewValidationError construye un error de validación con el mensaje de negocio.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError recurso referenciado inexistente (HTTP 404 en la capa de transporte).
type NotFoundError struct {
	Message string
}

// NewNotFoundError construye un error de recurso no encontrado.
func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string { return e.Message }

// IsValidation indica si err es (o envuelve) un ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound indica si err es (o envuelve) un NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
