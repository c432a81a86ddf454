package dto

// Response envoltura estándar de todas las respuestas de la API.
type Response struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError error de validación a nivel de campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK respuesta exitosa con datos.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage respuesta exitosa con solo mensaje.
func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail respuesta de error con mensaje.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailFields respuesta de error de validación con detalle por campo.
func FailFields(message string, errors []FieldError) Response {
	return Response{Success: false, Message: message, Errors: errors}
}
