package dto

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
