package dto

// ProductResponse salida de un producto.
type ProductResponse struct {
	Code             string `json:"code"`
	Description      string `json:"description"`
	PackagingUnit    string `json:"packagingUnit"`
	ConversionFactor int    `json:"conversionFactor"`
}
