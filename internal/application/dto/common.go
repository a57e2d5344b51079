package dto

// Valores por defecto y límites de paginación.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest paginación basada en página (1-based) y tamaño.
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// Normalize aplica valores por defecto y recorta pageSize a MaxPageSize.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset filas a saltar para la página actual.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Code   string   `json:"code,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// SuccessResponse cuerpo de operaciones sin payload (DELETE).
type SuccessResponse struct {
	Success bool `json:"success"`
}

// SupplierRef proveedor embebido en otras respuestas.
type SupplierRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SkuRef SKU embebido en otras respuestas.
type SkuRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
