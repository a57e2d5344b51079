package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SkuForm campos del formulario de alta/edición de SKU. Los numéricos llegan como
// texto (form-data) y se validan antes de convertirse.
// SupplierID es el token posicional "supplier-N" o el ID directo de un proveedor activo.
type SkuForm struct {
	Name        string `json:"name" validate:"required,notblank,max=200"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,notblank"`
	Cost        string `json:"cost" validate:"required,decimal_gte0"`
	SupplierID  string `json:"supplierId" validate:"required"`
	LeadTime    string `json:"leadTime" validate:"required,int_gte0"`
}

// SkuListRequest filtros de GET /api/skus.
type SkuListRequest struct {
	PageRequest
	Q          string `query:"q"`
	Category   string `query:"category"`
	SupplierID string `query:"supplierId"`
	Sort       string `query:"sort"` // campo:dirección, ej. "updatedAt:desc"
}

// SkuResponse salida de un SKU.
type SkuResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Category    string          `json:"category"`
	Cost        decimal.Decimal `json:"cost"`
	SupplierID  string          `json:"supplierId"`
	LeadTime    int             `json:"leadTime"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Supplier    *SupplierRef    `json:"supplier,omitempty"`
}

// SkuListResponse lista paginada de SKUs.
type SkuListResponse struct {
	Items    []SkuResponse `json:"items"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// SkuEnvelope cuerpo de POST/PUT /api/skus.
type SkuEnvelope struct {
	Success bool         `json:"success"`
	Sku     *SkuResponse `json:"sku"`
}
