package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor. Name se recorta antes de validar.
type CreateSupplierRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=120"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SupplierEnvelope cuerpo de POST /api/suppliers.
type SupplierEnvelope struct {
	Supplier *SupplierResponse `json:"supplier"`
	Error    string            `json:"error,omitempty"`
}
