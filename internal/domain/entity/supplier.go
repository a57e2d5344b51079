package entity

import "time"

// SupplierStatus estado de un proveedor.
type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "active"
	SupplierInactive SupplierStatus = "inactive"
)

// Valid indica si el estado pertenece al conjunto cerrado active|inactive.
func (s SupplierStatus) Valid() bool {
	return s == SupplierActive || s == SupplierInactive
}

// Supplier proveedor de SKUs. Name es único; nunca se borra físicamente.
type Supplier struct {
	ID        string
	Name      string
	Status    SupplierStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierRef vista reducida del proveedor usada en joins.
type SupplierRef struct {
	ID   string
	Name string
}
