package entity

import "time"

// Estados conocidos de PO e Inbound. Status es texto libre: estos valores no
// se imponen y no se validan transiciones (draft → approved → sent → in_transit → delayed|received).
const (
	StatusDraft     = "draft"
	StatusApproved  = "approved"
	StatusSent      = "sent"
	StatusInTransit = "in_transit"
	StatusDelayed   = "delayed"
	StatusReceived  = "received"
)

// PurchaseOrder orden de compra de un SKU.
// SupplierID se copia del SKU al crear la orden y no se recalcula después.
type PurchaseOrder struct {
	ID         string
	SkuID      string
	SupplierID string
	Quantity   int
	Status     string
	ETA        *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Rellenados en lecturas con join.
	Sku      *SkuRef
	Supplier *SupplierRef
}
