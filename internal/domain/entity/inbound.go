package entity

import "time"

// Inbound envío entrante asociado a una PO. Una PO puede tener varios.
type Inbound struct {
	ID             string
	PoID           string
	Courier        string
	TrackingNumber string
	ETA            *time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// PO se rellena en lecturas con join (incluye Sku y Supplier).
	PO *PurchaseOrder
}
