package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sku producto comprable. El par (Name, SupplierID) es único.
type Sku struct {
	ID          string
	Name        string
	Description *string
	Category    string
	Cost        decimal.Decimal
	SupplierID  string
	LeadTime    int // días
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Supplier se rellena en lecturas con join; nil en escrituras.
	Supplier *SupplierRef
}

// SkuRef vista reducida del SKU usada en joins.
type SkuRef struct {
	ID   string
	Name string
}
