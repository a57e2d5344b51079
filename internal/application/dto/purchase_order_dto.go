package dto

import "time"

// CreatePurchaseOrderRequest entrada para crear una PO. Quantity admite número o texto numérico.
type CreatePurchaseOrderRequest struct {
	SkuID    string `json:"skuId" validate:"required,uuid"`
	Quantity string `json:"quantity" validate:"required,int_gt0"`
}

// PurchaseOrderResponse salida de una PO.
type PurchaseOrderResponse struct {
	ID         string       `json:"id"`
	SkuID      string       `json:"skuId"`
	SupplierID string       `json:"supplierId"`
	Quantity   int          `json:"quantity"`
	Status     string       `json:"status"`
	ETA        *time.Time   `json:"eta"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	Sku        *SkuRef      `json:"sku,omitempty"`
	Supplier   *SupplierRef `json:"supplier,omitempty"`
}

// PurchaseOrderListResponse cuerpo de GET /api/po.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
}

// PurchaseOrderEnvelope cuerpo de POST /api/po.
type PurchaseOrderEnvelope struct {
	Success bool                   `json:"success"`
	PO      *PurchaseOrderResponse `json:"po"`
}
