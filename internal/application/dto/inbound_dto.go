package dto

import "time"

// CreateInboundRequest entrada para registrar un envío. Los campos se recortan antes de validar.
type CreateInboundRequest struct {
	PoID           string `json:"poId" validate:"required"`
	Courier        string `json:"courier" validate:"required"`
	TrackingNumber string `json:"trackingNumber" validate:"required"`
	ETA            string `json:"eta"`
	Status         string `json:"status"`
}

// UpdateInboundRequest actualización parcial. Valores vacíos o ETA no parseable se ignoran.
type UpdateInboundRequest struct {
	Status *string `json:"status"`
	ETA    *string `json:"eta"`
}

// InboundResponse salida de un envío.
type InboundResponse struct {
	ID             string                 `json:"id"`
	PoID           string                 `json:"poId"`
	Courier        string                 `json:"courier"`
	TrackingNumber string                 `json:"trackingNumber"`
	ETA            *time.Time             `json:"eta"`
	Status         string                 `json:"status"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	PO             *PurchaseOrderResponse `json:"po,omitempty"`
}

// InboundListResponse cuerpo de GET /api/inbound.
type InboundListResponse struct {
	Items []InboundResponse `json:"items"`
}

// InboundEnvelope cuerpo de GET/POST/PUT /api/inbound/:id.
type InboundEnvelope struct {
	Item *InboundResponse `json:"item"`
}
