package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Supply-api/internal/domain/entity"
)

// InboundPatch actualización parcial de un Inbound; nil no modifica el campo.
type InboundPatch struct {
	Status *string
	ETA    *time.Time
}

// InboundRepository define el puerto de persistencia para Inbound (DIP).
type InboundRepository interface {
	Create(ctx context.Context, inbound *entity.Inbound) error
	// GetByID incluye la PO con su SKU y proveedor. (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Inbound, error)
	List(ctx context.Context) ([]*entity.Inbound, error)
	// Update aplica el patch y devuelve el registro resultante; (nil, nil) si no existe.
	Update(ctx context.Context, id string, patch InboundPatch, now time.Time) (*entity.Inbound, error)
}
