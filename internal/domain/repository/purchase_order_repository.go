package repository

import (
	"context"

	"github.com/jhoicas/Supply-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	// GetByID incluye SKU y proveedor. (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	// List devuelve todas las órdenes por updated_at descendente, con SKU y proveedor.
	List(ctx context.Context) ([]*entity.PurchaseOrder, error)
}
