package repository

import (
	"context"

	"github.com/jhoicas/Supply-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Los métodos Get* devuelven (nil, nil) si no existe el registro.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	// Upsert inserta por nombre o devuelve el existente sin modificarlo.
	Upsert(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	GetByName(ctx context.Context, name string) (*entity.Supplier, error)
	// ListActive devuelve los proveedores activos ordenados por nombre ascendente.
	ListActive(ctx context.Context) ([]*entity.Supplier, error)
}
