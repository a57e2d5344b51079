package repository

import (
	"context"

	"github.com/jhoicas/Supply-api/internal/domain/entity"
)

// SkuSortField columnas por las que se puede ordenar el listado de SKUs.
type SkuSortField string

const (
	SkuSortName      SkuSortField = "name"
	SkuSortUpdatedAt SkuSortField = "updatedAt"
	SkuSortCost      SkuSortField = "cost"
)

// SkuFilter criterios del listado de SKUs. Los criterios no vacíos se combinan con AND.
type SkuFilter struct {
	Query      string // contiene: id, nombre, descripción, categoría o nombre del proveedor
	Category   string // contiene
	SupplierID string // igualdad exacta
	SortField  SkuSortField
	SortDesc   bool
	Limit      int
	Offset     int
}

// SkuRepository define el puerto de persistencia para Sku (DIP).
type SkuRepository interface {
	Create(ctx context.Context, sku *entity.Sku) error
	// Upsert inserta por (name, supplier_id) o devuelve el existente sin modificarlo.
	Upsert(ctx context.Context, sku *entity.Sku) (*entity.Sku, error)
	// GetByID incluye el proveedor (Sku.Supplier). (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Sku, error)
	// FindByNameAndSupplier busca otro SKU con el mismo par; excludeID vacío no excluye nada.
	FindByNameAndSupplier(ctx context.Context, name, supplierID, excludeID string) (*entity.Sku, error)
	// List devuelve la página pedida y el total de filas que cumplen el filtro.
	List(ctx context.Context, filter SkuFilter) ([]*entity.Sku, int, error)
	Update(ctx context.Context, sku *entity.Sku) error
	Delete(ctx context.Context, id string) error
}
