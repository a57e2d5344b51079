package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const purchaseOrderSelect = `
	SELECT po.id, po.sku_id, po.supplier_id, po.quantity, po.status, po.eta,
	       po.created_at, po.updated_at, s.id, s.name, sp.id, sp.name
	FROM purchase_orders po
	JOIN skus s ON s.id = po.sku_id
	JOIN suppliers sp ON sp.id = po.supplier_id`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Acepta pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste una orden. Un SKU o proveedor borrado entre la lectura y el insert devuelve domain.ErrConflict.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, sku_id, supplier_id, quantity, status, eta, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		po.ID, po.SkuID, po.SupplierID, po.Quantity, po.Status, po.ETA, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con SKU y proveedor.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	if !validID(id) {
		return nil, nil
	}
	po, err := scanPurchaseOrder(r.q.QueryRow(ctx, purchaseOrderSelect+` WHERE po.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return po, nil
}

// List devuelve todas las órdenes, las más recientes primero.
func (r *PurchaseOrderRepo) List(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(ctx, purchaseOrderSelect+` ORDER BY po.updated_at DESC, po.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, po)
	}
	return list, rows.Err()
}

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	var sku entity.SkuRef
	var sp entity.SupplierRef
	if err := row.Scan(
		&po.ID, &po.SkuID, &po.SupplierID, &po.Quantity, &po.Status, &po.ETA,
		&po.CreatedAt, &po.UpdatedAt, &sku.ID, &sku.Name, &sp.ID, &sp.Name,
	); err != nil {
		return nil, err
	}
	po.Sku = &sku
	po.Supplier = &sp
	return &po, nil
}
