package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
)

var _ repository.InboundRepository = (*InboundRepo)(nil)

const inboundSelect = `
	SELECT i.id, i.po_id, i.courier, i.tracking_number, i.eta, i.status, i.created_at, i.updated_at,
	       po.id, po.sku_id, po.supplier_id, po.quantity, po.status, po.eta,
	       po.created_at, po.updated_at, s.id, s.name, sp.id, sp.name
	FROM inbounds i
	JOIN purchase_orders po ON po.id = i.po_id
	JOIN skus s ON s.id = po.sku_id
	JOIN suppliers sp ON sp.id = po.supplier_id`

// InboundRepo implementación del puerto InboundRepository sobre PostgreSQL.
type InboundRepo struct {
	q Querier
}

// NewInboundRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInboundRepository(q Querier) *InboundRepo {
	return &InboundRepo{q: q}
}

// Create persiste un envío.
func (r *InboundRepo) Create(ctx context.Context, in *entity.Inbound) error {
	query := `
		INSERT INTO inbounds (id, po_id, courier, tracking_number, eta, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		in.ID, in.PoID, in.Courier, in.TrackingNumber, in.ETA, in.Status, in.CreatedAt, in.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert inbound: %w", err)
	}
	return nil
}

// GetByID obtiene un envío con PO, SKU y proveedor.
func (r *InboundRepo) GetByID(ctx context.Context, id string) (*entity.Inbound, error) {
	if !validID(id) {
		return nil, nil
	}
	in, err := scanInbound(r.q.QueryRow(ctx, inboundSelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inbound: %w", err)
	}
	return in, nil
}

// List devuelve todos los envíos, los más recientes primero.
func (r *InboundRepo) List(ctx context.Context) ([]*entity.Inbound, error) {
	rows, err := r.q.Query(ctx, inboundSelect+` ORDER BY i.updated_at DESC, i.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list inbounds: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inbound
	for rows.Next() {
		in, err := scanInbound(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inbound: %w", err)
		}
		list = append(list, in)
	}
	return list, rows.Err()
}

// Update aplica el patch en una sola sentencia; COALESCE conserva los campos nil.
func (r *InboundRepo) Update(ctx context.Context, id string, patch repository.InboundPatch, now time.Time) (*entity.Inbound, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `
		UPDATE inbounds
		SET status = COALESCE($2, status), eta = COALESCE($3, eta), updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, patch.Status, patch.ETA, now)
	if err != nil {
		return nil, fmt.Errorf("update inbound: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func scanInbound(row pgx.Row) (*entity.Inbound, error) {
	var in entity.Inbound
	var po entity.PurchaseOrder
	var sku entity.SkuRef
	var sp entity.SupplierRef
	if err := row.Scan(
		&in.ID, &in.PoID, &in.Courier, &in.TrackingNumber, &in.ETA, &in.Status, &in.CreatedAt, &in.UpdatedAt,
		&po.ID, &po.SkuID, &po.SupplierID, &po.Quantity, &po.Status, &po.ETA,
		&po.CreatedAt, &po.UpdatedAt, &sku.ID, &sku.Name, &sp.ID, &sp.Name,
	); err != nil {
		return nil, err
	}
	po.Sku = &sku
	po.Supplier = &sp
	in.PO = &po
	return &in, nil
}
