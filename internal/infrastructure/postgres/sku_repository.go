package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
)

var _ repository.SkuRepository = (*SkuRepo)(nil)

const skuSelect = `
	SELECT s.id, s.name, s.description, s.category, s.cost, s.supplier_id, s.lead_time,
	       s.created_at, s.updated_at, sp.id, sp.name
	FROM skus s
	JOIN suppliers sp ON sp.id = s.supplier_id`

// skuOrderColumns lista blanca de columnas de orden (nunca se interpola input del cliente).
var skuOrderColumns = map[repository.SkuSortField]string{
	repository.SkuSortName:      "s.name",
	repository.SkuSortUpdatedAt: "s.updated_at",
	repository.SkuSortCost:      "s.cost",
}

// SkuRepo implementación del puerto SkuRepository sobre PostgreSQL.
type SkuRepo struct {
	q Querier
}

// NewSkuRepository construye el adaptador. Acepta pool o tx (Querier).
func NewSkuRepository(q Querier) *SkuRepo {
	return &SkuRepo{q: q}
}

// Create persiste un SKU. (name, supplier_id) repetido devuelve domain.ErrDuplicate.
func (r *SkuRepo) Create(ctx context.Context, sku *entity.Sku) error {
	query := `
		INSERT INTO skus (id, name, description, category, cost, supplier_id, lead_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		sku.ID, sku.Name, sku.Description, sku.Category, sku.Cost,
		sku.SupplierID, sku.LeadTime, sku.CreatedAt, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// Upsert inserta por (name, supplier_id) o devuelve el existente.
func (r *SkuRepo) Upsert(ctx context.Context, sku *entity.Sku) (*entity.Sku, error) {
	query := `
		INSERT INTO skus (id, name, description, category, cost, supplier_id, lead_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name, supplier_id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, description, category, cost, supplier_id, lead_time, created_at, updated_at`
	var out entity.Sku
	err := r.q.QueryRow(ctx, query,
		sku.ID, sku.Name, sku.Description, sku.Category, sku.Cost,
		sku.SupplierID, sku.LeadTime, sku.CreatedAt, sku.UpdatedAt,
	).Scan(&out.ID, &out.Name, &out.Description, &out.Category, &out.Cost,
		&out.SupplierID, &out.LeadTime, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert sku: %w", err)
	}
	return &out, nil
}

// GetByID obtiene un SKU con su proveedor.
func (r *SkuRepo) GetByID(ctx context.Context, id string) (*entity.Sku, error) {
	if !validID(id) {
		return nil, nil
	}
	sku, err := scanSku(r.q.QueryRow(ctx, skuSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return sku, nil
}

// FindByNameAndSupplier busca un SKU con el mismo (name, supplier_id), excluyendo excludeID.
func (r *SkuRepo) FindByNameAndSupplier(ctx context.Context, name, supplierID, excludeID string) (*entity.Sku, error) {
	query := skuSelect + ` WHERE s.name = $1 AND s.supplier_id = $2`
	args := []any{name, supplierID}
	if excludeID != "" && validID(excludeID) {
		query += ` AND s.id <> $3`
		args = append(args, excludeID)
	}
	sku, err := scanSku(r.q.QueryRow(ctx, query+` LIMIT 1`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find sku by name: %w", err)
	}
	return sku, nil
}

// List aplica filtros, orden y paginación; devuelve además el total del filtro.
func (r *SkuRepo) List(ctx context.Context, f repository.SkuFilter) ([]*entity.Sku, int, error) {
	where, args := skuWhere(f)

	var total int
	countQuery := `SELECT COUNT(*) FROM skus s JOIN suppliers sp ON sp.id = s.supplier_id` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count skus: %w", err)
	}

	col, ok := skuOrderColumns[f.SortField]
	if !ok {
		col = skuOrderColumns[repository.SkuSortUpdatedAt]
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}
	query := fmt.Sprintf("%s%s ORDER BY %s %s, s.id %s LIMIT $%d OFFSET $%d",
		skuSelect, where, col, dir, dir, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sku
	for rows.Next() {
		sku, err := scanSku(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, sku)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list skus: %w", err)
	}
	return list, total, nil
}

// skuWhere construye la cláusula WHERE con parámetros posicionales.
// Las búsquedas "contiene" usan strpos para no interpretar % y _ del cliente.
func skuWhere(f repository.SkuFilter) (string, []any) {
	var conds []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Query != "" {
		p := next(f.Query)
		conds = append(conds, fmt.Sprintf(`(s.id::text = %[1]s
			OR strpos(s.id::text, %[1]s) > 0
			OR strpos(s.name, %[1]s) > 0
			OR strpos(coalesce(s.description, ''), %[1]s) > 0
			OR strpos(s.category, %[1]s) > 0
			OR strpos(sp.name, %[1]s) > 0)`, p))
	}
	if f.Category != "" {
		conds = append(conds, fmt.Sprintf("strpos(s.category, %s) > 0", next(f.Category)))
	}
	if f.SupplierID != "" {
		conds = append(conds, fmt.Sprintf("s.supplier_id::text = %s", next(f.SupplierID)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Update reescribe los campos editables. Colisión de nombre devuelve domain.ErrDuplicate.
func (r *SkuRepo) Update(ctx context.Context, sku *entity.Sku) error {
	query := `
		UPDATE skus
		SET name = $2, description = $3, category = $4, cost = $5,
		    supplier_id = $6, lead_time = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sku.ID, sku.Name, sku.Description, sku.Category, sku.Cost,
		sku.SupplierID, sku.LeadTime, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update sku: %w", err)
	}
	return nil
}

// Delete elimina un SKU. Si hay órdenes que lo referencian devuelve domain.ErrConflict.
func (r *SkuRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM skus WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete sku: %w", err)
	}
	return nil
}

func scanSku(row pgx.Row) (*entity.Sku, error) {
	var s entity.Sku
	var sp entity.SupplierRef
	if err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.Category, &s.Cost, &s.SupplierID, &s.LeadTime,
		&s.CreatedAt, &s.UpdatedAt, &sp.ID, &sp.Name,
	); err != nil {
		return nil, err
	}
	s.Supplier = &sp
	return &s, nil
}
