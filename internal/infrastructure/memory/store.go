// Package memory implementa los puertos de repositorio en memoria. Respeta las
// mismas restricciones que el esquema PostgreSQL (nombres únicos, FKs) para que
// los casos de uso se comporten igual. Se usa en tests y con STORE=memory.
package memory

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
)

var (
	_ repository.SupplierRepository      = (*SupplierRepo)(nil)
	_ repository.SkuRepository           = (*SkuRepo)(nil)
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)
	_ repository.InboundRepository       = (*InboundRepo)(nil)
	_ usecase.CatalogTxRunner            = (*Store)(nil)
)

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu        sync.RWMutex
	suppliers map[string]entity.Supplier
	skus      map[string]entity.Sku
	pos       map[string]entity.PurchaseOrder
	inbounds  map[string]entity.Inbound
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		suppliers: map[string]entity.Supplier{},
		skus:      map[string]entity.Sku{},
		pos:       map[string]entity.PurchaseOrder{},
		inbounds:  map[string]entity.Inbound{},
	}
}

// Suppliers devuelve el repositorio de proveedores.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{s: s} }

// Skus devuelve el repositorio de SKUs.
func (s *Store) Skus() *SkuRepo { return &SkuRepo{s: s} }

// PurchaseOrders devuelve el repositorio de órdenes de compra.
func (s *Store) PurchaseOrders() *PurchaseOrderRepo { return &PurchaseOrderRepo{s: s} }

// Inbounds devuelve el repositorio de envíos.
func (s *Store) Inbounds() *InboundRepo { return &InboundRepo{s: s} }

// RunCatalog ejecuta fn con el lock de escritura tomado durante toda la
// ejecución; los repositorios que recibe fn no vuelven a bloquear. Si fn falla
// se restauran proveedores y SKUs al estado previo, igual que un Rollback.
func (s *Store) RunCatalog(_ context.Context, fn func(
	suppliers repository.SupplierRepository,
	skus repository.SkuRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	suppliers := maps.Clone(s.suppliers)
	skus := maps.Clone(s.skus)
	if err := fn(&SupplierRepo{s: s, inTx: true}, &SkuRepo{s: s, inTx: true}); err != nil {
		s.suppliers, s.skus = suppliers, skus
		return err
	}
	return nil
}

// lockFor bloquea mu salvo dentro de RunCatalog, que ya tiene el lock.
// Devuelve la función de desbloqueo.
func (s *Store) lockFor(inTx, write bool) func() {
	switch {
	case inTx:
		return func() {}
	case write:
		s.mu.Lock()
		return s.mu.Unlock
	default:
		s.mu.RLock()
		return s.mu.RUnlock
	}
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

// SupplierRepo proveedores en memoria.
type SupplierRepo struct {
	s    *Store
	inTx bool
}

func (r *SupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	defer r.s.lockFor(r.inTx, true)()
	if _, ok := r.s.supplierByName(supplier.Name); ok {
		return domain.ErrDuplicate
	}
	r.s.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *SupplierRepo) Upsert(_ context.Context, supplier *entity.Supplier) (*entity.Supplier, error) {
	defer r.s.lockFor(r.inTx, true)()
	if existing, ok := r.s.supplierByName(supplier.Name); ok {
		return &existing, nil
	}
	r.s.suppliers[supplier.ID] = *supplier
	out := *supplier
	return &out, nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	defer r.s.lockFor(r.inTx, false)()
	s, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SupplierRepo) GetByName(_ context.Context, name string) (*entity.Supplier, error) {
	defer r.s.lockFor(r.inTx, false)()
	s, ok := r.s.supplierByName(name)
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SupplierRepo) ListActive(_ context.Context) ([]*entity.Supplier, error) {
	defer r.s.lockFor(r.inTx, false)()
	var list []*entity.Supplier
	for _, s := range r.s.suppliers {
		if s.Status == entity.SupplierActive {
			s := s
			list = append(list, &s)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *Store) supplierByName(name string) (entity.Supplier, bool) {
	for _, sp := range s.suppliers {
		if sp.Name == name {
			return sp, true
		}
	}
	return entity.Supplier{}, false
}

func (s *Store) supplierRef(id string) *entity.SupplierRef {
	sp, ok := s.suppliers[id]
	if !ok {
		return nil
	}
	return &entity.SupplierRef{ID: sp.ID, Name: sp.Name}
}

// ── SKUs ──────────────────────────────────────────────────────────────────────

// SkuRepo SKUs en memoria.
type SkuRepo struct {
	s    *Store
	inTx bool
}

func (r *SkuRepo) Create(_ context.Context, sku *entity.Sku) error {
	defer r.s.lockFor(r.inTx, true)()
	if _, ok := r.s.suppliers[sku.SupplierID]; !ok {
		return domain.ErrConflict
	}
	if _, ok := r.s.skuByNameAndSupplier(sku.Name, sku.SupplierID, ""); ok {
		return domain.ErrDuplicate
	}
	stored := *sku
	stored.Supplier = nil
	r.s.skus[sku.ID] = stored
	return nil
}

func (r *SkuRepo) Upsert(_ context.Context, sku *entity.Sku) (*entity.Sku, error) {
	defer r.s.lockFor(r.inTx, true)()
	if existing, ok := r.s.skuByNameAndSupplier(sku.Name, sku.SupplierID, ""); ok {
		return &existing, nil
	}
	stored := *sku
	stored.Supplier = nil
	r.s.skus[sku.ID] = stored
	return &stored, nil
}

func (r *SkuRepo) GetByID(_ context.Context, id string) (*entity.Sku, error) {
	defer r.s.lockFor(r.inTx, false)()
	sku, ok := r.s.skus[id]
	if !ok {
		return nil, nil
	}
	sku.Supplier = r.s.supplierRef(sku.SupplierID)
	return &sku, nil
}

func (r *SkuRepo) FindByNameAndSupplier(_ context.Context, name, supplierID, excludeID string) (*entity.Sku, error) {
	defer r.s.lockFor(r.inTx, false)()
	sku, ok := r.s.skuByNameAndSupplier(name, supplierID, excludeID)
	if !ok {
		return nil, nil
	}
	return &sku, nil
}

func (r *SkuRepo) List(_ context.Context, f repository.SkuFilter) ([]*entity.Sku, int, error) {
	defer r.s.lockFor(r.inTx, false)()

	var matched []*entity.Sku
	for _, sku := range r.s.skus {
		sku := sku
		sku.Supplier = r.s.supplierRef(sku.SupplierID)
		if matchesSku(&sku, f) {
			matched = append(matched, &sku)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		var cmp int
		switch f.SortField {
		case repository.SkuSortName:
			cmp = strings.Compare(a.Name, b.Name)
		case repository.SkuSortCost:
			cmp = a.Cost.Cmp(b.Cost)
		default:
			cmp = a.UpdatedAt.Compare(b.UpdatedAt)
		}
		if cmp == 0 {
			cmp = strings.Compare(a.ID, b.ID)
		}
		if f.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	total := len(matched)
	start := min(f.Offset, total)
	end := total
	if f.Limit > 0 {
		end = min(start+f.Limit, total)
	}
	return matched[start:end], total, nil
}

func (r *SkuRepo) Update(_ context.Context, sku *entity.Sku) error {
	defer r.s.lockFor(r.inTx, true)()
	current, ok := r.s.skus[sku.ID]
	if !ok {
		return nil
	}
	if _, dup := r.s.skuByNameAndSupplier(sku.Name, sku.SupplierID, sku.ID); dup {
		return domain.ErrDuplicate
	}
	stored := *sku
	stored.Supplier = nil
	stored.CreatedAt = current.CreatedAt
	r.s.skus[sku.ID] = stored
	return nil
}

func (r *SkuRepo) Delete(_ context.Context, id string) error {
	defer r.s.lockFor(r.inTx, true)()
	for _, po := range r.s.pos {
		if po.SkuID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.skus, id)
	return nil
}

func (s *Store) skuByNameAndSupplier(name, supplierID, excludeID string) (entity.Sku, bool) {
	for _, sku := range s.skus {
		if sku.Name == name && sku.SupplierID == supplierID && sku.ID != excludeID {
			return sku, true
		}
	}
	return entity.Sku{}, false
}

func matchesSku(sku *entity.Sku, f repository.SkuFilter) bool {
	if q := f.Query; q != "" {
		desc := ""
		if sku.Description != nil {
			desc = *sku.Description
		}
		supplierName := ""
		if sku.Supplier != nil {
			supplierName = sku.Supplier.Name
		}
		if !strings.Contains(sku.ID, q) && !strings.Contains(sku.Name, q) &&
			!strings.Contains(desc, q) && !strings.Contains(sku.Category, q) &&
			!strings.Contains(supplierName, q) {
			return false
		}
	}
	if f.Category != "" && !strings.Contains(sku.Category, f.Category) {
		return false
	}
	if f.SupplierID != "" && sku.SupplierID != f.SupplierID {
		return false
	}
	return true
}

// ── Purchase orders ───────────────────────────────────────────────────────────

// PurchaseOrderRepo órdenes de compra en memoria.
type PurchaseOrderRepo struct{ s *Store }

func (r *PurchaseOrderRepo) Create(_ context.Context, po *entity.PurchaseOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.skus[po.SkuID]; !ok {
		return domain.ErrConflict
	}
	stored := *po
	stored.Sku, stored.Supplier = nil, nil
	r.s.pos[po.ID] = stored
	return nil
}

func (r *PurchaseOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	po, ok := r.s.pos[id]
	if !ok {
		return nil, nil
	}
	return r.s.joinPO(po), nil
}

func (r *PurchaseOrderRepo) List(_ context.Context) ([]*entity.PurchaseOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.PurchaseOrder, 0, len(r.s.pos))
	for _, po := range r.s.pos {
		list = append(list, r.s.joinPO(po))
	}
	sort.Slice(list, func(i, j int) bool { return newerFirst(list[i].UpdatedAt, list[j].UpdatedAt, list[i].ID, list[j].ID) })
	return list, nil
}

func (s *Store) joinPO(po entity.PurchaseOrder) *entity.PurchaseOrder {
	if sku, ok := s.skus[po.SkuID]; ok {
		po.Sku = &entity.SkuRef{ID: sku.ID, Name: sku.Name}
	}
	po.Supplier = s.supplierRef(po.SupplierID)
	return &po
}

// ── Inbounds ──────────────────────────────────────────────────────────────────

// InboundRepo envíos en memoria.
type InboundRepo struct{ s *Store }

func (r *InboundRepo) Create(_ context.Context, inbound *entity.Inbound) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pos[inbound.PoID]; !ok {
		return domain.ErrConflict
	}
	stored := *inbound
	stored.PO = nil
	r.s.inbounds[inbound.ID] = stored
	return nil
}

func (r *InboundRepo) GetByID(_ context.Context, id string) (*entity.Inbound, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	in, ok := r.s.inbounds[id]
	if !ok {
		return nil, nil
	}
	return r.s.joinInbound(in), nil
}

func (r *InboundRepo) List(_ context.Context) ([]*entity.Inbound, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Inbound, 0, len(r.s.inbounds))
	for _, in := range r.s.inbounds {
		list = append(list, r.s.joinInbound(in))
	}
	sort.Slice(list, func(i, j int) bool { return newerFirst(list[i].UpdatedAt, list[j].UpdatedAt, list[i].ID, list[j].ID) })
	return list, nil
}

func (r *InboundRepo) Update(_ context.Context, id string, patch repository.InboundPatch, now time.Time) (*entity.Inbound, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	in, ok := r.s.inbounds[id]
	if !ok {
		return nil, nil
	}
	if patch.Status != nil {
		in.Status = *patch.Status
	}
	if patch.ETA != nil {
		eta := *patch.ETA
		in.ETA = &eta
	}
	in.UpdatedAt = now
	r.s.inbounds[id] = in
	return r.s.joinInbound(in), nil
}

func (s *Store) joinInbound(in entity.Inbound) *entity.Inbound {
	if po, ok := s.pos[in.PoID]; ok {
		in.PO = s.joinPO(po)
	}
	return &in
}

func newerFirst(a, b time.Time, idA, idB string) bool {
	if a.Equal(b) {
		return idA > idB
	}
	return a.After(b)
}
