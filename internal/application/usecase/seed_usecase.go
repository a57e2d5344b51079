package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn con repos de proveedores y SKUs dentro de una
// transacción: si fn devuelve error no queda nada persistido.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		suppliers repository.SupplierRepository,
		skus repository.SkuRepository,
	) error) error
}

type seedSku struct {
	name        string
	supplier    int // índice en seedSuppliers
	description string
	category    string
	cost        string
	leadTime    int
}

var seedSuppliers = []string{
	"ASOS Core Sourcing",
	"FastTrack Textiles",
	"Glow Cosmetics Ltd",
}

var seedSkus = []seedSku{
	{"Ribbed Crop Top", 0, "Fast-fashion ribbed crop top, cotton blend", "Apparel", "5.75", 12},
	{"Oversized Hoodie", 1, "Unisex hoodie, fleece-lined", "Apparel", "11.2", 16},
	{"Hydrating Lip Gloss", 2, "Vegan formula, shimmer finish", "Cosmetics", "2.3", 18},
}

// SeedResult cantidades del catálogo de demostración tras el seed.
type SeedResult struct {
	Suppliers int
	Skus      int
}

// SeedUseCase carga el catálogo de demostración. Es idempotente: volver a
// ejecutarlo no duplica filas ni modifica las existentes.
type SeedUseCase struct {
	tx CatalogTxRunner
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(tx CatalogTxRunner) *SeedUseCase {
	return &SeedUseCase{tx: tx}
}

// Run hace upsert de proveedores y SKUs en una única transacción.
func (uc *SeedUseCase) Run(ctx context.Context) (*SeedResult, error) {
	res := &SeedResult{}
	err := uc.tx.RunCatalog(ctx, func(suppliers repository.SupplierRepository, skus repository.SkuRepository) error {
		now := time.Now()
		ids := make([]string, len(seedSuppliers))
		for i, name := range seedSuppliers {
			s, err := suppliers.Upsert(ctx, &entity.Supplier{
				ID:        uuid.New().String(),
				Name:      name,
				Status:    entity.SupplierActive,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("seed supplier %q: %w", name, err)
			}
			ids[i] = s.ID
			res.Suppliers++
		}
		for _, s := range seedSkus {
			desc := s.description
			_, err := skus.Upsert(ctx, &entity.Sku{
				ID:          uuid.New().String(),
				Name:        s.name,
				Description: &desc,
				Category:    s.category,
				Cost:        decimal.RequireFromString(s.cost),
				SupplierID:  ids[s.supplier],
				LeadTime:    s.leadTime,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return fmt.Errorf("seed sku %q: %w", s.name, err)
			}
			res.Skus++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
