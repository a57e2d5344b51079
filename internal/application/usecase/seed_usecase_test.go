package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
)

func TestSeed_Idempotente(t *testing.T) {
	f := newFixture()
	seed := usecase.NewSeedUseCase(f.store)
	ctx := context.Background()

	res, err := seed.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Suppliers)
	assert.Equal(t, 3, res.Skus)

	_, err = seed.Run(ctx)
	require.NoError(t, err)

	suppliers, err := f.suppliers.List(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 3)
	assert.Equal(t, "ASOS Core Sourcing", suppliers[0].Name)

	skus, err := f.skus.List(ctx, dto.SkuListRequest{Sort: "name:asc"})
	require.NoError(t, err)
	require.Equal(t, 3, skus.Total)
	assert.Equal(t, "Hydrating Lip Gloss", skus.Items[0].Name)
	assert.Equal(t, "Glow Cosmetics Ltd", skus.Items[0].Supplier.Name)
	assert.Equal(t, "2.3", skus.Items[0].Cost.String())
}

type failingRunner struct{ inner usecase.CatalogTxRunner }

var errBoom = errors.New("boom")

func (r failingRunner) RunCatalog(ctx context.Context, fn func(repository.SupplierRepository, repository.SkuRepository) error) error {
	return r.inner.RunCatalog(ctx, func(s repository.SupplierRepository, k repository.SkuRepository) error {
		if err := fn(s, k); err != nil {
			return err
		}
		return errBoom
	})
}

func TestSeed_RollbackSiFalla(t *testing.T) {
	f := newFixture()
	_, err := usecase.NewSeedUseCase(failingRunner{inner: f.store}).Run(context.Background())
	require.ErrorIs(t, err, errBoom)

	suppliers, err := f.suppliers.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}
