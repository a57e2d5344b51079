package postgres_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
	"github.com/jhoicas/Supply-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Supply-api/pkg/config"
)

// openTestDB aplica las migraciones y vacía las tablas. Requiere TEST_DATABASE_URL.
func openTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido; se omiten tests de integración")
	}

	mg, err := postgres.NewMigrator(dsn)
	require.NoError(t, err)
	require.NoError(t, mg.Up())
	require.NoError(t, mg.Close())

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 4}, "supply-test")
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE inbounds, purchase_orders, skus, suppliers`)
	require.NoError(t, err)
	return pool
}

func newSupplier(t *testing.T, repo *postgres.SupplierRepo, name string) *entity.Supplier {
	t.Helper()
	now := time.Now().UTC()
	s := &entity.Supplier{ID: uuid.New().String(), Name: name, Status: entity.SupplierActive, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func newSku(t *testing.T, repo *postgres.SkuRepo, name, supplierID, cost string) *entity.Sku {
	t.Helper()
	now := time.Now().UTC()
	s := &entity.Sku{
		ID: uuid.New().String(), Name: name, Category: "Apparel", Cost: decimal.RequireFromString(cost),
		SupplierID: supplierID, LeadTime: 7, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func TestSupplierRepo(t *testing.T) {
	pool := openTestDB(t)
	repo := postgres.NewSupplierRepository(pool)
	ctx := context.Background()

	acme := newSupplier(t, repo, "Acme")
	dup := &entity.Supplier{ID: uuid.New().String(), Name: "Acme", Status: entity.SupplierActive, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrDuplicate)

	got, err := repo.GetByName(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, acme.ID, got.ID)

	got, err = repo.GetByID(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, got)

	upserted, err := repo.Upsert(ctx, dup)
	require.NoError(t, err)
	assert.Equal(t, acme.ID, upserted.ID)
}

func TestSkuRepo_ListYBorrado(t *testing.T) {
	pool := openTestDB(t)
	suppliers := postgres.NewSupplierRepository(pool)
	skus := postgres.NewSkuRepository(pool)
	pos := postgres.NewPurchaseOrderRepository(pool)
	ctx := context.Background()

	acme := newSupplier(t, suppliers, "Acme")
	glow := newSupplier(t, suppliers, "Glow")
	tee := newSku(t, skus, "Tee 100%", acme.ID, "5.75")
	newSku(t, skus, "Hoodie", acme.ID, "11.2")
	newSku(t, skus, "Gloss", glow.ID, "2.3")

	list, total, err := skus.List(ctx, repository.SkuFilter{SortField: repository.SkuSortCost, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, list, 2)
	assert.Equal(t, "Gloss", list[0].Name)
	assert.Equal(t, "Glow", list[0].Supplier.Name)

	list, total, err = skus.List(ctx, repository.SkuFilter{Query: "100%", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, tee.ID, list[0].ID)

	_, total, err = skus.List(ctx, repository.SkuFilter{Query: "Glow", SupplierID: glow.ID, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	now := time.Now().UTC()
	require.NoError(t, pos.Create(ctx, &entity.PurchaseOrder{
		ID: uuid.New().String(), SkuID: tee.ID, SupplierID: acme.ID, Quantity: 5,
		Status: entity.StatusDraft, CreatedAt: now, UpdatedAt: now,
	}))
	assert.ErrorIs(t, skus.Delete(ctx, tee.ID), domain.ErrConflict)
}

func TestInboundRepo_UpdateParcial(t *testing.T) {
	pool := openTestDB(t)
	suppliers := postgres.NewSupplierRepository(pool)
	skus := postgres.NewSkuRepository(pool)
	pos := postgres.NewPurchaseOrderRepository(pool)
	inbounds := postgres.NewInboundRepository(pool)
	ctx := context.Background()

	acme := newSupplier(t, suppliers, "Acme")
	tee := newSku(t, skus, "Tee", acme.ID, "5")
	now := time.Now().UTC().Truncate(time.Microsecond)
	po := &entity.PurchaseOrder{ID: uuid.New().String(), SkuID: tee.ID, SupplierID: acme.ID, Quantity: 3, Status: entity.StatusDraft, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, pos.Create(ctx, po))

	eta := now.Add(72 * time.Hour)
	in := &entity.Inbound{ID: uuid.New().String(), PoID: po.ID, Courier: "DHL", TrackingNumber: "T1", ETA: &eta, Status: entity.StatusInTransit, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, inbounds.Create(ctx, in))

	status := entity.StatusReceived
	got, err := inbounds.Update(ctx, in.ID, repository.InboundPatch{Status: &status}, now.Add(time.Minute))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.StatusReceived, got.Status)
	require.NotNil(t, got.ETA)
	assert.True(t, eta.Equal(*got.ETA))
	assert.Equal(t, "Tee", got.PO.Sku.Name)

	got, err = inbounds.Update(ctx, uuid.New().String(), repository.InboundPatch{Status: &status}, now)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSeed_Transaccional(t *testing.T) {
	pool := openTestDB(t)
	seed := usecase.NewSeedUseCase(postgres.NewTxRunner(pool))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := seed.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, res.Skus)
	}
	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM skus`).Scan(&n))
	assert.Equal(t, 3, n)
}

func TestRepos_TextoLargoYCostoExacto(t *testing.T) {
	pool := openTestDB(t)
	suppliers := postgres.NewSupplierRepository(pool)
	skus := postgres.NewSkuRepository(pool)
	pos := postgres.NewPurchaseOrderRepository(pool)
	inbounds := postgres.NewInboundRepository(pool)
	ctx := context.Background()

	acme := newSupplier(t, suppliers, "Acme")
	now := time.Now().UTC()
	category := strings.Repeat("c", 150)
	sku := &entity.Sku{
		ID: uuid.New().String(), Name: "Tee", Category: category, Cost: decimal.RequireFromString("1.239"),
		SupplierID: acme.ID, LeadTime: 2147483647, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, skus.Create(ctx, sku))

	got, err := skus.GetByID(ctx, sku.ID)
	require.NoError(t, err)
	assert.Equal(t, category, got.Category)
	assert.Equal(t, "1.239", got.Cost.String())

	po := &entity.PurchaseOrder{
		ID: uuid.New().String(), SkuID: sku.ID, SupplierID: acme.ID, Quantity: 2147483647,
		Status: strings.Repeat("p", 60), CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, pos.Create(ctx, po))

	in := &entity.Inbound{
		ID: uuid.New().String(), PoID: po.ID, Courier: strings.Repeat("k", 130),
		TrackingNumber: strings.Repeat("9", 150), Status: strings.Repeat("s", 60), CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, inbounds.Create(ctx, in))

	gotIn, err := inbounds.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Courier, gotIn.Courier)
	assert.Equal(t, in.Status, gotIn.Status)
}
