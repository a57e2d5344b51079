package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/infrastructure/memory"
)

type fixture struct {
	store     *memory.Store
	suppliers *usecase.SupplierUseCase
	skus      *usecase.SkuUseCase
	pos       *usecase.PurchaseOrderUseCase
	inbounds  *usecase.InboundUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:     store,
		suppliers: usecase.NewSupplierUseCase(store.Suppliers()),
		skus:      usecase.NewSkuUseCase(store.Skus(), store.Suppliers()),
		pos:       usecase.NewPurchaseOrderUseCase(store.PurchaseOrders(), store.Skus()),
		inbounds:  usecase.NewInboundUseCase(store.Inbounds(), store.PurchaseOrders()),
	}
}

func (f *fixture) supplier(t *testing.T, name string) *dto.SupplierResponse {
	t.Helper()
	s, err := f.suppliers.Create(context.Background(), dto.CreateSupplierRequest{Name: name})
	require.NoError(t, err)
	return s
}

func (f *fixture) sku(t *testing.T, name, supplierID string) *dto.SkuResponse {
	t.Helper()
	s, err := f.skus.Create(context.Background(), dto.SkuForm{
		Name:       name,
		Category:   "Apparel",
		Cost:       "5.75",
		SupplierID: supplierID,
		LeadTime:   "12",
	})
	require.NoError(t, err)
	return s
}

func (f *fixture) po(t *testing.T, skuID string) *dto.PurchaseOrderResponse {
	t.Helper()
	po, err := f.pos.Create(context.Background(), dto.CreatePurchaseOrderRequest{SkuID: skuID, Quantity: "10"})
	require.NoError(t, err)
	return po
}

// requireKind comprueba el sentinel y el mensaje de un *domain.Error.
func requireKind(t *testing.T, err error, kind error, message string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, kind), "se esperaba %v, se obtuvo %v", kind, err)
	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	require.Equal(t, message, derr.Error())
}
