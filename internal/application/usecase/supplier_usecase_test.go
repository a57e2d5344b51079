package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/domain"
)

func TestSupplierCreate_ActivoPorDefecto(t *testing.T) {
	f := newFixture()
	s, err := f.suppliers.Create(context.Background(), dto.CreateSupplierRequest{Name: "  Acme  "})
	require.NoError(t, err)
	assert.Equal(t, "Acme", s.Name)
	assert.Equal(t, "active", s.Status)
	assert.NotEmpty(t, s.ID)
}

func TestSupplierCreate_NombreDuplicadoDevuelveExistente(t *testing.T) {
	f := newFixture()
	first := f.supplier(t, "Acme")

	_, err := f.suppliers.Create(context.Background(), dto.CreateSupplierRequest{Name: "Acme"})
	requireKind(t, err, domain.ErrDuplicate, "Supplier with this name already exists")

	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	existing, ok := derr.Existing.(*dto.SupplierResponse)
	require.True(t, ok)
	assert.Equal(t, first.ID, existing.ID)
}

func TestSupplierCreate_Invalido(t *testing.T) {
	f := newFixture()
	cases := []dto.CreateSupplierRequest{
		{Name: ""},
		{Name: "   "},
		{Name: "Acme", Status: "paused"},
	}
	for _, in := range cases {
		_, err := f.suppliers.Create(context.Background(), in)
		requireKind(t, err, domain.ErrInvalidInput, "Invalid supplier data")
	}
}

func TestSupplierList_SoloActivosPorNombre(t *testing.T) {
	f := newFixture()
	f.supplier(t, "Zeta")
	f.supplier(t, "Alfa")
	_, err := f.suppliers.Create(context.Background(), dto.CreateSupplierRequest{Name: "Beta", Status: "inactive"})
	require.NoError(t, err)

	list, err := f.suppliers.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alfa", list[0].Name)
	assert.Equal(t, "Zeta", list[1].Name)
}
