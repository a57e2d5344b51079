package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestParseETA(t *testing.T) {
	cases := map[string]time.Time{
		"2025-03-01":                time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		"2025-03-01T10:30":          time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		"2025-03-01T10:30:15":       time.Date(2025, 3, 1, 10, 30, 15, 0, time.UTC),
		"2025-03-01T10:30:15Z":      time.Date(2025, 3, 1, 10, 30, 15, 0, time.UTC),
		"2025-03-01T10:30:15-05:00": time.Date(2025, 3, 1, 15, 30, 15, 0, time.UTC),
	}
	for raw, want := range cases {
		got, ok := usecase.ParseETA(raw)
		require.True(t, ok, raw)
		assert.True(t, want.Equal(got), raw)
	}

	for _, raw := range []string{"", "not-a-date", "2025-13-01", "01/03/2025"} {
		_, ok := usecase.ParseETA(raw)
		assert.False(t, ok, raw)
	}
}

func TestInboundCreate(t *testing.T) {
	f := newFixture()
	a := f.supplier(t, "Acme")
	tee := f.sku(t, "Tee", a.ID)
	po := f.po(t, tee.ID)
	ctx := context.Background()

	t.Run("estado por defecto in_transit", func(t *testing.T) {
		in, err := f.inbounds.Create(ctx, dto.CreateInboundRequest{
			PoID: " " + po.ID + " ", Courier: " DHL ", TrackingNumber: "TRK-1", ETA: "2025-03-01",
		})
		require.NoError(t, err)
		assert.Equal(t, "in_transit", in.Status)
		assert.Equal(t, "DHL", in.Courier)
		require.NotNil(t, in.ETA)
		assert.Equal(t, 2025, in.ETA.Year())
		require.NotNil(t, in.PO)
		assert.Equal(t, po.ID, in.PO.ID)
	})

	t.Run("estado explícito sin ETA", func(t *testing.T) {
		in, err := f.inbounds.Create(ctx, dto.CreateInboundRequest{
			PoID: po.ID, Courier: "UPS", TrackingNumber: "TRK-2", Status: "delayed",
		})
		require.NoError(t, err)
		assert.Equal(t, "delayed", in.Status)
		assert.Nil(t, in.ETA)
	})

	t.Run("courier y status largos", func(t *testing.T) {
		courier := strings.Repeat("k", 130)
		status := strings.Repeat("s", 60)
		in, err := f.inbounds.Create(ctx, dto.CreateInboundRequest{
			PoID: po.ID, Courier: courier, TrackingNumber: strings.Repeat("9", 150), Status: status,
		})
		require.NoError(t, err)
		assert.Equal(t, courier, in.Courier)
		assert.Equal(t, status, in.Status)
	})

	t.Run("campos requeridos", func(t *testing.T) {
		_, err := f.inbounds.Create(ctx, dto.CreateInboundRequest{PoID: po.ID, Courier: "  ", TrackingNumber: "x"})
		requireKind(t, err, domain.ErrInvalidInput, "poId, courier, and trackingNumber are required")
	})

	t.Run("PO inexistente", func(t *testing.T) {
		_, err := f.inbounds.Create(ctx, dto.CreateInboundRequest{PoID: "missing", Courier: "DHL", TrackingNumber: "x"})
		requireKind(t, err, domain.ErrNotFound, "PO not found")
	})

	t.Run("ETA inválida", func(t *testing.T) {
		_, err := f.inbounds.Create(ctx, dto.CreateInboundRequest{PoID: po.ID, Courier: "DHL", TrackingNumber: "x", ETA: "not-a-date"})
		requireKind(t, err, domain.ErrInvalidInput, "Invalid ETA date")
	})

	res, err := f.inbounds.List(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Items, 3)
}

func TestInboundUpdate(t *testing.T) {
	f := newFixture()
	a := f.supplier(t, "Acme")
	tee := f.sku(t, "Tee", a.ID)
	po := f.po(t, tee.ID)
	ctx := context.Background()

	created, err := f.inbounds.Create(ctx, dto.CreateInboundRequest{PoID: po.ID, Courier: "DHL", TrackingNumber: "TRK", ETA: "2025-03-01"})
	require.NoError(t, err)

	t.Run("ETA inválida se ignora", func(t *testing.T) {
		got, err := f.inbounds.Update(ctx, created.ID, dto.UpdateInboundRequest{Status: strPtr("received"), ETA: strPtr("not-a-date")})
		require.NoError(t, err)
		assert.Equal(t, "received", got.Status)
		require.NotNil(t, got.ETA)
		assert.True(t, created.ETA.Equal(*got.ETA))
	})

	t.Run("solo ETA", func(t *testing.T) {
		got, err := f.inbounds.Update(ctx, created.ID, dto.UpdateInboundRequest{ETA: strPtr("2025-04-10")})
		require.NoError(t, err)
		assert.Equal(t, "received", got.Status)
		assert.Equal(t, time.April, got.ETA.Month())
	})

	t.Run("status vacío no modifica", func(t *testing.T) {
		got, err := f.inbounds.Update(ctx, created.ID, dto.UpdateInboundRequest{Status: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "received", got.Status)
	})

	t.Run("inexistente", func(t *testing.T) {
		_, err := f.inbounds.Update(ctx, "missing", dto.UpdateInboundRequest{Status: strPtr("delayed")})
		requireKind(t, err, domain.ErrInvalidInput, "Failed to update")
	})

	got, err := f.inbounds.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PO)
	assert.Equal(t, "Tee", got.PO.Sku.Name)

	_, err = f.inbounds.GetByID(ctx, "missing")
	requireKind(t, err, domain.ErrNotFound, "Not found")
}
