package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Supply-api/internal/application/document"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/infrastructure/pdf"
)

func TestGeneratePurchaseOrderPDF(t *testing.T) {
	eta := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	doc := document.PurchaseOrderDocument{
		PO: &entity.PurchaseOrder{
			ID:         "6f1c1a4e-6c43-4f0a-9a57-0d7d0f7b8f21",
			SkuID:      "sku",
			SupplierID: "sup",
			Quantity:   40,
			Status:     entity.StatusDraft,
			ETA:        &eta,
			CreatedAt:  time.Now(),
			Supplier:   &entity.SupplierRef{ID: "sup", Name: "ASOS Core Sourcing"},
		},
		Sku: &entity.Sku{
			ID: "sku", Name: "Ribbed Crop Top", Category: "Apparel",
			Cost: decimal.RequireFromString("5.75"), LeadTime: 12,
		},
		Total: decimal.RequireFromString("230"),
	}

	out, err := pdf.NewMarotoPDFGenerator("Upstream Supply").GeneratePurchaseOrderPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGeneratePurchaseOrderPDF_SinDatos(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator("x").GeneratePurchaseOrderPDF(context.Background(), document.PurchaseOrderDocument{})
	assert.Error(t, err)
}
