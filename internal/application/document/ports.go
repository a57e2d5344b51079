package document

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Supply-api/internal/domain/entity"
)

// PurchaseOrderDocument datos necesarios para renderizar una PO.
type PurchaseOrderDocument struct {
	PO  *entity.PurchaseOrder
	Sku *entity.Sku
	// Total = Quantity * Sku.Cost.
	Total decimal.Decimal
}

// PurchaseOrderPDFGenerator genera la representación PDF de una PO.
type PurchaseOrderPDFGenerator interface {
	GeneratePurchaseOrderPDF(ctx context.Context, doc PurchaseOrderDocument) ([]byte, error)
}
