package document

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
)

// PurchaseOrderPDFUseCase genera el documento de una PO para enviarlo al proveedor.
type PurchaseOrderPDFUseCase struct {
	pos       repository.PurchaseOrderRepository
	skus      repository.SkuRepository
	generator PurchaseOrderPDFGenerator
}

// NewPurchaseOrderPDFUseCase construye el caso de uso.
func NewPurchaseOrderPDFUseCase(
	pos repository.PurchaseOrderRepository,
	skus repository.SkuRepository,
	generator PurchaseOrderPDFGenerator,
) *PurchaseOrderPDFUseCase {
	return &PurchaseOrderPDFUseCase{pos: pos, skus: skus, generator: generator}
}

// Download carga la PO con su SKU y devuelve (pdfBytes, filename).
// domain.ErrNotFound si la PO no existe.
func (uc *PurchaseOrderPDFUseCase) Download(ctx context.Context, poID string) ([]byte, string, error) {
	po, err := uc.pos.GetByID(ctx, poID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener PO: %w", err)
	}
	if po == nil {
		return nil, "", domain.Errorf(domain.ErrNotFound, "PO not found")
	}

	sku, err := uc.skus.GetByID(ctx, po.SkuID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener SKU: %w", err)
	}
	if sku == nil {
		return nil, "", domain.Errorf(domain.ErrNotFound, "SKU or Supplier not found")
	}

	doc := PurchaseOrderDocument{
		PO:    po,
		Sku:   sku,
		Total: sku.Cost.Mul(decimal.NewFromInt(int64(po.Quantity))),
	}
	pdfBytes, err := uc.generator.GeneratePurchaseOrderPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("po_%s.pdf", shortID(po.ID)), nil
}

// shortID primer bloque del UUID, suficiente para nombrar el archivo.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
