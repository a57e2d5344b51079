package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
	"github.com/jhoicas/Supply-api/pkg/validate"
)

// PurchaseOrderUseCase casos de uso para órdenes de compra.
type PurchaseOrderUseCase struct {
	pos  repository.PurchaseOrderRepository
	skus repository.SkuRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(pos repository.PurchaseOrderRepository, skus repository.SkuRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{pos: pos, skus: skus}
}

// List devuelve todas las órdenes, las más recientes primero.
func (uc *PurchaseOrderUseCase) List(ctx context.Context) (*dto.PurchaseOrderListResponse, error) {
	list, err := uc.pos.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, po := range list {
		items = append(items, *toPurchaseOrderResponse(po))
	}
	return &dto.PurchaseOrderListResponse{Items: items}, nil
}

// GetByID obtiene una orden con SKU y proveedor.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.pos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "PO not found")
	}
	return toPurchaseOrderResponse(po), nil
}

// Create crea una orden en estado draft. El proveedor se copia del SKU.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	in.SkuID = strings.TrimSpace(in.SkuID)
	in.Quantity = strings.TrimSpace(in.Quantity)
	if err := validate.Struct(in); err != nil {
		return nil, domain.Invalid("Invalid input", err)
	}
	quantity, err := strconv.Atoi(in.Quantity)
	if err != nil {
		return nil, domain.Invalid("Invalid input", err)
	}

	sku, err := uc.skus.GetByID(ctx, in.SkuID)
	if err != nil {
		return nil, err
	}
	if sku == nil || sku.Supplier == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "SKU or Supplier not found")
	}

	now := time.Now()
	po := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		SkuID:      sku.ID,
		SupplierID: sku.SupplierID,
		Quantity:   quantity,
		Status:     entity.StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.pos.Create(ctx, po); err != nil {
		return nil, err
	}
	po.Sku = &entity.SkuRef{ID: sku.ID, Name: sku.Name}
	po.Supplier = sku.Supplier
	return toPurchaseOrderResponse(po), nil
}
