package usecase

import (
	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
)

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toSupplierRef(s *entity.SupplierRef) *dto.SupplierRef {
	if s == nil {
		return nil
	}
	return &dto.SupplierRef{ID: s.ID, Name: s.Name}
}

func toSkuResponse(s *entity.Sku) *dto.SkuResponse {
	if s == nil {
		return nil
	}
	return &dto.SkuResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Cost:        s.Cost,
		SupplierID:  s.SupplierID,
		LeadTime:    s.LeadTime,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		Supplier:    toSupplierRef(s.Supplier),
	}
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	if po == nil {
		return nil
	}
	out := &dto.PurchaseOrderResponse{
		ID:         po.ID,
		SkuID:      po.SkuID,
		SupplierID: po.SupplierID,
		Quantity:   po.Quantity,
		Status:     po.Status,
		ETA:        po.ETA,
		CreatedAt:  po.CreatedAt,
		UpdatedAt:  po.UpdatedAt,
		Supplier:   toSupplierRef(po.Supplier),
	}
	if po.Sku != nil {
		out.Sku = &dto.SkuRef{ID: po.Sku.ID, Name: po.Sku.Name}
	}
	return out
}

func toInboundResponse(in *entity.Inbound) *dto.InboundResponse {
	if in == nil {
		return nil
	}
	return &dto.InboundResponse{
		ID:             in.ID,
		PoID:           in.PoID,
		Courier:        in.Courier,
		TrackingNumber: in.TrackingNumber,
		ETA:            in.ETA,
		Status:         in.Status,
		CreatedAt:      in.CreatedAt,
		UpdatedAt:      in.UpdatedAt,
		PO:             toPurchaseOrderResponse(in.PO),
	}
}
