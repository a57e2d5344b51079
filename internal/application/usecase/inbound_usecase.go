package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
	"github.com/jhoicas/Supply-api/pkg/validate"
)

// etaLayouts formatos aceptados para ETA, en orden de prueba.
var etaLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseETA interpreta una fecha de llegada. Sin zona horaria se asume UTC.
func ParseETA(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range etaLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// InboundUseCase casos de uso para envíos entrantes.
type InboundUseCase struct {
	inbounds repository.InboundRepository
	pos      repository.PurchaseOrderRepository
}

// NewInboundUseCase construye el caso de uso.
func NewInboundUseCase(inbounds repository.InboundRepository, pos repository.PurchaseOrderRepository) *InboundUseCase {
	return &InboundUseCase{inbounds: inbounds, pos: pos}
}

// List devuelve todos los envíos, los más recientes primero, con PO, SKU y proveedor.
func (uc *InboundUseCase) List(ctx context.Context) (*dto.InboundListResponse, error) {
	list, err := uc.inbounds.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InboundResponse, 0, len(list))
	for _, in := range list {
		items = append(items, *toInboundResponse(in))
	}
	return &dto.InboundListResponse{Items: items}, nil
}

// GetByID obtiene un envío.
func (uc *InboundUseCase) GetByID(ctx context.Context, id string) (*dto.InboundResponse, error) {
	inbound, err := uc.inbounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inbound == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "Not found")
	}
	return toInboundResponse(inbound), nil
}

// Create registra un envío para una PO existente. Una ETA no parseable se rechaza.
func (uc *InboundUseCase) Create(ctx context.Context, in dto.CreateInboundRequest) (*dto.InboundResponse, error) {
	in.PoID = strings.TrimSpace(in.PoID)
	in.Courier = strings.TrimSpace(in.Courier)
	in.TrackingNumber = strings.TrimSpace(in.TrackingNumber)
	in.Status = strings.TrimSpace(in.Status)
	if err := validate.Struct(in); err != nil {
		return nil, domain.Invalid("poId, courier, and trackingNumber are required", err)
	}

	po, err := uc.pos.GetByID(ctx, in.PoID)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "PO not found")
	}

	var eta *time.Time
	if in.ETA != "" {
		t, ok := ParseETA(in.ETA)
		if !ok {
			return nil, domain.Errorf(domain.ErrInvalidInput, "Invalid ETA date")
		}
		eta = &t
	}
	status := in.Status
	if status == "" {
		status = entity.StatusInTransit
	}

	now := time.Now()
	inbound := &entity.Inbound{
		ID:             uuid.New().String(),
		PoID:           po.ID,
		Courier:        in.Courier,
		TrackingNumber: in.TrackingNumber,
		ETA:            eta,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.inbounds.Create(ctx, inbound); err != nil {
		return nil, err
	}
	inbound.PO = po
	return toInboundResponse(inbound), nil
}

// Update aplica status y/o ETA. A diferencia de Create, una ETA no parseable se
// ignora en silencio y solo se aplica el resto.
func (uc *InboundUseCase) Update(ctx context.Context, id string, in dto.UpdateInboundRequest) (*dto.InboundResponse, error) {
	var patch repository.InboundPatch
	if in.Status != nil {
		if s := strings.TrimSpace(*in.Status); s != "" {
			patch.Status = &s
		}
	}
	if in.ETA != nil && *in.ETA != "" {
		if t, ok := ParseETA(*in.ETA); ok {
			patch.ETA = &t
		}
	}
	updated, err := uc.inbounds.Update(ctx, id, patch, time.Now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Failed to update")
	}
	return toInboundResponse(updated), nil
}
