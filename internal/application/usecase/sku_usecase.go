package usecase

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
	"github.com/jhoicas/Supply-api/pkg/validate"
)

const (
	msgSkuInvalid       = "Invalid input data"
	msgSkuNotFound      = "SKU not found"
	msgSkuDuplicate     = "SKU with this name already exists for the selected supplier"
	msgInvalidSupplier  = "Invalid supplier selected"
	msgSkuReferencedByP = "SKU is referenced by purchase orders"
)

// supplierToken formato posicional del formulario: "supplier-N", N 1-based sobre
// los proveedores activos ordenados por nombre.
var supplierToken = regexp.MustCompile(`^supplier-(\d+)$`)

// SkuUseCase casos de uso CRUD para SKUs.
type SkuUseCase struct {
	skus      repository.SkuRepository
	suppliers repository.SupplierRepository
}

// NewSkuUseCase construye el caso de uso.
func NewSkuUseCase(skus repository.SkuRepository, suppliers repository.SupplierRepository) *SkuUseCase {
	return &SkuUseCase{skus: skus, suppliers: suppliers}
}

// List lista SKUs con filtros, orden y paginación. Total cuenta todas las filas del filtro.
func (uc *SkuUseCase) List(ctx context.Context, in dto.SkuListRequest) (*dto.SkuListResponse, error) {
	in.Normalize()
	field, desc := ParseSkuSort(in.Sort)
	filter := repository.SkuFilter{
		Query:      strings.TrimSpace(in.Q),
		Category:   strings.TrimSpace(in.Category),
		SupplierID: strings.TrimSpace(in.SupplierID),
		SortField:  field,
		SortDesc:   desc,
		Limit:      in.PageSize,
		Offset:     in.Offset(),
	}
	list, total, err := uc.skus.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SkuResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSkuResponse(s))
	}
	return &dto.SkuListResponse{
		Items:    items,
		Total:    total,
		Page:     in.Page,
		PageSize: in.PageSize,
	}, nil
}

// ParseSkuSort interpreta "campo:dirección". Campo desconocido → updatedAt; dirección distinta de asc → desc.
func ParseSkuSort(raw string) (repository.SkuSortField, bool) {
	field, dir, _ := strings.Cut(strings.TrimSpace(raw), ":")
	var f repository.SkuSortField
	switch repository.SkuSortField(field) {
	case repository.SkuSortName, repository.SkuSortCost, repository.SkuSortUpdatedAt:
		f = repository.SkuSortField(field)
	default:
		f = repository.SkuSortUpdatedAt
	}
	return f, dir != "asc"
}

// GetByID obtiene un SKU con su proveedor.
func (uc *SkuUseCase) GetByID(ctx context.Context, id string) (*dto.SkuResponse, error) {
	sku, err := uc.skus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.Errorf(domain.ErrNotFound, msgSkuNotFound)
	}
	return toSkuResponse(sku), nil
}

// Create valida el formulario, resuelve el proveedor y crea el SKU.
func (uc *SkuUseCase) Create(ctx context.Context, in dto.SkuForm) (*dto.SkuResponse, error) {
	fields, err := parseSkuForm(in)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.resolveSupplier(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	dup, err := uc.skus.FindByNameAndSupplier(ctx, fields.Name, supplier.ID, "")
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, domain.Duplicate(msgSkuDuplicate, nil)
	}

	now := time.Now()
	sku := &entity.Sku{
		ID:          uuid.New().String(),
		Name:        fields.Name,
		Description: fields.Description,
		Category:    fields.Category,
		Cost:        fields.Cost,
		SupplierID:  supplier.ID,
		LeadTime:    fields.LeadTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.skus.Create(ctx, sku); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Duplicate(msgSkuDuplicate, nil)
		}
		return nil, err
	}
	sku.Supplier = &entity.SupplierRef{ID: supplier.ID, Name: supplier.Name}
	return toSkuResponse(sku), nil
}

// Update reemplaza todos los campos editables de un SKU existente.
func (uc *SkuUseCase) Update(ctx context.Context, id string, in dto.SkuForm) (*dto.SkuResponse, error) {
	fields, err := parseSkuForm(in)
	if err != nil {
		return nil, err
	}
	sku, err := uc.skus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.Errorf(domain.ErrNotFound, msgSkuNotFound)
	}
	supplier, err := uc.resolveSupplier(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	dup, err := uc.skus.FindByNameAndSupplier(ctx, fields.Name, supplier.ID, id)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, domain.Duplicate(msgSkuDuplicate, nil)
	}

	sku.Name = fields.Name
	sku.Description = fields.Description
	sku.Category = fields.Category
	sku.Cost = fields.Cost
	sku.SupplierID = supplier.ID
	sku.LeadTime = fields.LeadTime
	sku.UpdatedAt = time.Now()
	sku.Supplier = nil
	if err := uc.skus.Update(ctx, sku); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Duplicate(msgSkuDuplicate, nil)
		}
		return nil, err
	}
	sku.Supplier = &entity.SupplierRef{ID: supplier.ID, Name: supplier.Name}
	return toSkuResponse(sku), nil
}

// Delete elimina un SKU. Si hay POs que lo referencian devuelve ErrConflict.
func (uc *SkuUseCase) Delete(ctx context.Context, id string) error {
	sku, err := uc.skus.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sku == nil {
		return domain.Errorf(domain.ErrNotFound, msgSkuNotFound)
	}
	if err := uc.skus.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.Errorf(domain.ErrConflict, msgSkuReferencedByP)
		}
		return err
	}
	return nil
}

// resolveSupplier traduce el valor del formulario a un proveedor activo.
// "supplier-N" se resuelve por posición (N-1) en ListActive; un UUID se busca directamente.
func (uc *SkuUseCase) resolveSupplier(ctx context.Context, token string) (*entity.Supplier, error) {
	token = strings.TrimSpace(token)
	if m := supplierToken.FindStringSubmatch(token); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, domain.Errorf(domain.ErrInvalidInput, msgInvalidSupplier)
		}
		active, err := uc.suppliers.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		if n < 1 || n > len(active) {
			return nil, domain.Errorf(domain.ErrInvalidInput, msgInvalidSupplier)
		}
		return active[n-1], nil
	}
	if _, err := uuid.Parse(token); err == nil {
		supplier, err := uc.suppliers.GetByID(ctx, token)
		if err != nil {
			return nil, err
		}
		if supplier != nil && supplier.Status == entity.SupplierActive {
			return supplier, nil
		}
	}
	return nil, domain.Errorf(domain.ErrInvalidInput, msgInvalidSupplier)
}

type skuFields struct {
	Name        string
	Description *string
	Category    string
	Cost        decimal.Decimal
	LeadTime    int
}

func parseSkuForm(in dto.SkuForm) (*skuFields, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.Invalid(msgSkuInvalid, err)
	}
	cost, err := decimal.NewFromString(strings.TrimSpace(in.Cost))
	if err != nil {
		return nil, domain.Invalid(msgSkuInvalid, err)
	}
	leadTime, err := strconv.Atoi(strings.TrimSpace(in.LeadTime))
	if err != nil {
		return nil, domain.Invalid(msgSkuInvalid, err)
	}
	out := &skuFields{
		Name:     in.Name,
		Category: in.Category,
		Cost:     cost,
		LeadTime: leadTime,
	}
	if in.Description != "" {
		d := in.Description
		out.Description = &d
	}
	return out, nil
}
