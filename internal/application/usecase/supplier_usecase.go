package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/internal/domain/entity"
	"github.com/jhoicas/Supply-api/internal/domain/repository"
	"github.com/jhoicas/Supply-api/pkg/validate"
)

const msgSupplierExists = "Supplier with this name already exists"

// SupplierUseCase casos de uso para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List devuelve los proveedores activos ordenados por nombre (sin paginación).
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// Create crea un proveedor. Si ya existe uno con el mismo nombre exacto devuelve
// ErrDuplicate con el registro existente.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Status = strings.TrimSpace(in.Status)
	if err := validate.Struct(in); err != nil {
		return nil, domain.Invalid("Invalid supplier data", err)
	}
	status := entity.SupplierActive
	if in.Status != "" {
		status = entity.SupplierStatus(in.Status)
	}

	existing, err := uc.repo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate(msgSupplierExists, toSupplierResponse(existing))
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Otro request insertó el mismo nombre entre la consulta y el insert.
			existing, getErr := uc.repo.GetByName(ctx, in.Name)
			if getErr != nil {
				return nil, fmt.Errorf("releer proveedor duplicado: %w", getErr)
			}
			return nil, domain.Duplicate(msgSupplierExists, toSupplierResponse(existing))
		}
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}
