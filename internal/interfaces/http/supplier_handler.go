package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/domain"
)

// SupplierHandler maneja las peticiones HTTP para proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores activos
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}   dto.SupplierResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proveedor
// @Description  Un nombre ya existente devuelve 409 con el proveedor existente.
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.SupplierEnvelope
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.Invalid("Invalid supplier data", err))
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		var derr *domain.Error
		if errors.As(err, &derr) && errors.Is(err, domain.ErrDuplicate) {
			if existing, ok := derr.Existing.(*dto.SupplierResponse); ok && existing != nil {
				return c.Status(fiber.StatusConflict).JSON(dto.SupplierEnvelope{Supplier: existing, Error: derr.Error()})
			}
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SupplierEnvelope{Supplier: out})
}
