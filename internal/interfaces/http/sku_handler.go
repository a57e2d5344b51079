package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/domain"
)

// SkuHandler maneja las peticiones HTTP para SKUs.
type SkuHandler struct {
	uc *usecase.SkuUseCase
}

// NewSkuHandler construye el handler.
func NewSkuHandler(uc *usecase.SkuUseCase) *SkuHandler {
	return &SkuHandler{uc: uc}
}

// List godoc
// @Summary      Listar SKUs
// @Tags         skus
// @Produce      json
// @Param        q           query  string  false  "Texto libre (id, nombre, descripción, categoría, proveedor)"
// @Param        category    query  string  false  "Categoría (contiene)"
// @Param        supplierId  query  string  false  "ID exacto del proveedor"
// @Param        page        query  int     false  "Página"           default(1)
// @Param        pageSize    query  int     false  "Tamaño (máx 100)" default(20)
// @Param        sort        query  string  false  "campo:dirección"  default(updatedAt:desc)
// @Success      200  {object}  dto.SkuListResponse
// @Router       /api/skus [get]
func (h *SkuHandler) List(c *fiber.Ctx) error {
	in := dto.SkuListRequest{
		PageRequest: dto.PageRequest{
			Page:     c.QueryInt("page", dto.DefaultPage),
			PageSize: c.QueryInt("pageSize", dto.DefaultPageSize),
		},
		Q:          c.Query("q"),
		Category:   c.Query("category"),
		SupplierID: c.Query("supplierId"),
		Sort:       c.Query("sort"),
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener SKU con su proveedor
// @Tags         skus
// @Produce      json
// @Param        id   path      string  true  "ID del SKU"
// @Success      200  {object}  dto.SkuResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [get]
func (h *SkuHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear SKU
// @Description  supplierId acepta "supplier-N" (posición entre los proveedores activos por nombre) o el ID del proveedor.
// @Tags         skus
// @Accept       x-www-form-urlencoded,mpfd,json
// @Produce      json
// @Param        body  body      dto.SkuForm  true  "Campos del SKU"
// @Success      201   {object}  dto.SkuEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/skus [post]
func (h *SkuHandler) Create(c *fiber.Ctx) error {
	form, err := skuForm(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), form)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SkuEnvelope{Success: true, Sku: out})
}

// Update godoc
// @Summary      Actualizar SKU
// @Tags         skus
// @Accept       x-www-form-urlencoded,mpfd,json
// @Produce      json
// @Param        id    path      string       true  "ID del SKU"
// @Param        body  body      dto.SkuForm  true  "Campos del SKU"
// @Success      200   {object}  dto.SkuEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [put]
func (h *SkuHandler) Update(c *fiber.Ctx) error {
	form, err := skuForm(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), form)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SkuEnvelope{Success: true, Sku: out})
}

// Delete godoc
// @Summary      Eliminar SKU
// @Description  409 si hay órdenes de compra que lo referencian.
// @Tags         skus
// @Produce      json
// @Param        id   path      string  true  "ID del SKU"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [delete]
func (h *SkuHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func skuForm(c *fiber.Ctx) (dto.SkuForm, error) {
	f, err := bodyFields(c)
	if err != nil {
		return dto.SkuForm{}, domain.Invalid("Invalid input data", err)
	}
	return dto.SkuForm{
		Name:        f["name"],
		Description: f["description"],
		Category:    f["category"],
		Cost:        f["cost"],
		SupplierID:  f["supplierId"],
		LeadTime:    f["leadTime"],
	}, nil
}
