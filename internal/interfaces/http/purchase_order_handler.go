package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Supply-api/internal/application/document"
	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/domain"
)

// PurchaseOrderHandler maneja las peticiones HTTP para órdenes de compra.
type PurchaseOrderHandler struct {
	uc  *usecase.PurchaseOrderUseCase
	pdf *document.PurchaseOrderPDFUseCase
}

// NewPurchaseOrderHandler construye el handler. pdf puede ser nil (sin descarga de PDF).
func NewPurchaseOrderHandler(uc *usecase.PurchaseOrderUseCase, pdf *document.PurchaseOrderPDFUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         po
// @Produce      json
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Router       /api/po [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden de compra
// @Tags         po
// @Produce      json
// @Param        id   path      string  true  "ID de la PO"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/po/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden de compra (draft)
// @Tags         po
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      dto.CreatePurchaseOrderRequest  true  "skuId y quantity"
// @Success      201   {object}  dto.PurchaseOrderEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/po [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	f, err := bodyFields(c)
	if err != nil {
		return respondError(c, domain.Invalid("Invalid input", err))
	}
	out, err := h.uc.Create(c.UserContext(), dto.CreatePurchaseOrderRequest{
		SkuID:    f["skuId"],
		Quantity: f["quantity"],
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PurchaseOrderEnvelope{Success: true, PO: out})
}

// PDF godoc
// @Summary      Descargar la orden de compra en PDF
// @Tags         po
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la PO"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/po/{id}/pdf [get]
func (h *PurchaseOrderHandler) PDF(c *fiber.Ctx) error {
	if h.pdf == nil {
		return fiber.ErrNotImplemented
	}
	pdfBytes, filename, err := h.pdf.Download(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
