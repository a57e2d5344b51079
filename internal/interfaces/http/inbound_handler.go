package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/domain"
)

// InboundHandler maneja las peticiones HTTP para envíos entrantes.
type InboundHandler struct {
	uc *usecase.InboundUseCase
}

// NewInboundHandler construye el handler.
func NewInboundHandler(uc *usecase.InboundUseCase) *InboundHandler {
	return &InboundHandler{uc: uc}
}

// List godoc
// @Summary      Listar envíos entrantes
// @Tags         inbound
// @Produce      json
// @Success      200  {object}  dto.InboundListResponse
// @Router       /api/inbound [get]
func (h *InboundHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener envío
// @Tags         inbound
// @Produce      json
// @Param        id   path      string  true  "ID del envío"
// @Success      200  {object}  dto.InboundEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inbound/{id} [get]
func (h *InboundHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.InboundEnvelope{Item: out})
}

// Create godoc
// @Summary      Registrar envío de una PO
// @Tags         inbound
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      dto.CreateInboundRequest  true  "Datos del envío"
// @Success      201   {object}  dto.InboundEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inbound [post]
func (h *InboundHandler) Create(c *fiber.Ctx) error {
	f, err := bodyFields(c)
	if err != nil {
		return respondError(c, domain.Invalid("poId, courier, and trackingNumber are required", err))
	}
	out, err := h.uc.Create(c.UserContext(), dto.CreateInboundRequest{
		PoID:           f["poId"],
		Courier:        f["courier"],
		TrackingNumber: f["trackingNumber"],
		ETA:            f["eta"],
		Status:         f["status"],
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InboundEnvelope{Item: out})
}

// Update godoc
// @Summary      Actualizar status y/o ETA de un envío
// @Description  Una ETA no interpretable o un campo que no es texto se ignora y se aplica el resto.
// @Tags         inbound
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        id    path      string                    true  "ID del envío"
// @Param        body  body      dto.UpdateInboundRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.InboundEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inbound/{id} [put]
func (h *InboundHandler) Update(c *fiber.Ctx) error {
	f, err := bodyStrings(c)
	if err != nil {
		return respondError(c, domain.Invalid("Failed to update", err))
	}
	var in dto.UpdateInboundRequest
	if v, ok := f["status"]; ok {
		in.Status = &v
	}
	if v, ok := f["eta"]; ok {
		in.ETA = &v
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.InboundEnvelope{Item: out})
}
