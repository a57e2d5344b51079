package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Supply-api/internal/application/dto"
	"github.com/jhoicas/Supply-api/internal/domain"
	"github.com/jhoicas/Supply-api/pkg/logger"
	"github.com/jhoicas/Supply-api/pkg/validate"
)

const msgInternal = "Internal server error"

// respondError traduce errores de dominio a status HTTP. Lo que no es de dominio
// se devuelve tal cual para que ErrorHandler lo registre y responda 500.
func respondError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	if status == fiber.StatusInternalServerError {
		return err
	}
	body := dto.ErrorResponse{Error: messageFor(err), Code: code}
	var verr *validate.Error
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			body.Fields = append(body.Fields, f.String())
		}
	}
	return c.Status(status).JSON(body)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

func messageFor(err error) string {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr.Error()
	}
	return err.Error()
}

// ErrorHandler manejador de errores de fiber: 500 sin detalle para el cliente
// y con el error completo en el log. Respeta los *fiber.Error (404 de ruta, 413...).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return c.Status(ferr.Code).JSON(dto.ErrorResponse{Error: ferr.Message})
		}
		log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msgInternal, Code: "INTERNAL"})
	}
}
