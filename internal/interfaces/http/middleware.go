package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Supply-api/pkg/logger"
)

// LocalRequestID key de c.Locals donde requestid deja el ID de la petición.
const LocalRequestID = "request_id"

// RequestID asigna un X-Request-ID a cada petición (respeta el que envíe el cliente).
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{ContextKey: LocalRequestID})
}

// RequestLogger registra método, ruta, status y latencia de cada petición.
// Las respuestas 5xx se registran con nivel error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Ejecutar el ErrorHandler aquí para registrar el status final.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", requestID(c)).
			Msg("request")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalRequestID).(string); ok {
		return v
	}
	return ""
}
