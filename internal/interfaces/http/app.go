package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Supply-api/pkg/logger"
)

// AppConfig opciones del servidor HTTP.
type AppConfig struct {
	Name         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// DocsPath ruta al swagger.json; si no existe no se monta /docs.
	DocsPath string
}

// NewApp construye la aplicación fiber con middlewares, /health, /docs y las rutas de la API.
func NewApp(cfg AppConfig, log *logger.Logger, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(log),
	})

	// recover va dentro de RequestLogger para que un panic quede registrado como 500.
	app.Use(RequestID(), RequestLogger(log), recover.New())

	if cfg.DocsPath != "" {
		if _, err := os.Stat(cfg.DocsPath); err == nil {
			// Swagger UI: http://localhost:<port>/docs
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsPath,
				Path:     "docs",
				Title:    cfg.Name + " API",
			}))
		} else {
			log.Warn().Str("path", cfg.DocsPath).Msg("swagger.json no encontrado; /docs desactivado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.Name})
	})

	Router(app, deps)
	return app
}
