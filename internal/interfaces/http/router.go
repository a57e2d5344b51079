package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Supply-api/internal/application/document"
	"github.com/jhoicas/Supply-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SupplierUC       *usecase.SupplierUseCase
	SkuUC            *usecase.SkuUseCase
	PurchaseOrderUC  *usecase.PurchaseOrderUseCase
	InboundUC        *usecase.InboundUseCase
	PurchaseOrderPDF *document.PurchaseOrderPDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)

	skus := api.Group("/skus")
	skuHandler := NewSkuHandler(deps.SkuUC)
	skus.Get("/", skuHandler.List)
	skus.Post("/", skuHandler.Create)
	skus.Get("/:id", skuHandler.GetByID)
	skus.Put("/:id", skuHandler.Update)
	skus.Delete("/:id", skuHandler.Delete)

	po := api.Group("/po")
	poHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC, deps.PurchaseOrderPDF)
	po.Get("/", poHandler.List)
	po.Post("/", poHandler.Create)
	po.Get("/:id", poHandler.GetByID)
	po.Get("/:id/pdf", poHandler.PDF)

	inbound := api.Group("/inbound")
	inboundHandler := NewInboundHandler(deps.InboundUC)
	inbound.Get("/", inboundHandler.List)
	inbound.Post("/", inboundHandler.Create)
	inbound.Get("/:id", inboundHandler.GetByID)
	inbound.Put("/:id", inboundHandler.Update)
}
