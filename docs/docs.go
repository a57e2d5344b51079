// Package docs registra la especificación Swagger de la API en swaggo/swag.
// swagger.json se regenera con `swag init -g cmd/api/main.go`.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerJSON []byte

// SwaggerInfo metadatos exportados para ajustar host/basePath en runtime.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Upstream Supply API",
	Description:      "SKUs, proveedores, órdenes de compra y envíos entrantes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(swaggerJSON),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// JSON devuelve el documento Swagger embebido en el binario.
func JSON() []byte {
	return swaggerJSON
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
