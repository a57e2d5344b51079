// supplyctl tareas de operación: migraciones y datos de ejemplo.
//
// Uso:
//
//	supplyctl migrate up
//	supplyctl migrate down --steps 1
//	supplyctl migrate version
//	supplyctl seed
package main

import (
	"os"

	"github.com/jhoicas/Supply-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
