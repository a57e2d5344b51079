// Package cli comandos cobra de supplyctl.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Supply-api/pkg/config"
	"github.com/jhoicas/Supply-api/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:          "supplyctl",
	Short:        "Herramientas de operación de Upstream Supply",
	Long:         "supplyctl aplica migraciones y carga el catálogo de ejemplo en PostgreSQL.",
	SilenceUsage: true,
}

// Execute ejecuta el comando raíz.
func Execute() error {
	return rootCmd.Execute()
}

// loadEnv carga configuración y logger compartidos por todos los subcomandos.
func loadEnv() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	return cfg, log.Named("supplyctl"), nil
}
