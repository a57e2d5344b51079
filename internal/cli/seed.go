package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Supply-api/internal/application/usecase"
	"github.com/jhoicas/Supply-api/internal/infrastructure/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga proveedores y SKUs de ejemplo (idempotente)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadEnv()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name+"-seed")
		if err != nil {
			return err
		}
		defer pool.Close()

		res, err := usecase.NewSeedUseCase(postgres.NewTxRunner(pool)).Run(ctx)
		if err != nil {
			return err
		}
		log.Info().Int("suppliers", res.Suppliers).Int("skus", res.Skus).Msg("seed completado")
		cmd.Printf("seed: %d proveedores, %d SKUs\n", res.Suppliers, res.Skus)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
