package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Supply-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Gestiona el esquema de la base de datos",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica las migraciones pendientes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(func(mg *postgres.Migrator) error {
			if err := mg.Up(); err != nil {
				return err
			}
			return printVersion(cmd, mg)
		})
	},
}

var downSteps int

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revierte migraciones (todas si --steps es 0)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if downSteps < 0 {
			return fmt.Errorf("--steps debe ser >= 0")
		}
		return withMigrator(func(mg *postgres.Migrator) error {
			if err := mg.Down(downSteps); err != nil {
				return err
			}
			return printVersion(cmd, mg)
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión aplicada del esquema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(func(mg *postgres.Migrator) error {
			return printVersion(cmd, mg)
		})
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "número de migraciones a revertir")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withMigrator(fn func(mg *postgres.Migrator) error) error {
	cfg, log, err := loadEnv()
	if err != nil {
		return err
	}
	mg, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		return err
	}
	defer func() {
		if err := mg.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
	}()
	return fn(mg)
}

func printVersion(cmd *cobra.Command, mg *postgres.Migrator) error {
	v, dirty, err := mg.Version()
	if err != nil {
		return err
	}
	if dirty {
		cmd.Printf("versión %d (dirty)\n", v)
		return nil
	}
	cmd.Printf("versión %d\n", v)
	return nil
}
