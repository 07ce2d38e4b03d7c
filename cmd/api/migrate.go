package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/dicri-api/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica los scripts SQL embebidos (tablas, estados del flujo y procedimientos almacenados)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context())
	},
}

func runMigrate(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, log.Component("migrate")); err != nil {
		return err
	}
	log.Info().Msg("migraciones al día")
	return nil
}
