package main

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/config"
	"github.com/DanielPopoola/checkout-payment-gateway/internal/infrastructure/persistence/postgres"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the postgres schema migrations",
		Long: `Apply the embedded schema migrations to the database in the "database"
config section. Only meaningful when store.driver is postgres; serve also
migrates on startup.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			return runMigrate(cmd.Context(), path)
		},
	}
}

func runMigrate(ctx context.Context, configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Store.Driver != config.StorePostgres {
		return fmt.Errorf("migrate needs store.driver=%s, got %q", config.StorePostgres, cfg.Store.Driver)
	}

	logger := cfg.Logger.NewLogger()

	db, err := postgres.Connect(contextOrBackground(ctx), &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	logger.Info("migrations applied")
	return nil
}
