package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/general_ledger/internal/platform/config"
	"github.com/SscSPs/general_ledger/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back schema migrations",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := database.Up
			if len(args) == 1 {
				var err error
				if dir, err = database.ParseDirection(args[0]); err != nil {
					return err
				}
			}

			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			if cfg.StorageDriver != config.StoragePostgres {
				return fmt.Errorf("migrate requires STORAGE_DRIVER=%s", config.StoragePostgres)
			}

			changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, dir)
			if err != nil {
				return err
			}
			if !changed {
				logger.Info("No migrations to apply", slog.String("direction", string(dir)))
			}
			return nil
		},
	}
}
