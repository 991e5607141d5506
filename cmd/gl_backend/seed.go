package main

import (
	"log/slog"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/core/services"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/spf13/cobra"
)

func seedChartCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed-chart",
		Short: "Seed the standard chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			ctx := middleware.WithLogger(cmd.Context(), logger)

			repos, closeRepos, err := openRepositories(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer closeRepos()

			svc := services.NewServiceContainer(repos)
			created, err := svc.Account.InitializeStandardChart(ctx, force, domain.SystemUserID)
			if err != nil {
				return err
			}
			logger.Info("Chart of accounts seeded", slog.Int("created", len(created)), slog.Bool("force", force))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Add missing standard accounts to a non-empty chart")
	return cmd
}
