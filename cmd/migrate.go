package main

import (
	"context"
	root "leadgen"
	"leadgen/internal/config"
	"leadgen/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the leadgen schema and the job queue tables.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the leads database and the job queue to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			report, err := strg.Migrate(ctx, root.Migrations())
			if err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			if len(report.Schema) == 0 && len(report.Queue) == 0 {
				logger.Info(ctx, "database already up to date")

				return
			}

			logger.Info(ctx, "database migrated",
				zap.Int64s("schemaVersions", report.Schema),
				zap.Ints("queueVersions", report.Queue))
		},
	}
}
