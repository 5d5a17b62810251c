package main

import (
	"context"
	"leadgen/internal/config"
	"leadgen/internal/drafts"
	"leadgen/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sweepCommand queues the exported draft retention sweep, or runs it in
// process with --now.
func sweepCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Deletes exported email drafts past the retention period",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			now, _ := cmd.Flags().GetBool("now")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := drafts.New(strg, drafts.NewOptions(cfg))
			if now {
				n, err := svc.Sweep(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not sweep drafts", zap.Error(err))
				}
				logger.Info(ctx, "drafts swept", zap.Int64("deleted", n))

				return
			}

			queued, err := svc.Schedule(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not queue draft sweep", zap.Error(err))
			}
			logger.Info(ctx, "draft sweep queued", zap.Bool("queued", queued))
		},
	}

	cmd.Flags().Bool("now", false, "Run the sweep in this process instead of queueing it")

	return cmd
}
