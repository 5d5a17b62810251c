// Package worker runs the background job queue.
package worker

import (
	"context"
	"fmt"
	"leadgen/internal/config"
	"leadgen/internal/drafts"
	"leadgen/pkg/logger"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the job queue.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
	// RetentionSchedule is the cron expression of the draft sweep.
	RetentionSchedule string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:        cfg.Worker.MaxWorkers,
		RetentionSchedule: cfg.Retention.Schedule,
	}
}

// ParseSchedule parses a standard five field cron expression.
func ParseSchedule(expr string) (cron.Schedule, error) {
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("could not parse cron schedule %q: %w", expr, err)
	}

	return schedule, nil
}

// Config builds the river configuration: registered workers plus the
// periodic retention sweep.
func Config(ctx context.Context, draftsService drafts.Service, opts Options) (*river.Config, error) {
	schedule, err := ParseSchedule(opts.RetentionSchedule)
	if err != nil {
		return nil, err
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, &RetentionSweepWorker{
		drafts: draftsService,
	})

	return &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				schedule,
				func() (river.JobArgs, *river.InsertOpts) {
					return drafts.SweepJobArgs{}, nil
				},
				nil,
			),
		},
		Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	}, nil
}

// Start creates and starts the river client.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	draftsService drafts.Service,
	opts Options,
) (*river.Client[pgx.Tx], error) {
	riverConfig, err := Config(ctx, draftsService, opts)
	if err != nil {
		return nil, err
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), riverConfig)
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	logger.Info(ctx, "job queue started",
		zap.Int("maxWorkers", riverConfig.Queues[river.QueueDefault].MaxWorkers),
		zap.String("retentionSchedule", opts.RetentionSchedule))

	return riverClient, nil
}
