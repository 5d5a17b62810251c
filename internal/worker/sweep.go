package worker

import (
	"context"
	"leadgen/internal/drafts"
	"leadgen/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RetentionSweepWorker deletes exported drafts past their retention period.
// The sweep is idempotent so overlapping runs are harmless.
type RetentionSweepWorker struct {
	river.WorkerDefaults[drafts.SweepJobArgs]

	drafts drafts.Service
}

// NewRetentionSweepWorker returns a worker backed by the given drafts service.
func NewRetentionSweepWorker(draftsService drafts.Service) *RetentionSweepWorker {
	return &RetentionSweepWorker{drafts: draftsService}
}

func (w *RetentionSweepWorker) Work(ctx context.Context, job *river.Job[drafts.SweepJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("kind", job.Kind))

	if _, err := w.drafts.Sweep(ctx); err != nil {
		logger.Error(ctx, "retention sweep failed", zap.Error(err))

		return err //nolint: wrapcheck
	}

	return nil
}
