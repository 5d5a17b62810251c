package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs on the queue backend. The returned
// bool reports whether the insert was skipped because a unique job already
// exists.
//
//	inserted, err := storage.AddJob(ctx, drafts.SweepJobArgs{}, nil)
type JobStorage interface {
	// AddJob enqueues a new job. Inside a transaction the insert commits with it.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
