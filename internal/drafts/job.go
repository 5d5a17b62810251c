package drafts

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// SweepJobArgs queues a retention sweep. Sweeps carry no arguments, so the
// uniqueness window keeps at most one queued sweep per period.
type SweepJobArgs struct{}

// Kind returns the River job kind used to register the sweep worker.
func (SweepJobArgs) Kind() string { return "SweepExportedDraftsJob" }

// InsertOpts makes sweeps single attempt and unique per minute. A failed
// sweep waits for the next schedule.
func (SweepJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Minute,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}
