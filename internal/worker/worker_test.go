package worker_test

import (
	"context"
	"errors"
	"leadgen/internal/drafts"
	mockdrafts "leadgen/internal/drafts/mock"
	"leadgen/internal/worker"
	"leadgen/pkg/logger"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64) *river.Job[drafts.SweepJobArgs] {
	return &river.Job[drafts.SweepJobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Kind: drafts.SweepJobArgs{}.Kind()},
		Args:   drafts.SweepJobArgs{},
	}
}

func TestRetentionSweepWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockdrafts.NewMockService(ctrl)
	w := worker.NewRetentionSweepWorker(svc)

	svc.EXPECT().Sweep(gomock.Any()).Return(int64(3), nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1)))
}

func TestRetentionSweepWorker_WorkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockdrafts.NewMockService(ctrl)
	w := worker.NewRetentionSweepWorker(svc)

	boom := errors.New("boom")
	svc.EXPECT().Sweep(gomock.Any()).Return(int64(0), boom)

	require.ErrorIs(t, w.Work(context.Background(), makeJob(2)), boom)
}

func TestParseSchedule(t *testing.T) {
	schedule, err := worker.ParseSchedule("0 3 * * *")
	require.NoError(t, err)

	from := time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 5, 2, 3, 0, 0, 0, time.UTC), schedule.Next(from))

	_, err = worker.ParseSchedule("not a cron")
	require.Error(t, err)
}

func TestConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mockdrafts.NewMockService(ctrl)

	cfg, err := worker.Config(context.Background(), svc, worker.Options{MaxWorkers: 0, RetentionSchedule: "@hourly"})
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Queues[river.QueueDefault].MaxWorkers)
	require.Len(t, cfg.PeriodicJobs, 1)

	_, err = worker.Config(context.Background(), svc, worker.Options{RetentionSchedule: "bad"})
	require.Error(t, err)
}
