package drafts_test

import (
	"context"
	"errors"
	"leadgen/internal/drafts"
	"leadgen/pkg/domain"
	"leadgen/pkg/serrors"
	"testing"
	"time"

	mockstorage "leadgen/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 5, 10, 3, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*mockstorage.MockStorage, drafts.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, drafts.New(st, drafts.Options{Now: func() time.Time { return now }})
}

func TestSweep_UsesThirtyDayCutoff(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().DeleteExportedDraftsBefore(gomock.Any(), now.Add(-30*24*time.Hour)).Return(int64(4), nil)

	n, err := s.Sweep(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 4, n)
}

func TestSweep_Error(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().DeleteExportedDraftsBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked"))

	_, err := s.Sweep(context.Background())
	require.Error(t, err)
}

func TestSchedule_QueuesSweepJob(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().AddJob(gomock.Any(), drafts.SweepJobArgs{}, gomock.Nil()).Return(false, nil)

	added, err := s.Schedule(context.Background())
	require.NoError(t, err)
	require.False(t, added)
}

func TestExport(t *testing.T) {
	st, s := newTestService(t)
	session := domain.Session{AccountID: domain.AccountID(uuid.New())}

	st.EXPECT().MarkDraftsExported(gomock.Any(), session.AccountID, []domain.DraftID{1, 2}, now).
		Return([]domain.EmailDraft{{ID: 1, Exported: now}}, nil)

	out, err := s.Export(context.Background(), session, []domain.DraftID{1, 2})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].IsExported())

	out, err = s.Export(context.Background(), session, nil)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestList(t *testing.T) {
	st, s := newTestService(t)
	session := domain.Session{AccountID: domain.AccountID(uuid.New())}

	st.EXPECT().AccountDrafts(gomock.Any(), session.AccountID, true).Return(nil, nil)
	out, err := s.List(context.Background(), session, true)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)

	st.EXPECT().AccountDrafts(gomock.Any(), session.AccountID, false).Return(nil, errors.New("down"))
	_, err = s.List(context.Background(), session, false)
	require.ErrorIs(t, err, serrors.ErrInternal)
}
