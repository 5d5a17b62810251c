package leads_test

import (
	"context"
	"errors"
	"leadgen/internal/leads"
	"leadgen/pkg/domain"
	"leadgen/pkg/serrors"
	"leadgen/pkg/storage"
	"testing"
	"time"

	mockstorage "leadgen/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestExclude_MergesCategoriesAfterExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := leads.New(st, leads.Options{DefaultPageSize: 50, Now: func() time.Time { return now }})
	session := testSession()
	ids := []domain.LeadID{1, 2}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockExcludedCategories(gomock.Any(), session.AccountID).
			Return(domain.NewCategorySet("roofer", "plumber"), nil)
		tx.EXPECT().SetExcludedCategories(gomock.Any(), session.AccountID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.AccountID, got domain.CategorySet) error {
				require.Equal(t, "roofer,plumber,electrician", got.CommaSeparated())

				return nil
			})
		tx.EXPECT().SetLeadsExcluded(gomock.Any(), session.AccountID, ids, now).Return(int64(2), nil)
	})

	categories, err := leads.ExclusionCategories(nil, "plumber,electrician")
	require.NoError(t, err)

	n, err := s.Exclude(context.Background(), session, ids, categories)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestExclude_WithoutCategoriesLeavesExclusionListAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := leads.New(st, leads.Options{DefaultPageSize: 50})

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// no LockExcludedCategories / SetExcludedCategories expected
		tx.EXPECT().SetLeadsExcluded(gomock.Any(), gomock.Any(), []domain.LeadID{5, 6}, gomock.Any()).
			Return(int64(2), nil)
	})

	n, err := s.Exclude(context.Background(), testSession(), []domain.LeadID{5, 6}, domain.NewCategorySet())
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestExclude_AlreadyKnownCategoriesSkipWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := leads.New(st, leads.Options{DefaultPageSize: 50})

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockExcludedCategories(gomock.Any(), gomock.Any()).
			Return(domain.NewCategorySet("plumber"), nil)
		tx.EXPECT().SetLeadsExcluded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	})

	_, err := s.Exclude(context.Background(), testSession(), []domain.LeadID{1}, domain.NewCategorySet("plumber"))
	require.NoError(t, err)
}

func TestExclude_FailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := leads.New(st, leads.Options{DefaultPageSize: 50})

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().SetLeadsExcluded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("deadlock"))
	})

	n, err := s.Exclude(context.Background(), testSession(), []domain.LeadID{1}, domain.NewCategorySet())
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.Zero(t, n)
}

func TestExcludeRestore_NoopWithoutAccountOrSelection(t *testing.T) {
	_, _, s := newTestService(t)

	n, err := s.Exclude(context.Background(), domain.Session{}, []domain.LeadID{1}, domain.NewCategorySet("a"))
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = s.Exclude(context.Background(), testSession(), nil, domain.NewCategorySet("a"))
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = s.Restore(context.Background(), testSession(), []domain.LeadID{})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestRestore_ClearsExclusionAndIsIdempotent(t *testing.T) {
	_, st, s := newTestService(t)
	session := testSession()

	gomock.InOrder(
		st.EXPECT().SetLeadsExcluded(gomock.Any(), session.AccountID, []domain.LeadID{3}, time.Time{}).Return(int64(1), nil),
		// restoring an already active lead still matches its association
		st.EXPECT().SetLeadsExcluded(gomock.Any(), session.AccountID, []domain.LeadID{3}, time.Time{}).Return(int64(1), nil),
	)

	for range 2 {
		n, err := s.Restore(context.Background(), session, []domain.LeadID{3})
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	}
}

func TestSelectedCategories_SelectionOrder(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().LeadsByIDs(gomock.Any(), []domain.LeadID{2, 1}).Return([]domain.Lead{
		{ID: 1, Categories: domain.ParseSpaced("plumber roofer")},
		{ID: 2, Categories: domain.ParseSpaced("electrician plumber")},
	}, nil)

	got, err := s.SelectedCategories(context.Background(), testSession(), []domain.LeadID{2, 1})
	require.NoError(t, err)
	require.Equal(t, []string{"electrician", "plumber", "roofer"}, got.Items())
}

func TestExclusionCategories(t *testing.T) {
	got, err := leads.ExclusionCategories([]string{"hair_salon", " barber "}, "plumber,barber")
	require.NoError(t, err)
	require.Equal(t, "hair_salon,barber,plumber", got.CommaSeparated())

	got, err = leads.ExclusionCategories(nil, "")
	require.NoError(t, err)
	require.True(t, got.IsEmpty())

	for _, bad := range []string{"plumber, electrician", "Plumber,electrician", "plumber,electrician,"} {
		_, err = leads.ExclusionCategories(nil, bad)
		require.ErrorIs(t, err, serrors.ErrBadRequest, bad)
	}

	_, err = leads.ExclusionCategories([]string{"two words"}, "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
