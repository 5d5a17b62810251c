package leads_test

import (
	"context"
	"errors"
	"leadgen/internal/leads"
	"leadgen/pkg/domain"
	"leadgen/pkg/serrors"
	"math"
	"testing"

	mockstorage "leadgen/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, leads.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := leads.New(st, leads.Options{DefaultPageSize: 50})

	return ctrl, st, s
}

func testSession() domain.Session {
	return domain.Session{
		IdentityID:    "sub-1",
		AccountID:     domain.AccountID(uuid.MustParse("6f1f1d5e-8a7a-4c55-9a53-3cf3a0a7f001")),
		AccountNumber: "A-1",
	}
}

// candidates builds n associations with descending ids, all valid and undrafted.
func candidates(n int) []domain.LeadCandidate {
	out := make([]domain.LeadCandidate, n)
	for i := range out {
		id := int64(n - i)
		out[i] = domain.LeadCandidate{
			LeadAssociation: domain.LeadAssociation{
				ID:     domain.AssociationID(id),
				LeadID: domain.LeadID(1000 + id),
			},
			HasValidEmail: true,
		}
	}

	return out
}

// hydrate answers LeadsByIDs with leads in reverse order to prove the page
// keeps association order.
func hydrate(_ context.Context, ids []domain.LeadID) ([]domain.Lead, error) {
	out := make([]domain.Lead, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, domain.Lead{
			ID:         ids[i],
			Title:      "lead",
			Email:      "x@example.com",
			Categories: domain.NewCategorySet("plumber"),
		})
	}

	return out, nil
}

func TestList_PaginatesFilteredList(t *testing.T) {
	_, st, s := newTestService(t)
	session := testSession()
	all := candidates(120)

	st.EXPECT().LeadCandidates(gomock.Any(), session.AccountID, false).Return(all, nil).Times(3)
	st.EXPECT().LeadsByIDs(gomock.Any(), gomock.Any()).DoAndReturn(hydrate).Times(3)

	first, err := s.List(context.Background(), session, leads.ListQuery{Page: 1, PageSize: 50})
	require.NoError(t, err)
	require.Len(t, first.Rows, 50)
	require.Equal(t, 120, first.TotalRecords)
	require.Equal(t, 3, first.TotalPages)
	require.Equal(t, domain.LeadID(1120), first.Rows[0].ID)
	require.Equal(t, domain.LeadID(1071), first.Rows[49].ID)
	require.Equal(t, []string{"plumber"}, first.Rows[0].CategoryList)

	second, err := s.List(context.Background(), session, leads.ListQuery{Page: 2, PageSize: 50})
	require.NoError(t, err)
	require.Len(t, second.Rows, 50)

	third, err := s.List(context.Background(), session, leads.ListQuery{Page: 3, PageSize: 50})
	require.NoError(t, err)
	require.Len(t, third.Rows, 20)
	require.Equal(t, domain.LeadID(1001), third.Rows[19].ID)

	require.Equal(t, first.TotalRecords, len(first.Rows)+len(second.Rows)+len(third.Rows))
}

func TestList_PageBoundsAndDefaults(t *testing.T) {
	_, st, s := newTestService(t)
	session := testSession()

	st.EXPECT().LeadCandidates(gomock.Any(), gomock.Any(), false).Return(candidates(30), nil).AnyTimes()
	st.EXPECT().LeadsByIDs(gomock.Any(), gomock.Any()).DoAndReturn(hydrate).AnyTimes()

	// unsupported size falls back to the default, page 0 becomes page 1
	page, err := s.List(context.Background(), session, leads.ListQuery{Page: 0, PageSize: 7})
	require.NoError(t, err)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 50, page.PageSize)
	require.Len(t, page.Rows, 30)
	require.Equal(t, 1, page.TotalPages)

	// past the end keeps the totals
	page, err = s.List(context.Background(), session, leads.ListQuery{Page: 9, PageSize: 10})
	require.NoError(t, err)
	require.Empty(t, page.Rows)
	require.Equal(t, 30, page.TotalRecords)
	require.Equal(t, 3, page.TotalPages)
}

func TestList_HugePageIsEmpty(t *testing.T) {
	_, st, s := newTestService(t)
	session := testSession()

	st.EXPECT().LeadCandidates(gomock.Any(), session.AccountID, false).Return(candidates(120), nil)

	page, err := s.List(context.Background(), session, leads.ListQuery{Page: math.MaxInt64, PageSize: 100})
	require.NoError(t, err)
	require.Empty(t, page.Rows)
	require.Equal(t, math.MaxInt64, page.Page)
	require.Equal(t, 120, page.TotalRecords)
	require.Equal(t, 2, page.TotalPages)
}

func TestList_PageSumMatchesTotalForEveryFilter(t *testing.T) {
	_, st, s := newTestService(t)
	session := testSession()

	mixed := candidates(37)
	for i := range mixed {
		mixed[i].HasValidEmail = i%3 != 0
		mixed[i].Drafted = i%4 == 0
	}
	st.EXPECT().LeadCandidates(gomock.Any(), gomock.Any(), gomock.Any()).Return(mixed, nil).AnyTimes()
	st.EXPECT().LeadsByIDs(gomock.Any(), gomock.Any()).DoAndReturn(hydrate).AnyTimes()

	for _, filter := range []domain.LeadFilter{
		{},
		{IncludeWithoutEmail: true},
		{IncludeAlreadyEmailed: true},
		{IncludeWithoutEmail: true, IncludeAlreadyEmailed: true},
		{ExcludedOnly: true},
	} {
		for _, size := range leads.AllowedPageSizes {
			first, err := s.List(context.Background(), session, leads.ListQuery{Filter: filter, Page: 1, PageSize: size})
			require.NoError(t, err)

			sum := 0
			for p := 1; p <= first.TotalPages; p++ {
				page, err := s.List(context.Background(), session, leads.ListQuery{Filter: filter, Page: p, PageSize: size})
				require.NoError(t, err)
				require.LessOrEqual(t, len(page.Rows), size)
				sum += len(page.Rows)
			}
			require.Equal(t, first.TotalRecords, sum, "filter %+v size %d", filter, size)
		}
	}
}

func TestFilterCandidates(t *testing.T) {
	c := func(id int64, valid, drafted bool) domain.LeadCandidate {
		return domain.LeadCandidate{
			LeadAssociation: domain.LeadAssociation{LeadID: domain.LeadID(id)},
			HasValidEmail:   valid,
			Drafted:         drafted,
		}
	}
	in := []domain.LeadCandidate{c(1, true, false), c(2, false, false), c(3, true, true), c(4, false, true)}

	ids := func(cs []domain.LeadCandidate) []domain.LeadID {
		out := make([]domain.LeadID, len(cs))
		for i, c := range cs {
			out[i] = c.LeadID
		}

		return out
	}

	require.Equal(t, []domain.LeadID{1}, ids(leads.FilterCandidates(in, domain.LeadFilter{})))
	require.Equal(t, []domain.LeadID{1, 2},
		ids(leads.FilterCandidates(in, domain.LeadFilter{IncludeWithoutEmail: true})))
	require.Equal(t, []domain.LeadID{1, 3},
		ids(leads.FilterCandidates(in, domain.LeadFilter{IncludeAlreadyEmailed: true})))
	require.Equal(t, []domain.LeadID{1, 2, 3, 4},
		ids(leads.FilterCandidates(in, domain.LeadFilter{ExcludedOnly: true})))
}

func TestList_CandidateFailureReturnsEmptyTotals(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().LeadCandidates(gomock.Any(), gomock.Any(), true).Return(nil, errors.New("connection reset"))

	page, err := s.List(context.Background(), testSession(), leads.ListQuery{
		Filter: domain.LeadFilter{ExcludedOnly: true}, Page: 1, PageSize: 25,
	})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.Zero(t, page.TotalRecords)
	require.Empty(t, page.Rows)
}

func TestList_NoAccount(t *testing.T) {
	_, _, s := newTestService(t)

	page, err := s.List(context.Background(), domain.Session{IdentityID: "sub"}, leads.ListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Empty(t, page.Rows)
	require.Zero(t, page.TotalRecords)
}
