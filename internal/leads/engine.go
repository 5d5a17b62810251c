package leads

import (
	"context"
	"leadgen/pkg/domain"
	"leadgen/pkg/logger"
	"leadgen/pkg/metrics"
	"leadgen/pkg/serrors"
	"slices"
	"time"

	"go.uber.org/zap"
)

// List returns one page of the account's leads. Filtering happens before
// pagination so totals always describe the filtered list.
func (s service) List(ctx context.Context, session domain.Session, query ListQuery) (domain.LeadPage, error) {
	start := time.Now()
	defer func() {
		metrics.ObserveLeadList(query.Filter.ExcludedOnly, time.Since(start))
	}()

	page := domain.LeadPage{
		Rows:     []domain.LeadRow{},
		Page:     max(query.Page, 1),
		PageSize: query.PageSize,
		Filter:   query.Filter,
	}
	if !slices.Contains(AllowedPageSizes, page.PageSize) {
		page.PageSize = s.options.DefaultPageSize
	}
	if !session.HasAccount() {
		return page, nil
	}

	candidates, err := s.storage.LeadCandidates(ctx, session.AccountID, query.Filter.ExcludedOnly)
	if err != nil {
		return page, serrors.Wrap(serrors.ErrInternal, err, "could not load lead associations")
	}

	filtered := FilterCandidates(candidates, query.Filter)
	page.TotalRecords = len(filtered)
	page.TotalPages = (len(filtered) + page.PageSize - 1) / page.PageSize

	// pages past the end are empty; checked before multiplying so a huge page
	// number cannot overflow the offset
	if page.Page > page.TotalPages {
		return page, nil
	}
	lo := (page.Page - 1) * page.PageSize
	window := filtered[lo:min(lo+page.PageSize, len(filtered))]

	ids := make([]domain.LeadID, len(window))
	for i, c := range window {
		ids[i] = c.LeadID
	}

	leads, err := s.storage.LeadsByIDs(ctx, ids)
	if err != nil {
		return page, serrors.Wrap(serrors.ErrInternal, err, "could not load leads")
	}

	byID := make(map[domain.LeadID]domain.Lead, len(leads))
	for _, l := range leads {
		byID[l.ID] = l
	}

	for _, c := range window {
		l, ok := byID[c.LeadID]
		if !ok {
			logger.Warn(ctx, "lead association points to a missing lead",
				zap.Int64("leadID", int64(c.LeadID)),
				zap.Int64("associationID", int64(c.ID)))

			continue
		}

		page.Rows = append(page.Rows, domain.LeadRow{
			Lead:          l,
			AssociationID: c.ID,
			Excluded:      c.Excluded,
			Emailed:       c.Emailed,
			CategoryList:  l.Categories.Items(),
		})
	}

	return page, nil
}

// FilterCandidates applies the lead filter in order: already drafted leads
// are dropped first, then leads without a valid email. The excluded view
// skips both filters. Input order is preserved.
func FilterCandidates(candidates []domain.LeadCandidate, filter domain.LeadFilter) []domain.LeadCandidate {
	out := make([]domain.LeadCandidate, 0, len(candidates))
	for _, c := range candidates {
		if !filter.ExcludedOnly && !filter.IncludeAlreadyEmailed && c.Drafted {
			continue
		}
		if !filter.ExcludedOnly && !filter.IncludeWithoutEmail && !c.HasValidEmail {
			continue
		}
		out = append(out, c)
	}

	return out
}
