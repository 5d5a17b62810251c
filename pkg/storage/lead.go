package storage

import (
	"context"
	"leadgen/pkg/domain"
	"time"
)

// LeadStorage covers the lead catalog and the per-account lead associations.
type LeadStorage interface {
	// LeadCandidates returns every association of the account in the requested
	// visibility together with the lead's email validity and whether a draft
	// already exists for it. Active associations (excluded IS NULL) are ordered
	// by association id descending; excluded ones by exclusion time descending.
	LeadCandidates(ctx context.Context, accountID domain.AccountID, excluded bool) ([]domain.LeadCandidate, error)
	// LeadsByIDs returns the catalog leads with the given ids in no particular
	// order. Unknown ids are skipped.
	LeadsByIDs(ctx context.Context, IDs []domain.LeadID) ([]domain.Lead, error)
	// SetLeadsExcluded sets the exclusion timestamp of the account's
	// associations for the given leads. A zero time clears it (NULL). It
	// returns the number of associations matched.
	SetLeadsExcluded(ctx context.Context, accountID domain.AccountID, IDs []domain.LeadID, at time.Time) (int64, error)
}
