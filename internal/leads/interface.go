// Package leads builds the paginated lead views of an account and runs the
// exclusion workflow.
package leads

import (
	"context"
	"leadgen/pkg/domain"
)

// ListQuery selects one page of an account's leads.
type ListQuery struct {
	Filter   domain.LeadFilter
	Page     int
	PageSize int
}

//go:generate mockgen -package mockleads -source=interface.go -destination=mock/mockleads.go *
type Service interface {
	List(ctx context.Context, session domain.Session, query ListQuery) (domain.LeadPage, error)
	Exclude(ctx context.Context,
		session domain.Session,
		leadIDs []domain.LeadID,
		categories domain.CategorySet) (int64, error)
	Restore(ctx context.Context, session domain.Session, leadIDs []domain.LeadID) (int64, error)
	SelectedCategories(ctx context.Context, session domain.Session, leadIDs []domain.LeadID) (domain.CategorySet, error)
}
