// Package dispatch fires the external search and email generation workflows.
// The workflows run elsewhere; callers reload after Result.RefreshAfter.
package dispatch

import (
	"context"
	"leadgen/pkg/domain"
	"time"
)

// Result is what a trigger returns to the user.
type Result struct {
	Webhook string `json:"webhook"`
	Message string `json:"message"`
	// RefreshAfter is how long clients should wait before reloading.
	RefreshAfter time.Duration `json:"-"`
}

// Preview lists the keyword and location combinations a search would run.
type Preview struct {
	Combinations []domain.SearchCombination `json:"combinations"`
	// New counts the combinations never searched before.
	New int `json:"new"`
}

//go:generate mockgen -package mockdispatch -source=interface.go -destination=mock/mockdispatch.go *
type Dispatcher interface {
	TriggerSearch(ctx context.Context, session domain.Session, repeat bool) (Result, error)
	GenerateEmails(ctx context.Context, session domain.Session, leadIDs []domain.LeadID) (Result, error)
	Preview(ctx context.Context, session domain.Session) (Preview, error)
}
