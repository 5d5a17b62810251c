// Package drafts lists, exports and expires generated email drafts.
package drafts

import (
	"context"
	"leadgen/pkg/domain"
)

//go:generate mockgen -package mockdrafts -source=interface.go -destination=mock/mockdrafts.go *
type Service interface {
	// List returns pending drafts, or archived ones when archived is true.
	List(ctx context.Context, session domain.Session, archived bool) ([]domain.EmailDraft, error)
	// Export archives the given pending drafts and returns them.
	Export(ctx context.Context, session domain.Session, draftIDs []domain.DraftID) ([]domain.EmailDraft, error)
	// Sweep deletes drafts exported longer ago than the retention period.
	Sweep(ctx context.Context) (int64, error)
	// Schedule queues a sweep on the job queue.
	Schedule(ctx context.Context) (bool, error)
}
