package storage

import (
	"context"
	"leadgen/pkg/domain"
	"time"
)

// DraftStorage covers generated email drafts.
type DraftStorage interface {
	// AccountDrafts lists the account's drafts, newest first. exported selects
	// archived drafts (exported IS NOT NULL) instead of pending ones.
	AccountDrafts(ctx context.Context, accountID domain.AccountID, exported bool) ([]domain.EmailDraft, error)
	// MarkDraftsExported archives the given pending drafts of the account and
	// returns the rows that changed. Already exported drafts are left untouched.
	MarkDraftsExported(ctx context.Context,
		accountID domain.AccountID,
		IDs []domain.DraftID,
		at time.Time) ([]domain.EmailDraft, error)
	// DeleteExportedDraftsBefore deletes drafts exported before the given time
	// and returns how many were removed. Pending drafts are never deleted.
	DeleteExportedDraftsBefore(ctx context.Context, before time.Time) (int64, error)
}
