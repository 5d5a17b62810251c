package storage

import (
	"context"
	"leadgen/pkg/domain"
)

// AccountStorage reads and updates account records. Accounts are created out
// of band; this service never inserts them.
type AccountStorage interface {
	// AccountByIdentity returns the account linked to the identity provider
	// subject, or nil when none exists.
	AccountByIdentity(ctx context.Context, identityID string) (*domain.Account, error)
	// AccountByID returns the account with the given ID, or nil when none exists.
	AccountByID(ctx context.Context, ID domain.AccountID) (*domain.Account, error)
	// UpdateSearchSettings replaces the four search settings columns and
	// returns the updated account, or nil when the account does not exist.
	// Nil fields are stored as NULL.
	UpdateSearchSettings(ctx context.Context,
		ID domain.AccountID,
		settings domain.SearchSettings) (*domain.Account, error)
	// LockExcludedCategories reads the account's excluded category set and
	// locks the row until the surrounding transaction ends. It must be called
	// inside a transaction.
	LockExcludedCategories(ctx context.Context, ID domain.AccountID) (domain.CategorySet, error)
	// SetExcludedCategories stores the excluded category set; an empty set is
	// stored as NULL.
	SetExcludedCategories(ctx context.Context, ID domain.AccountID, categories domain.CategorySet) error
}
