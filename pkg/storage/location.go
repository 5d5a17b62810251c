package storage

import (
	"context"
	"leadgen/pkg/domain"
)

// LocationStorage reads the location reference table.
type LocationStorage interface {
	// LocationsByCodes returns the known locations among codes.
	LocationsByCodes(ctx context.Context, codes []int) ([]domain.Location, error)
}

// SearchStorage tracks which keyword and location combinations an account
// already searched.
type SearchStorage interface {
	// SearchedCombinations lists the combinations the account already ran.
	SearchedCombinations(ctx context.Context, accountID domain.AccountID) ([]domain.SearchCombination, error)
	// RecordSearches stores combinations as searched. Existing ones are ignored.
	RecordSearches(ctx context.Context, accountID domain.AccountID, combinations []domain.SearchCombination) error
}
