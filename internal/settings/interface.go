// Package settings validates, normalizes and stores an account's search
// settings.
package settings

import (
	"context"
	"leadgen/pkg/domain"
)

// LocationValidation is the outcome of checking a location list.
type LocationValidation struct {
	// Valid holds the known locations in input order.
	Valid []domain.Location `json:"valid"`
	// Invalid holds tokens that are not numeric or not known codes.
	Invalid []string `json:"invalid"`
}

// OK reports whether every token was a known location.
func (v LocationValidation) OK() bool { return len(v.Invalid) == 0 }

//go:generate mockgen -package mocksettings -source=interface.go -destination=mock/mocksettings.go *
type Service interface {
	Get(ctx context.Context, session domain.Session) (domain.SearchSettings, error)
	Update(ctx context.Context, session domain.Session, settings domain.SearchSettings) (domain.SearchSettings, error)
	ValidateLocations(ctx context.Context, raw string) (LocationValidation, error)
}
