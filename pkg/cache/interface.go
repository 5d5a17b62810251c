// Package cache defines the short-lived shared state the service keeps outside
// PostgreSQL: location lookups and duplicate-request locks.
//
//go:generate mockgen -package mockcache -source=interface.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"leadgen/pkg/domain"
	"time"
)

// LocationCache caches reference location rows by code.
type LocationCache interface {
	// Locations returns the cached locations among codes. Codes that are not
	// cached are absent from the result.
	Locations(ctx context.Context, codes []int) (map[int]domain.Location, error)
	// StoreLocations caches the given locations for ttl.
	StoreLocations(ctx context.Context, locations []domain.Location, ttl time.Duration) error
}

// Locker hands out short, self-expiring locks.
type Locker interface {
	// Acquire takes the lock for key if nobody holds it. It reports whether the
	// lock was acquired.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release drops the lock for key.
	Release(ctx context.Context, key string) error
}

// Cache groups every cache capability.
type Cache interface {
	LocationCache
	Locker

	Close() error
}
