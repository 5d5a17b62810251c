package leads

import (
	"leadgen/internal/config"
	"leadgen/pkg/storage"
	"slices"
	"time"
)

// AllowedPageSizes are the page sizes a client may request.
var AllowedPageSizes = []int{10, 25, 50, 100} //nolint: gochecknoglobals

// Options configure the lead service.
type Options struct {
	// DefaultPageSize is used when the requested size is not allowed.
	DefaultPageSize int
	// Now returns the current time. It stamps exclusions.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultPageSize: cfg.Leads.DefaultPageSize,
		Now:             time.Now,
	}
}

type service struct {
	options Options
	storage storage.Storage
}

// New creates a lead Service backed by the given storage.
func New(storage storage.Storage, options Options) Service {
	if !slices.Contains(AllowedPageSizes, options.DefaultPageSize) {
		options.DefaultPageSize = 50
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &service{
		options: options,
		storage: storage,
	}
}
