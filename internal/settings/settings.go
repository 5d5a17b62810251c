package settings

import (
	"context"
	"fmt"
	"leadgen/internal/config"
	"leadgen/pkg/cache"
	"leadgen/pkg/domain"
	"leadgen/pkg/logger"
	"leadgen/pkg/serrors"
	"leadgen/pkg/storage"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configure the settings service.
type Options struct {
	// LocationTTL is how long a known location stays cached.
	LocationTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LocationTTL: cfg.Redis.LocationTTL,
	}
}

type service struct {
	options Options
	storage storage.Storage
	cache   cache.LocationCache
}

// New creates a settings Service. Location lookups go through cache first.
func New(storage storage.Storage, cache cache.LocationCache, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		cache:   cache,
	}
}

func (s service) Get(ctx context.Context, session domain.Session) (domain.SearchSettings, error) {
	if !session.HasAccount() {
		return domain.SearchSettings{}, serrors.With(serrors.ErrNotFound, "account not found")
	}

	acc, err := s.storage.AccountByID(ctx, session.AccountID)
	if err != nil {
		return domain.SearchSettings{}, serrors.Wrap(serrors.ErrInternal, err, "could not load settings")
	}
	if acc == nil {
		return domain.SearchSettings{}, serrors.With(serrors.ErrNotFound, "account not found")
	}

	return acc.Settings, nil
}

// Update normalizes and validates the settings before storing them. The
// stored values are returned.
func (s service) Update(ctx context.Context,
	session domain.Session,
	settings domain.SearchSettings,
) (domain.SearchSettings, error) {
	if !session.HasAccount() {
		return domain.SearchSettings{}, serrors.With(serrors.ErrNotFound, "account not found")
	}

	normalized := NormalizeAll(settings)

	for _, f := range []domain.SettingsField{domain.FieldCategories, domain.FieldExcludedCategories} {
		if invalid := domain.InvalidCategoryTokens(normalized.Get(f)); len(invalid) > 0 {
			return domain.SearchSettings{}, serrors.With(serrors.ErrBadRequest,
				"%s may only contain letters and underscores: %s", f, strings.Join(invalid, ", "))
		}
	}

	if locs := normalized.Get(domain.FieldLocations); locs != "" {
		v, err := s.ValidateLocations(ctx, locs)
		if err != nil {
			return domain.SearchSettings{}, err
		}
		if !v.OK() {
			return domain.SearchSettings{}, serrors.With(serrors.ErrBadRequest,
				"unknown locations: %s", strings.Join(v.Invalid, ", "))
		}
	}

	acc, err := s.storage.UpdateSearchSettings(ctx, session.AccountID, normalized)
	if err != nil {
		return domain.SearchSettings{}, serrors.Wrap(serrors.ErrInternal, err, "could not save settings")
	}
	if acc == nil {
		return domain.SearchSettings{}, serrors.With(serrors.ErrNotFound, "account not found")
	}

	return acc.Settings, nil
}

// ValidateLocations checks every token of a comma separated location list
// against the reference table.
func (s service) ValidateLocations(ctx context.Context, raw string) (LocationValidation, error) {
	out := LocationValidation{Valid: []domain.Location{}, Invalid: []string{}}

	tokens := Tokens(domain.FieldLocations, raw)
	codes := make([]int, 0, len(tokens))
	for _, token := range tokens {
		code, err := strconv.Atoi(token)
		if err != nil || code <= 0 {
			continue
		}
		codes = append(codes, code)
	}

	known, err := s.lookup(ctx, codes)
	if err != nil {
		return out, err
	}

	for _, token := range tokens {
		code, err := strconv.Atoi(token)
		loc, ok := known[code]
		if err != nil || !ok {
			out.Invalid = append(out.Invalid, token)

			continue
		}
		out.Valid = append(out.Valid, loc)
	}

	return out, nil
}

// lookup resolves codes from the cache and falls back to the database for
// the misses. Cache failures are logged and treated as misses.
func (s service) lookup(ctx context.Context, codes []int) (map[int]domain.Location, error) {
	known := make(map[int]domain.Location, len(codes))
	if len(codes) == 0 {
		return known, nil
	}

	if s.cache != nil {
		cached, err := s.cache.Locations(ctx, codes)
		if err != nil {
			logger.Warn(ctx, "could not read location cache", zap.Error(err))
		}
		for code, loc := range cached {
			known[code] = loc
		}
	}

	var missing []int
	for _, code := range codes {
		if _, ok := known[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) == 0 {
		return known, nil
	}

	found, err := s.storage.LocationsByCodes(ctx, missing)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, fmt.Errorf("lookup %d codes: %w", len(missing), err),
			"could not validate locations")
	}
	for _, loc := range found {
		known[loc.Code] = loc
	}

	if s.cache != nil && len(found) > 0 {
		if err := s.cache.StoreLocations(ctx, found, s.options.LocationTTL); err != nil {
			logger.Warn(ctx, "could not fill location cache", zap.Error(err))
		}
	}

	return known, nil
}
