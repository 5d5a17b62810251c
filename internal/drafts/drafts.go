package drafts

import (
	"context"
	"fmt"
	"leadgen/internal/config"
	"leadgen/pkg/domain"
	"leadgen/pkg/logger"
	"leadgen/pkg/metrics"
	"leadgen/pkg/serrors"
	"leadgen/pkg/storage"
	"time"

	"go.uber.org/zap"
)

// DefaultMaxAge is how long exported drafts are kept when not configured.
const DefaultMaxAge = 30 * 24 * time.Hour

// Options configure the drafts service.
type Options struct {
	// MaxAge is how long exported drafts are kept.
	MaxAge time.Duration
	// Now returns the current time.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAge: cfg.Retention.MaxAge,
		Now:    time.Now,
	}
}

type service struct {
	options Options
	storage storage.Storage
}

// New creates a drafts Service.
func New(storage storage.Storage, options Options) Service {
	if options.MaxAge <= 0 {
		options.MaxAge = DefaultMaxAge
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &service{
		options: options,
		storage: storage,
	}
}

func (s service) List(ctx context.Context, session domain.Session, archived bool) ([]domain.EmailDraft, error) {
	if !session.HasAccount() {
		return []domain.EmailDraft{}, nil
	}

	out, err := s.storage.AccountDrafts(ctx, session.AccountID, archived)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not load drafts")
	}
	if out == nil {
		out = []domain.EmailDraft{}
	}

	return out, nil
}

func (s service) Export(ctx context.Context,
	session domain.Session,
	draftIDs []domain.DraftID,
) ([]domain.EmailDraft, error) {
	if !session.HasAccount() || len(draftIDs) == 0 {
		return []domain.EmailDraft{}, nil
	}

	out, err := s.storage.MarkDraftsExported(ctx, session.AccountID, draftIDs, s.options.Now())
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not export drafts")
	}
	if out == nil {
		out = []domain.EmailDraft{}
	}

	return out, nil
}

func (s service) Sweep(ctx context.Context) (int64, error) {
	cutoff := s.options.Now().Add(-s.options.MaxAge)

	n, err := s.storage.DeleteExportedDraftsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("could not sweep exported drafts: %w", err)
	}

	metrics.DraftsSwept.Add(float64(n))
	logger.Info(ctx, "swept exported drafts", zap.Int64("deleted", n), zap.Time("cutoff", cutoff))

	return n, nil
}

func (s service) Schedule(ctx context.Context) (bool, error) {
	added, err := s.storage.AddJob(ctx, SweepJobArgs{}, nil)
	if err != nil {
		return false, fmt.Errorf("could not queue sweep: %w", err)
	}

	return added, nil
}
