package dispatch

import (
	"context"
	"fmt"
	"leadgen/internal/config"
	"leadgen/internal/settings"
	"leadgen/pkg/cache"
	"leadgen/pkg/domain"
	"leadgen/pkg/logger"
	"leadgen/pkg/metrics"
	"leadgen/pkg/serrors"
	"leadgen/pkg/storage"
	"leadgen/pkg/webhook"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configure the dispatcher.
type Options struct {
	// Timeout bounds a single webhook call.
	Timeout time.Duration
	// RefreshAfter is returned with every successful trigger.
	RefreshAfter time.Duration
	// DedupeWindow is how long a second identical trigger is rejected.
	DedupeWindow time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Timeout:      cfg.Webhooks.Timeout,
		RefreshAfter: cfg.Webhooks.RefreshAfter,
		DedupeWindow: cfg.Webhooks.DedupeWindow,
	}
}

type dispatcher struct {
	options Options
	storage storage.Storage
	locker  cache.Locker
	client  webhook.Client
}

// New creates a Dispatcher.
func New(storage storage.Storage, locker cache.Locker, client webhook.Client, options Options) Dispatcher {
	return &dispatcher{
		options: options,
		storage: storage,
		locker:  locker,
		client:  client,
	}
}

func (d dispatcher) TriggerSearch(ctx context.Context, session domain.Session, repeat bool) (Result, error) {
	if !session.HasAccount() {
		return Result{}, serrors.With(serrors.ErrNotFound, "account not found")
	}

	preview, err := d.Preview(ctx, session)
	if err != nil {
		return Result{}, err
	}
	if len(preview.Combinations) == 0 {
		return Result{}, serrors.With(serrors.ErrBadRequest, "add keywords and locations before searching")
	}

	res, err := d.fire(ctx, session, webhook.Search, webhook.SearchPayload{Repeat: repeat})
	if err != nil {
		return Result{}, err
	}

	if !repeat && preview.New > 0 {
		fresh := make([]domain.SearchCombination, 0, preview.New)
		for _, c := range preview.Combinations {
			if !c.Searched {
				fresh = append(fresh, c)
			}
		}
		// the search already started; a failed record only affects the next preview
		if err := d.storage.RecordSearches(ctx, session.AccountID, fresh); err != nil {
			logger.Warn(ctx, "could not record searched combinations", zap.Error(err))
		}
	}

	return res, nil
}

func (d dispatcher) GenerateEmails(ctx context.Context,
	session domain.Session,
	leadIDs []domain.LeadID,
) (Result, error) {
	if !session.HasAccount() {
		return Result{}, serrors.With(serrors.ErrNotFound, "account not found")
	}
	if len(leadIDs) == 0 {
		return Result{}, serrors.With(serrors.ErrBadRequest, "select at least one lead")
	}

	return d.fire(ctx, session, webhook.Emails, webhook.EmailsPayload{LeadIDs: leadIDs})
}

// Preview combines every saved keyword with every saved location and marks
// the combinations the account already searched.
func (d dispatcher) Preview(ctx context.Context, session domain.Session) (Preview, error) {
	if !session.HasAccount() {
		return Preview{}, serrors.With(serrors.ErrNotFound, "account not found")
	}

	var (
		acc      *domain.Account
		searched []domain.SearchCombination
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		acc, err = d.storage.AccountByID(gctx, session.AccountID)
		if err != nil {
			return fmt.Errorf("could not load account: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		var err error
		searched, err = d.storage.SearchedCombinations(gctx, session.AccountID)
		if err != nil {
			return fmt.Errorf("could not load searches: %w", err)
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return Preview{}, serrors.Wrap(serrors.ErrInternal, err, "could not build search preview")
	}
	if acc == nil {
		return Preview{}, serrors.With(serrors.ErrNotFound, "account not found")
	}

	return Combine(acc.Settings, searched), nil
}

// Combine builds the keyword by location grid of s, keywords outermost.
// Location tokens that are not numbers are skipped.
func Combine(s domain.SearchSettings, searched []domain.SearchCombination) Preview {
	done := make(map[domain.SearchCombination]struct{}, len(searched))
	for _, c := range searched {
		done[domain.SearchCombination{Keyword: c.Keyword, LocationCode: c.LocationCode}] = struct{}{}
	}

	var codes []int
	for _, token := range settings.Tokens(domain.FieldLocations, s.Get(domain.FieldLocations)) {
		if code, err := strconv.Atoi(token); err == nil {
			codes = append(codes, code)
		}
	}

	out := Preview{Combinations: []domain.SearchCombination{}}
	for _, kw := range settings.Tokens(domain.FieldKeywords, s.Get(domain.FieldKeywords)) {
		for _, code := range codes {
			c := domain.SearchCombination{Keyword: kw, LocationCode: code}
			if _, ok := done[c]; ok {
				c.Searched = true
			} else {
				out.New++
			}
			out.Combinations = append(out.Combinations, c)
		}
	}

	return out
}

// fire calls a webhook under the account's duplicate-click lock. The lock is
// kept on success so the window still applies, and dropped on failure so the
// user can retry right away.
func (d dispatcher) fire(ctx context.Context,
	session domain.Session,
	name webhook.Name,
	payload webhook.Payload,
) (Result, error) {
	ctx = logger.WithFields(ctx, zap.String("webhook", string(name)))
	key := string(name) + ":" + session.AccountID.String()

	if d.locker != nil {
		ok, err := d.locker.Acquire(ctx, key, d.options.DedupeWindow)
		switch {
		case err != nil:
			logger.Warn(ctx, "could not take trigger lock, dispatching anyway", zap.Error(err))
		case !ok:
			metrics.RecordWebhook(string(name), "duplicate", 0)

			return Result{}, serrors.With(serrors.ErrConflict, "this request was just sent, please wait a moment")
		}
	}

	callCtx := ctx
	if d.options.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, d.options.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := d.client.Call(callCtx, name, session.AccountNumber, payload)
	if err != nil {
		metrics.RecordWebhook(string(name), "failure", time.Since(start))
		logger.Error(ctx, "webhook call failed",
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		if d.locker != nil {
			if rerr := d.locker.Release(ctx, key); rerr != nil {
				logger.Warn(ctx, "could not release trigger lock", zap.Error(rerr))
			}
		}

		return Result{}, serrors.Wrap(serrors.ErrUpstream, err, "%s webhook failed", name)
	}

	metrics.RecordWebhook(string(name), "success", time.Since(start))
	logger.Info(ctx, "webhook dispatched", zap.Int("status", resp.StatusCode))

	return Result{
		Webhook:      string(name),
		Message:      resp.Message,
		RefreshAfter: d.options.RefreshAfter,
	}, nil
}
