package leads

import (
	"context"
	"fmt"
	"leadgen/pkg/domain"
	"leadgen/pkg/logger"
	"leadgen/pkg/metrics"
	"leadgen/pkg/serrors"
	"leadgen/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Exclude hides the given leads from the account's active view and adds
// categories to the account's excluded categories, all in one transaction.
func (s service) Exclude(ctx context.Context,
	session domain.Session,
	leadIDs []domain.LeadID,
	categories domain.CategorySet,
) (int64, error) {
	if !session.HasAccount() || len(leadIDs) == 0 {
		return 0, nil
	}

	var updated int64
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		// lock the account row first so concurrent exclusions merge in order
		if !categories.IsEmpty() {
			current, err := tx.LockExcludedCategories(ctx, session.AccountID)
			if err != nil {
				return fmt.Errorf("could not read excluded categories: %w", err)
			}

			merged := current.Merge(categories)
			if merged.Len() != current.Len() {
				if err := tx.SetExcludedCategories(ctx, session.AccountID, merged); err != nil {
					return fmt.Errorf("could not store excluded categories: %w", err)
				}
			}
		}

		n, err := tx.SetLeadsExcluded(ctx, session.AccountID, leadIDs, s.options.Now())
		if err != nil {
			return fmt.Errorf("could not exclude leads: %w", err)
		}
		updated = n

		return nil
	}); err != nil {
		return 0, serrors.Wrap(serrors.ErrInternal, err, "could not exclude leads")
	}

	metrics.LeadExclusions.WithLabelValues("exclude").Add(float64(updated))
	logger.Info(ctx, "leads excluded",
		zap.Int64("updated", updated),
		zap.Strings("categories", categories.Items()))

	return updated, nil
}

// Restore moves leads back to the active view. Excluded categories are left
// untouched. Restoring an active lead is a no-op that still succeeds.
func (s service) Restore(ctx context.Context, session domain.Session, leadIDs []domain.LeadID) (int64, error) {
	if !session.HasAccount() || len(leadIDs) == 0 {
		return 0, nil
	}

	n, err := s.storage.SetLeadsExcluded(ctx, session.AccountID, leadIDs, time.Time{})
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrInternal, err, "could not restore leads")
	}

	metrics.LeadExclusions.WithLabelValues("restore").Add(float64(n))

	return n, nil
}

// SelectedCategories collects the categories of the selected leads in
// selection order, for pre-filling the exclusion dialog.
func (s service) SelectedCategories(ctx context.Context,
	session domain.Session,
	leadIDs []domain.LeadID,
) (domain.CategorySet, error) {
	out := domain.NewCategorySet()
	if !session.HasAccount() || len(leadIDs) == 0 {
		return out, nil
	}

	leads, err := s.storage.LeadsByIDs(ctx, leadIDs)
	if err != nil {
		return out, serrors.Wrap(serrors.ErrInternal, err, "could not load selected leads")
	}

	byID := make(map[domain.LeadID]domain.Lead, len(leads))
	for _, l := range leads {
		byID[l.ID] = l
	}
	for _, id := range leadIDs {
		if l, ok := byID[id]; ok {
			out = out.Merge(l.Categories)
		}
	}

	return out, nil
}

// ExclusionCategories combines the categories picked in the exclusion dialog
// with the free-form comma separated input. The free-form input must match
// the lowercase comma separated format.
func ExclusionCategories(selected []string, custom string) (domain.CategorySet, error) {
	out := domain.NewCategorySet()
	for _, c := range selected {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if strings.ContainsAny(c, ", \t\n") {
			return out, serrors.With(serrors.ErrBadRequest, "category %q must be a single tag", c)
		}
		out.Add(c)
	}

	if !domain.ValidateCustomCategories(custom) {
		return out, serrors.With(serrors.ErrBadRequest,
			"custom categories must be lowercase letters or underscores separated by commas")
	}

	return out.Merge(domain.ParseCommaSeparated(custom)), nil
}
