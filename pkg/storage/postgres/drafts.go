package postgres

import (
	"context"
	"fmt"
	"leadgen/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) AccountDrafts(ctx context.Context,
	accountID domain.AccountID,
	exported bool,
) ([]domain.EmailDraft, error) {
	w := []goqu.Expression{goqu.I("account_id").Eq(uuid.UUID(accountID))}
	if exported {
		w = append(w, goqu.I("exported").IsNotNull())
	} else {
		w = append(w, goqu.I("exported").IsNull())
	}

	var rows []PgDraft
	if err := p.Builder.From(tableDrafts).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get drafts from pg: %w", err)
	}

	return pgDraftsToDomain(rows), nil
}

func (p *PgSQL) MarkDraftsExported(ctx context.Context,
	accountID domain.AccountID,
	IDs []domain.DraftID,
	at time.Time,
) ([]domain.EmailDraft, error) {
	if len(IDs) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(IDs))
	for i, id := range IDs {
		ids[i] = int64(id)
	}

	var rows []PgDraft
	if err := p.Builder.Update(tableDrafts).
		Set(goqu.Record{"exported": at}).
		Where(
			goqu.I("account_id").Eq(uuid.UUID(accountID)),
			goqu.I("id").In(ids),
			goqu.I("exported").IsNull(),
		).
		Returning(&PgDraft{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not mark drafts exported in pg: %w", err)
	}

	return pgDraftsToDomain(rows), nil
}

func (p *PgSQL) DeleteExportedDraftsBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := p.Builder.Delete(tableDrafts).
		Where(
			goqu.I("exported").IsNotNull(),
			goqu.I("exported").Lt(before),
		).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete exported drafts in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected, nil
}

func pgDraftsToDomain(rows []PgDraft) []domain.EmailDraft {
	out := make([]domain.EmailDraft, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out
}
