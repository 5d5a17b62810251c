package postgres

import (
	"context"
	"fmt"
	"leadgen/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// LeadCandidates runs the association listing, the valid email lookup and the
// drafted lookup as a single query.
func (p *PgSQL) LeadCandidates(ctx context.Context,
	accountID domain.AccountID,
	excluded bool,
) ([]domain.LeadCandidate, error) {
	ds := p.Builder.From(goqu.T(tableUserLeads).As("ul")).
		LeftJoin(goqu.T(tableLeads).As("l"), goqu.On(goqu.I("l.id").Eq(goqu.I("ul.lead_id")))).
		Select(
			goqu.I("ul.id"),
			goqu.I("ul.account_id"),
			goqu.I("ul.lead_id"),
			goqu.I("ul.excluded"),
			goqu.I("ul.emailed"),
			goqu.I("ul.created_at"),
			goqu.L(`COALESCE(btrim(l.email) <> '' AND lower(btrim(l.email)) <> ?, FALSE)`,
				domain.EmailNotFound).As("has_valid_email"),
			goqu.L(`EXISTS (SELECT 1 FROM `+tableDrafts+` d WHERE d.account_id = ul.account_id AND d.lead_id = ul.lead_id)`).
				As("drafted"),
		).
		Where(goqu.I("ul.account_id").Eq(uuid.UUID(accountID)))

	if excluded {
		ds = ds.Where(goqu.I("ul.excluded").IsNotNull()).
			Order(goqu.I("ul.excluded").Desc(), goqu.I("ul.id").Desc())
	} else {
		ds = ds.Where(goqu.I("ul.excluded").IsNull()).
			Order(goqu.I("ul.id").Desc())
	}

	var rows []PgLeadCandidate
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get lead candidates from pg: %w", err)
	}

	out := make([]domain.LeadCandidate, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) LeadsByIDs(ctx context.Context, IDs []domain.LeadID) ([]domain.Lead, error) {
	if len(IDs) == 0 {
		return nil, nil
	}

	var rows []PgLead
	if err := p.Builder.From(tableLeads).
		Where(goqu.I("id").In(leadIDsToInt64(IDs))).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get leads from pg: %w", err)
	}

	out := make([]domain.Lead, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) SetLeadsExcluded(ctx context.Context,
	accountID domain.AccountID,
	IDs []domain.LeadID,
	at time.Time,
) (int64, error) {
	if len(IDs) == 0 {
		return 0, nil
	}

	rec := goqu.Record{"excluded": goqu.L("NULL")}
	if !at.IsZero() {
		rec["excluded"] = at
	}

	res, err := p.Builder.Update(tableUserLeads).
		Set(rec).
		Where(
			goqu.I("account_id").Eq(uuid.UUID(accountID)),
			goqu.I("lead_id").In(leadIDsToInt64(IDs)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not update lead exclusion in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected, nil
}
