package postgres

import (
	"context"
	"fmt"
	"leadgen/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) LocationsByCodes(ctx context.Context, codes []int) ([]domain.Location, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	var rows []PgLocation
	if err := p.Builder.From(tableLocations).
		Where(goqu.I("code").In(codes)).
		Order(goqu.I("code").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get locations from pg: %w", err)
	}

	out := make([]domain.Location, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) SearchedCombinations(ctx context.Context,
	accountID domain.AccountID,
) ([]domain.SearchCombination, error) {
	var rows []PgSearch
	if err := p.Builder.From(tableSearches).
		Select("account_id", "keyword", "location_code").
		Where(goqu.I("account_id").Eq(uuid.UUID(accountID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get searches from pg: %w", err)
	}

	out := make([]domain.SearchCombination, len(rows))
	for i, row := range rows {
		out[i] = domain.SearchCombination{Keyword: row.Keyword, LocationCode: row.LocationCode, Searched: true}
	}

	return out, nil
}

func (p *PgSQL) RecordSearches(ctx context.Context,
	accountID domain.AccountID,
	combinations []domain.SearchCombination,
) error {
	if len(combinations) == 0 {
		return nil
	}

	rows := make([]PgSearch, len(combinations))
	for i, c := range combinations {
		rows[i] = PgSearch{AccountID: uuid.UUID(accountID), Keyword: c.Keyword, LocationCode: c.LocationCode}
	}

	if _, err := p.Builder.Insert(tableSearches).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not record searches in pg: %w", err)
	}

	return nil
}
