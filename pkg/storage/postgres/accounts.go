package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"leadgen/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

func (p *PgSQL) AccountByIdentity(ctx context.Context, identityID string) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(tableAccounts).
		Where(goqu.I("identity_id").Eq(identityID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get account by identity from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AccountByID(ctx context.Context, ID domain.AccountID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(tableAccounts).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get account from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateSearchSettings writes all four settings columns at once. Callers
// normalize values beforehand; nil pointers become NULL.
func (p *PgSQL) UpdateSearchSettings(ctx context.Context,
	ID domain.AccountID,
	settings domain.SearchSettings,
) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.Update(tableAccounts).
		Set(goqu.Record{
			"serp_kw":      ptrNullString(settings.Keywords),
			"serp_loc":     ptrNullString(settings.Locations),
			"serp_cat":     ptrNullString(settings.Categories),
			"serp_exc_cat": ptrNullString(settings.ExcludedCategories),
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update search settings in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LockExcludedCategories(ctx context.Context, ID domain.AccountID) (domain.CategorySet, error) {
	var raw sql.NullString
	_, err := p.Builder.From(tableAccounts).
		Select("serp_exc_cat").
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		ForUpdate(exp.Wait).
		Executor().ScanValContext(ctx, &raw)
	if err != nil {
		return domain.CategorySet{}, fmt.Errorf("could not lock excluded categories in pg: %w", err)
	}

	return domain.ParseCommaSeparated(raw.String), nil
}

func (p *PgSQL) SetExcludedCategories(ctx context.Context, ID domain.AccountID, categories domain.CategorySet) error {
	value := sql.NullString{String: categories.CommaSeparated(), Valid: !categories.IsEmpty()}
	_, err := p.Builder.Update(tableAccounts).
		Set(goqu.Record{
			"serp_exc_cat": value,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set excluded categories in pg: %w", err)
	}

	return nil
}
