package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"leadgen/pkg/storage"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// MigrationReport lists the versions applied by a Migrate call. Both slices
// are empty when the database was already up to date.
type MigrationReport struct {
	Schema []int64
	Queue  []int
}

// Migrate applies the goose migrations found in fsys (SQL files at its root)
// and then the job queue's own migrations.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS) (MigrationReport, error) {
	var report MigrationReport

	db, ok := p.DB.(*sql.DB)
	if !ok {
		return report, storage.ErrAlreadyInTx
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return report, fmt.Errorf("could not create goose provider: %w", err)
	}
	applied, err := provider.Up(ctx)
	if err != nil {
		return report, fmt.Errorf("could not apply schema migrations: %w", err)
	}
	for _, res := range applied {
		report.Schema = append(report.Schema, res.Source.Version)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return report, fmt.Errorf("could not create queue migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return report, fmt.Errorf("could not apply queue migrations: %w", err)
	}
	for _, v := range res.Versions {
		report.Queue = append(report.Queue, v.Version)
	}

	return report, nil
}
