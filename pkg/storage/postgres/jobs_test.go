package postgres_test

import (
	"context"
	"database/sql"
	"leadgen/internal/drafts"
	"leadgen/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_AddJob_WithinTransaction_UsesTxPath(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()

	// Start a transaction to force the *sql.Tx code path in AddJob.
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	_, err = txStorage.AddJob(ctx, drafts.SweepJobArgs{}, nil)
	require.NoError(t, err)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&drafts.SweepJobArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTransaction_UsesDBPath(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()

	_, err := pg.AddJob(ctx, drafts.SweepJobArgs{}, nil)
	require.NoError(t, err)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&drafts.SweepJobArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_UniqueSweepSkipsDuplicate(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()

	inserted, err := pg.AddJob(ctx, drafts.SweepJobArgs{}, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, drafts.SweepJobArgs{}, nil)
	require.NoError(t, err)
	require.False(t, inserted, "second sweep within the unique period is skipped")
}

func TestPgSQL_AddJob_ExplicitOpts(t *testing.T) {
	pg := setupTestDB(t)

	inserted, err := pg.AddJob(context.Background(), drafts.SweepJobArgs{}, &river.InsertOpts{Queue: river.QueueDefault})
	require.NoError(t, err)
	require.True(t, inserted)
}
