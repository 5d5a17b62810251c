package postgres_test

import (
	"context"
	"database/sql"
	"leadgen/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Drafts_ListAndExport(t *testing.T) {
	pg := setupTestDB(t)

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	account := seedAccount(t, db, "sub-1", "A-1", nil)
	other := seedAccount(t, db, "sub-2", "A-2", nil)
	first := seedDraft(t, db, account, 1, nil)
	second := seedDraft(t, db, account, 2, nil)
	foreign := seedDraft(t, db, other, 3, nil)

	pending, err := pg.AccountDrafts(ctx, account, false)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	now := time.Now().UTC().Truncate(time.Second)
	exported, err := pg.MarkDraftsExported(ctx, account, []domain.DraftID{first, foreign}, now)
	require.NoError(t, err)
	require.Len(t, exported, 1)
	require.Equal(t, first, exported[0].ID)
	require.True(t, exported[0].IsExported())

	// already exported drafts are not returned again
	exported, err = pg.MarkDraftsExported(ctx, account, []domain.DraftID{first}, now)
	require.NoError(t, err)
	require.Empty(t, exported)

	archived, err := pg.AccountDrafts(ctx, account, true)
	require.NoError(t, err)
	require.Len(t, archived, 1)

	pending, err = pg.AccountDrafts(ctx, account, false)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, second, pending[0].ID)
}

func TestPgSQL_DeleteExportedDraftsBefore(t *testing.T) {
	pg := setupTestDB(t)

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	account := seedAccount(t, db, "sub-1", "A-1", nil)
	old := time.Now().Add(-40 * 24 * time.Hour)
	recent := time.Now().Add(-24 * time.Hour)
	seedDraft(t, db, account, 1, &old)
	seedDraft(t, db, account, 2, &recent)
	seedDraft(t, db, account, 3, nil)

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	n, err := pg.DeleteExportedDraftsBefore(ctx, cutoff)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = pg.DeleteExportedDraftsBefore(ctx, cutoff)
	require.NoError(t, err)
	require.Zero(t, n)

	pending, err := pg.AccountDrafts(ctx, account, false)
	require.NoError(t, err)
	require.Len(t, pending, 1)
}
