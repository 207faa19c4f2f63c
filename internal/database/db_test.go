package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nusahq/nusapp/internal/database/repository"
)

func openMigrated(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrationsWithDB(db, migrations))
	return db
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openMigrated(t)

	boom := errors.New("boom")
	err := WithTx(db, func(tx *sql.Tx) error {
		repo := repository.NewProductRepo(tx)
		require.NoError(t, repo.Upsert(ctx, repository.Product{ID: "p1", Name: "Bakso Urat", PriceIDR: 20000, Category: "Food"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	rows, err := repository.NewProductRepo(db).List(ctx, "")
	require.NoError(t, err)
	require.Empty(t, rows, "failed batch must leave nothing behind")

	require.NoError(t, WithTx(db, func(tx *sql.Tx) error {
		return repository.NewProductRepo(tx).Upsert(ctx, repository.Product{ID: "p1", Name: "Bakso Urat", PriceIDR: 20000, Category: "Food"})
	}))
	rows, err = repository.NewProductRepo(db).List(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestSeedDefaultsPopulatesAllGroups(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openMigrated(t)

	require.NoError(t, SeedDefaults(ctx, db))

	products, err := repository.NewProductRepo(db).List(ctx, "")
	require.NoError(t, err)
	require.Len(t, products, 6)

	n, err := repository.NewWalletTransactionRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	users, err := repository.NewDirectoryUserRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 5)
}
