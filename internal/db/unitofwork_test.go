package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertBill(ctx context.Context, tx db.DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO bills (id, name, amount, created_at, updated_at) VALUES (?, ?, '10', 'now', 'now')`,
		id, name)
	return err
}

func billCount(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM bills`).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertBill(ctx, tx, "b1", "Rent"); err != nil {
			return err
		}
		return insertBill(ctx, tx, "b2", "Power")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, billCount(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertBill(ctx, tx, "b1", "Rent"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, billCount(t, database), "insert should be rolled back")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertBill(ctx, tx, "b1", "Rent")
			panic("boom")
		})
	})
	assert.Zero(t, billCount(t, database), "insert should be rolled back after panic")
}
