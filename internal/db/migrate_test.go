package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	v, dirty, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
	assert.False(t, dirty)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"bills", "incomes", "ledgers", "ledger_bills", "ptos", "holiday_hours", "pto_plans"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_incomes_ledger",
		"idx_incomes_date",
		"idx_ledger_bills_ledger",
		"idx_holiday_hours_pto",
		"idx_pto_plans_pto",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestOpenDB_ForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO holiday_hours (id, pto_id, date, name, hours, created_at)
		VALUES ('h1', 'missing', '2024-01-01', 'New Year', '8', '2024-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestOpenDB_PlanStatusConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO ptos (id, year, created_at, updated_at)
		VALUES ('p1', 2024, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO pto_plans (id, pto_id, start_date, end_date, name, status, created_at, updated_at)
		VALUES ('x', 'p1', '2024-01-01', '2024-01-02', 'Trip', 'Someday', 'a', 'b')`)
	assert.Error(t, err)
}
