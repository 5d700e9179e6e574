package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/moneybae/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomeRepo_ListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteIncomeRepo(db)
	ctx := context.Background()

	older := testutil.NewTestIncome(testutil.Date(2024, 1, 5), "2000")
	newer := testutil.NewTestIncome(testutil.Date(2024, 2, 5), "2100.25")
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.True(t, list[0].Amount.Equal(testutil.D("2100.25")))
	assert.Nil(t, list[0].LedgerID)
}

func TestIncomeRepo_ListUnassignedInMonth(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteIncomeRepo(db)
	ledgers := NewSQLiteLedgerRepo(db)
	ctx := context.Background()

	ledger := testutil.NewTestLedger("Jan", testutil.Date(2024, 1, 1), "0")
	require.NoError(t, ledgers.Create(ctx, ledger))

	inMonth := testutil.NewTestIncome(testutil.Date(2024, 1, 31), "100")
	assigned := testutil.NewTestIncome(testutil.Date(2024, 1, 15), "200", testutil.WithIncomeLedger(ledger.ID))
	nextMonth := testutil.NewTestIncome(testutil.Date(2024, 2, 1), "300")
	require.NoError(t, repo.Create(ctx, inMonth))
	require.NoError(t, repo.Create(ctx, assigned))
	require.NoError(t, repo.Create(ctx, nextMonth))

	list, err := repo.ListUnassigned(ctx, testutil.Date(2024, 1, 1), testutil.Date(2024, 1, 31))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, inMonth.ID, list[0].ID)

	byLedger, err := repo.ListByLedger(ctx, ledger.ID)
	require.NoError(t, err)
	require.Len(t, byLedger, 1)
	assert.Equal(t, assigned.ID, byLedger[0].ID)
}

func TestIncomeRepo_SetLedgerAndClear(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteIncomeRepo(db)
	ledgers := NewSQLiteLedgerRepo(db)
	ctx := context.Background()

	ledger := testutil.NewTestLedger("Jan", testutil.Date(2024, 1, 1), "0")
	require.NoError(t, ledgers.Create(ctx, ledger))
	inc := testutil.NewTestIncome(testutil.Date(2024, 1, 10), "50")
	require.NoError(t, repo.Create(ctx, inc))

	require.NoError(t, repo.SetLedger(ctx, inc.ID, &ledger.ID))
	fetched, err := repo.GetByID(ctx, inc.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.LedgerID)
	assert.Equal(t, ledger.ID, *fetched.LedgerID)

	require.NoError(t, repo.SetLedger(ctx, inc.ID, nil))
	fetched, err = repo.GetByID(ctx, inc.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.LedgerID)
}

func TestIncomeRepo_LedgerDeleteUnassigns(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteIncomeRepo(db)
	ledgers := NewSQLiteLedgerRepo(db)
	ctx := context.Background()

	ledger := testutil.NewTestLedger("Jan", testutil.Date(2024, 1, 1), "0")
	require.NoError(t, ledgers.Create(ctx, ledger))
	inc := testutil.NewTestIncome(testutil.Date(2024, 1, 10), "50", testutil.WithIncomeLedger(ledger.ID))
	require.NoError(t, repo.Create(ctx, inc))

	require.NoError(t, ledgers.Delete(ctx, ledger.ID))

	fetched, err := repo.GetByID(ctx, inc.ID)
	require.NoError(t, err, "income should survive ledger deletion")
	assert.Nil(t, fetched.LedgerID)
}
