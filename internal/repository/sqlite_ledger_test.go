package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/moneybae/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepo_CreateGetUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLedgerRepo(db)
	ctx := context.Background()

	ledger := testutil.NewTestLedger("January", testutil.Date(2024, 1, 1), "1234.56")
	require.NoError(t, repo.Create(ctx, ledger))

	ledger.Name = "Jan 2024"
	ledger.BankBalance = testutil.D("99.01")
	require.NoError(t, repo.Update(ctx, ledger))

	fetched, err := repo.GetByID(ctx, ledger.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jan 2024", fetched.Name)
	assert.Equal(t, testutil.Date(2024, 1, 1), fetched.Date)
	assert.True(t, fetched.BankBalance.Equal(testutil.D("99.01")))
}

func TestLedgerRepo_ListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLedgerRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestLedger("Jan", testutil.Date(2024, 1, 1), "0")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestLedger("Mar", testutil.Date(2024, 3, 1), "0")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestLedger("Feb", testutil.Date(2024, 2, 1), "0")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Mar", "Feb", "Jan"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestLedgerBillRepo_ListWithBillNames(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	bills := NewSQLiteBillRepo(db)
	ledgers := NewSQLiteLedgerRepo(db)
	repo := NewSQLiteLedgerBillRepo(db)

	ledger := testutil.NewTestLedger("Jan", testutil.Date(2024, 1, 1), "0")
	require.NoError(t, ledgers.Create(ctx, ledger))
	rent := testutil.NewTestBill("Rent", "1000")
	power := testutil.NewTestBill("Power", "80")
	misc := testutil.NewTestBill("Misc", "5")
	require.NoError(t, bills.Create(ctx, rent))
	require.NoError(t, bills.Create(ctx, power))
	require.NoError(t, bills.Create(ctx, misc))

	require.NoError(t, repo.Create(ctx, testutil.NewTestLedgerBill(ledger.ID, misc.ID, "5")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestLedgerBill(ledger.ID, power.ID, "80",
		testutil.WithLedgerBillDueDate(testutil.Date(2024, 1, 20)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestLedgerBill(ledger.ID, rent.ID, "1000",
		testutil.WithLedgerBillDueDate(testutil.Date(2024, 1, 1)), testutil.WithPaid())))

	lines, err := repo.ListByLedger(ctx, ledger.ID)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "Rent", lines[0].BillName)
	assert.True(t, lines[0].IsPaid)
	assert.Equal(t, "Power", lines[1].BillName)
	assert.Equal(t, "Misc", lines[2].BillName, "undated bills sort last")
	assert.Nil(t, lines[2].DueDate)
}

func TestLedgerBillRepo_ListAvailableBills(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	bills := NewSQLiteBillRepo(db)
	ledgers := NewSQLiteLedgerRepo(db)
	repo := NewSQLiteLedgerBillRepo(db)

	ledger := testutil.NewTestLedger("Jan", testutil.Date(2024, 1, 1), "0")
	require.NoError(t, ledgers.Create(ctx, ledger))
	onLedger := testutil.NewTestBill("Rent", "1000")
	offLedger := testutil.NewTestBill("Power", "80")
	require.NoError(t, bills.Create(ctx, onLedger))
	require.NoError(t, bills.Create(ctx, offLedger))
	require.NoError(t, repo.Create(ctx, testutil.NewTestLedgerBill(ledger.ID, onLedger.ID, "1000")))

	available, err := repo.ListAvailableBills(ctx, ledger.ID)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, offLedger.ID, available[0].ID)
}

func TestLedgerBillRepo_DuplicateBillRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	bills := NewSQLiteBillRepo(db)
	ledgers := NewSQLiteLedgerRepo(db)
	repo := NewSQLiteLedgerBillRepo(db)

	ledger := testutil.NewTestLedger("Jan", testutil.Date(2024, 1, 1), "0")
	require.NoError(t, ledgers.Create(ctx, ledger))
	bill := testutil.NewTestBill("Rent", "1000")
	require.NoError(t, bills.Create(ctx, bill))

	require.NoError(t, repo.Create(ctx, testutil.NewTestLedgerBill(ledger.ID, bill.ID, "1000")))
	assert.Error(t, repo.Create(ctx, testutil.NewTestLedgerBill(ledger.ID, bill.ID, "1000")))
}

func TestLedgerBillRepo_SetPaid(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	bills := NewSQLiteBillRepo(db)
	ledgers := NewSQLiteLedgerRepo(db)
	repo := NewSQLiteLedgerBillRepo(db)

	ledger := testutil.NewTestLedger("Jan", testutil.Date(2024, 1, 1), "0")
	require.NoError(t, ledgers.Create(ctx, ledger))
	bill := testutil.NewTestBill("Rent", "1000")
	require.NoError(t, bills.Create(ctx, bill))
	lb := testutil.NewTestLedgerBill(ledger.ID, bill.ID, "1000")
	require.NoError(t, repo.Create(ctx, lb))

	require.NoError(t, repo.SetPaid(ctx, lb.ID, true))
	fetched, err := repo.GetByID(ctx, lb.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsPaid)

	assert.ErrorIs(t, repo.SetPaid(ctx, "missing", true), ErrNotFound)
}

func TestCascadeDelete_LedgerToLedgerBills(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	bills := NewSQLiteBillRepo(db)
	ledgers := NewSQLiteLedgerRepo(db)
	repo := NewSQLiteLedgerBillRepo(db)

	ledger := testutil.NewTestLedger("Jan", testutil.Date(2024, 1, 1), "0")
	require.NoError(t, ledgers.Create(ctx, ledger))
	bill := testutil.NewTestBill("Rent", "1000")
	require.NoError(t, bills.Create(ctx, bill))
	lb := testutil.NewTestLedgerBill(ledger.ID, bill.ID, "1000")
	require.NoError(t, repo.Create(ctx, lb))

	require.NoError(t, ledgers.Delete(ctx, ledger.ID))

	_, err := repo.GetByID(ctx, lb.ID)
	assert.ErrorIs(t, err, ErrNotFound, "ledger bill should be cascade-deleted with its ledger")
	_, err = bills.GetByID(ctx, bill.ID)
	assert.NoError(t, err, "bill template survives")
}

func TestCascadeDelete_BillToLedgerBills(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	bills := NewSQLiteBillRepo(db)
	ledgers := NewSQLiteLedgerRepo(db)
	repo := NewSQLiteLedgerBillRepo(db)

	ledger := testutil.NewTestLedger("Jan", testutil.Date(2024, 1, 1), "0")
	require.NoError(t, ledgers.Create(ctx, ledger))
	bill := testutil.NewTestBill("Rent", "1000")
	require.NoError(t, bills.Create(ctx, bill))
	lb := testutil.NewTestLedgerBill(ledger.ID, bill.ID, "1000")
	require.NoError(t, repo.Create(ctx, lb))

	require.NoError(t, bills.Delete(ctx, bill.ID))

	lines, err := repo.ListByLedger(ctx, ledger.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
