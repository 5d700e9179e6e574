package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/service"
	"github.com/alexanderramin/moneybae/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func rawCell(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestLedger_WritesSheets(t *testing.T) {
	ledger := testutil.NewTestLedger("January", testutil.Date(2024, 1, 1), "500")
	due := testutil.Date(2024, 1, 15)
	bills := []domain.LedgerBillLine{
		{LedgerBill: domain.LedgerBill{Amount: testutil.D("1000"), DueDate: &due, IsPaid: true}, BillName: "Rent"},
		{LedgerBill: domain.LedgerBill{Amount: testutil.D("80.5")}, BillName: "Power"},
	}
	incomes := []*domain.Income{testutil.NewTestIncome(testutil.Date(2024, 1, 12), "2000", testutil.WithIncomeNotes("payday"))}
	detail := &service.LedgerDetail{
		Ledger:  ledger,
		Bills:   bills,
		Incomes: incomes,
		Summary: domain.Summarize(ledger, bills, incomes),
	}

	var buf bytes.Buffer
	require.NoError(t, Ledger(&buf, detail))

	f := openWorkbook(t, &buf)
	assert.Equal(t, []string{SheetBills, SheetIncomes, SheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(SheetBills)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Bill", rows[0][0])
	assert.Equal(t, "Rent", rows[1][0])
	assert.Equal(t, "2024-01-15", rows[1][2])
	assert.Equal(t, "yes", rows[1][3])
	assert.Equal(t, "80.5", rawCell(t, f, SheetBills, "B3"))

	assert.Equal(t, "payday", rawCell(t, f, SheetIncomes, "C2"))

	// Net = 500 + 2000 - 1080.5
	assert.Equal(t, "Net", rawCell(t, f, SheetSummary, "A9"))
	assert.Equal(t, "1419.5", rawCell(t, f, SheetSummary, "B9"))
}

func TestPTOYear_WritesSheets(t *testing.T) {
	pto := testutil.NewTestPTO(2024, "120")
	plans := []*domain.PTOPlan{
		testutil.NewTestPlan(pto.ID, "Beach", testutil.Date(2024, 7, 1), testutil.Date(2024, 7, 5), "40"),
	}
	holidays := []*domain.HolidayHours{
		testutil.NewTestHoliday(pto.ID, "July 4th", testutil.Date(2024, 7, 4), "8"),
	}
	detail := &service.PTODetail{
		PTO:      pto,
		Plans:    plans,
		Holidays: holidays,
		Summary:  domain.SummarizePTO(pto, plans),
	}

	var buf bytes.Buffer
	require.NoError(t, PTOYear(&buf, detail))

	f := openWorkbook(t, &buf)
	assert.Equal(t, []string{SheetPlans, SheetHolidays, SheetSummary}, f.GetSheetList())
	assert.Equal(t, "Beach", rawCell(t, f, SheetPlans, "A2"))
	assert.Equal(t, "40", rawCell(t, f, SheetPlans, "D2"))
	assert.Equal(t, "Planned", rawCell(t, f, SheetPlans, "E2"))
	assert.Equal(t, "July 4th", rawCell(t, f, SheetHolidays, "B2"))
	assert.Equal(t, "Remaining", rawCell(t, f, SheetSummary, "A7"))
	assert.Equal(t, "80", rawCell(t, f, SheetSummary, "B7"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestExport_WriterErrorIsReturned(t *testing.T) {
	ledger := testutil.NewTestLedger("January", testutil.Date(2024, 1, 1), "0")
	err := Ledger(failingWriter{}, &service.LedgerDetail{Ledger: ledger, Summary: domain.Summarize(ledger, nil, nil)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exporting ledger January")
	assert.Contains(t, err.Error(), "disk full")

	pto := testutil.NewTestPTO(2024, "120")
	err = PTOYear(failingWriter{}, &service.PTODetail{PTO: pto, Summary: domain.SummarizePTO(pto, nil)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exporting pto 2024")
}
