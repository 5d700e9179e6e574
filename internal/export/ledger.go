package export

import (
	"fmt"
	"io"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/service"
)

const (
	SheetBills    = "Bills"
	SheetIncomes  = "Incomes"
	SheetSummary  = "Summary"
	SheetPlans    = "Plans"
	SheetHolidays = "Holidays"
)

// Ledger writes a ledger's bills, incomes and rollup as a workbook.
func Ledger(out io.Writer, d *service.LedgerDetail) error {
	wb, err := newWorkbook()
	if err != nil {
		return err
	}
	defer wb.close()

	if err := wb.addSheet(SheetBills, "Bill", "Amount", "Due", "Paid", "Notes"); err != nil {
		return err
	}
	for i, b := range d.Bills {
		due := ""
		if b.DueDate != nil {
			due = b.DueDate.Format(domain.DateLayout)
		}
		if err := wb.setRow(SheetBills, i+2, b.BillName, b.Amount, due, yesNo(b.IsPaid), b.Notes); err != nil {
			return err
		}
	}

	if err := wb.addSheet(SheetIncomes, "Date", "Amount", "Notes"); err != nil {
		return err
	}
	for i, inc := range d.Incomes {
		if err := wb.setRow(SheetIncomes, i+2, inc.Date.Format(domain.DateLayout), inc.Amount, inc.Notes); err != nil {
			return err
		}
	}

	s := d.Summary
	if err := wb.addSheet(SheetSummary, "Item", "Amount", "Count"); err != nil {
		return err
	}
	rows := [][]any{
		{"Ledger", d.Ledger.Name, d.Ledger.Date.Format(domain.DateLayout)},
		{"Bank balance", s.BankBalance, ""},
		{"Income", s.Income, s.IncomeCount},
		{"Available funds", s.AvailableFunds, ""},
		{"Planned", s.Planned, s.PlannedCount},
		{"Paid", s.Paid, s.PaidCount},
		{"Total expenses", s.TotalExpenses, s.PlannedCount + s.PaidCount},
		{"Net", s.Net, ""},
	}
	for i, r := range rows {
		if err := wb.setRow(SheetSummary, i+2, r...); err != nil {
			return err
		}
	}

	if err := wb.writeTo(out); err != nil {
		return fmt.Errorf("exporting ledger %s: %w", d.Ledger.Name, err)
	}
	return nil
}
