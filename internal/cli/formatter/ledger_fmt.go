package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/service"
)

// FormatLedgerList renders one line per ledger with its net.
func FormatLedgerList(ledgers []service.LedgerOverview) string {
	if len(ledgers) == 0 {
		return Dim("No ledgers yet. Add one with: moneybae ledger add --name ... --date ...") + "\n"
	}

	t := NewTable("ID", "NAME", "MONTH", "BALANCE", "INCOME", "EXPENSES", "NET").AlignRight(3, 4, 5, 6)
	for _, o := range ledgers {
		t.Row(
			StyleGreen.Render(ShortID(o.Ledger.ID)),
			o.Ledger.Name,
			Month(o.Ledger.Date),
			Money(o.Summary.BankBalance),
			Money(o.Summary.Income),
			Money(o.Summary.TotalExpenses),
			SignedMoney(o.Summary.Net),
		)
	}
	return Header("Ledgers") + "\n" + t.Render()
}

// FormatLedgerSummary renders the rollup block of a ledger.
func FormatLedgerSummary(s domain.LedgerSummary) string {
	t := NewTable("", "").AlignRight(1)
	t.Row("Bank balance", Money(s.BankBalance))
	t.Row(fmt.Sprintf("Income (%d)", s.IncomeCount), Money(s.Income))
	t.Row("Available funds", Bold(Money(s.AvailableFunds)))
	t.Row(fmt.Sprintf("Planned (%d)", s.PlannedCount), StyleYellow.Render(Money(s.Planned)))
	t.Row(fmt.Sprintf("Paid (%d)", s.PaidCount), Money(s.Paid))
	t.Row("Total expenses", Money(s.TotalExpenses))
	t.Row("Net", SignedMoney(s.Net))

	// Skip the empty header and separator lines.
	lines := strings.SplitN(t.Render(), "\n", 3)
	return lines[len(lines)-1]
}

// FormatLedgerBills renders the bill lines of a ledger.
func FormatLedgerBills(lines []domain.LedgerBillLine) string {
	if len(lines) == 0 {
		return Dim("No bills on this ledger.") + "\n"
	}
	t := NewTable("ID", "BILL", "AMOUNT", "DUE", "STATUS", "NOTES").AlignRight(2)
	for _, l := range lines {
		t.Row(
			StyleGreen.Render(ShortID(l.ID)),
			l.BillName,
			Money(l.Amount),
			OptionalDate(l.DueDate),
			PaidPill(l.IsPaid),
			Dim(Truncate(l.Notes, 24)),
		)
	}
	return t.Render()
}

// FormatLedgerDetail renders a ledger with its bills, incomes and rollup.
func FormatLedgerDetail(d *service.LedgerDetail) string {
	var b strings.Builder

	l := d.Ledger
	b.WriteString(Header(l.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("Month:"), Month(l.Date),
		Dim("ID:"), l.ID,
	))
	if l.Notes != "" {
		b.WriteString(Dim(l.Notes) + "\n")
	}

	b.WriteString("\n" + Bold("Bills") + "\n")
	b.WriteString(FormatLedgerBills(d.Bills))

	b.WriteString("\n" + Bold("Incomes") + "\n")
	if len(d.Incomes) == 0 {
		b.WriteString(Dim("No incomes assigned.") + "\n")
	} else {
		t := NewTable("ID", "DATE", "AMOUNT", "NOTES").AlignRight(2)
		for _, i := range d.Incomes {
			t.Row(StyleGreen.Render(ShortID(i.ID)), Date(i.Date), Money(i.Amount), Dim(Truncate(i.Notes, 30)))
		}
		b.WriteString(t.Render())
	}

	b.WriteString("\n" + Bold("Summary") + "\n")
	b.WriteString(FormatLedgerSummary(d.Summary))
	return b.String()
}
