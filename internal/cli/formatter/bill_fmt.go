package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatBillList renders the recurring bill templates with a total line.
func FormatBillList(bills []*domain.Bill) string {
	if len(bills) == 0 {
		return Dim("No bills yet. Add one with: moneybae bill add --name ... --amount ...") + "\n"
	}

	t := NewTable("ID", "NAME", "AMOUNT", "DUE", "AUTO-PAY", "NOTES").AlignRight(2, 3)
	total := decimal.Zero
	for _, b := range bills {
		due := Dim("—")
		if b.DueDay != nil {
			due = strconv.Itoa(*b.DueDay)
		}
		t.Row(
			StyleGreen.Render(ShortID(b.ID)),
			b.Name,
			Money(b.Amount),
			due,
			YesNo(b.IsAutoPay),
			Dim(Truncate(b.Notes, 30)),
		)
		total = total.Add(b.Amount)
	}

	var sb strings.Builder
	sb.WriteString(Header("Bills"))
	sb.WriteString("\n")
	sb.WriteString(t.Render())
	sb.WriteString("\n")
	sb.WriteString(Dim("Total: ") + Bold(Money(total)) + "\n")
	return sb.String()
}

// FormatIncomeList renders incomes with their ledger assignment.
func FormatIncomeList(incomes []*domain.Income) string {
	if len(incomes) == 0 {
		return Dim("No incomes yet. Add one with: moneybae income add --date ... --amount ...") + "\n"
	}

	t := NewTable("ID", "DATE", "AMOUNT", "LEDGER", "NOTES").AlignRight(2)
	for _, i := range incomes {
		ledger := Dim("unassigned")
		if i.LedgerID != nil {
			ledger = StyleBlue.Render(ShortID(*i.LedgerID))
		}
		t.Row(
			StyleGreen.Render(ShortID(i.ID)),
			Date(i.Date),
			Money(i.Amount),
			ledger,
			Dim(Truncate(i.Notes, 30)),
		)
	}
	return Header("Incomes") + "\n" + t.Render()
}
