package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is a monthly period bundling bills and incomes with a bank balance.
type Ledger struct {
	ID          string
	Name        string
	Date        time.Time
	BankBalance decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (l *Ledger) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return validationf("ledger name is required")
	}
	if l.Date.IsZero() {
		return validationf("ledger date is required")
	}
	return nil
}

// LedgerBill is a bill instance inside one ledger.
type LedgerBill struct {
	ID        string
	LedgerID  string
	BillID    string
	Amount    decimal.Decimal
	DueDate   *time.Time
	IsPaid    bool
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (lb *LedgerBill) Validate() error {
	if lb.Amount.IsNegative() {
		return validationf("ledger bill amount must not be negative")
	}
	return nil
}

// LedgerBillLine joins a ledger bill with its bill's name for display.
type LedgerBillLine struct {
	LedgerBill
	BillName string
}

// LedgerSummary is the derived financial rollup of a ledger.
type LedgerSummary struct {
	BankBalance    decimal.Decimal
	Income         decimal.Decimal
	IncomeCount    int
	AvailableFunds decimal.Decimal
	Planned        decimal.Decimal
	PlannedCount   int
	Paid           decimal.Decimal
	PaidCount      int
	TotalExpenses  decimal.Decimal
	Net            decimal.Decimal
}

// Summarize rolls up a ledger's bills and incomes. Unpaid bills count as
// planned; net is available funds minus every bill on the ledger.
func Summarize(l *Ledger, bills []LedgerBillLine, incomes []*Income) LedgerSummary {
	s := LedgerSummary{
		BankBalance: l.BankBalance,
		Income:      decimal.Zero,
		Planned:     decimal.Zero,
		Paid:        decimal.Zero,
	}
	for _, inc := range incomes {
		s.Income = s.Income.Add(inc.Amount)
		s.IncomeCount++
	}
	for _, b := range bills {
		if b.IsPaid {
			s.Paid = s.Paid.Add(b.Amount)
			s.PaidCount++
			continue
		}
		s.Planned = s.Planned.Add(b.Amount)
		s.PlannedCount++
	}
	s.AvailableFunds = s.BankBalance.Add(s.Income)
	s.TotalExpenses = s.Planned.Add(s.Paid)
	s.Net = s.AvailableFunds.Sub(s.TotalExpenses)
	return s
}
