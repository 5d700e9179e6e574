package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a recurring expense template. Ledgers copy it into LedgerBill lines.
type Bill struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	DueDay    *int
	IsAutoPay bool
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Bill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return validationf("bill name is required")
	}
	if b.Amount.IsNegative() {
		return validationf("bill amount must not be negative")
	}
	if b.DueDay != nil && (*b.DueDay < 1 || *b.DueDay > 31) {
		return validationf("due day %d must be between 1 and 31", *b.DueDay)
	}
	return nil
}

// DueDateIn returns the bill's due day placed in the month of ref, or nil
// when the bill has no due day.
func (b *Bill) DueDateIn(ref time.Time) *time.Time {
	if b.DueDay == nil {
		return nil
	}
	d := DayInMonth(ref.Year(), ref.Month(), *b.DueDay)
	return &d
}
