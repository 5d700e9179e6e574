package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Income struct {
	ID        string
	Date      time.Time
	Amount    decimal.Decimal
	LedgerID  *string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i *Income) Validate() error {
	if i.Date.IsZero() {
		return validationf("income date is required")
	}
	if i.Amount.IsNegative() {
		return validationf("income amount must not be negative")
	}
	return nil
}

// IsAssigned reports whether the income already belongs to a ledger.
func (i *Income) IsAssigned() bool {
	return i.LedgerID != nil && *i.LedgerID != ""
}
