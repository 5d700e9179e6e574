package cli

import (
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*decimalFlag)(nil)
	_ pflag.Value = (*dateFlag)(nil)
)

// decimalFlag holds an optional amount or hours value. A blank value
// leaves it unset.
type decimalFlag struct {
	value *decimal.Decimal
}

func (f *decimalFlag) String() string {
	if f.value == nil {
		return ""
	}
	return f.value.String()
}

func (f *decimalFlag) Set(s string) error {
	v, err := domain.ParseOptionalAmount(s)
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

func (f *decimalFlag) Type() string { return "decimal" }

// Ptr returns the parsed value, or nil when unset.
func (f *decimalFlag) Ptr() *decimal.Decimal { return f.value }

// Or returns the parsed value, or def when unset.
func (f *decimalFlag) Or(def decimal.Decimal) decimal.Decimal {
	if f.value == nil {
		return def
	}
	return *f.value
}

// dateFlag holds an optional date in YYYY-MM-DD or MM/DD/YYYY form. A blank
// value leaves it unset.
type dateFlag struct {
	value *time.Time
}

func (f *dateFlag) String() string {
	if f.value == nil {
		return ""
	}
	return f.value.Format(domain.DateLayout)
}

func (f *dateFlag) Set(s string) error {
	if s == "" {
		f.value = nil
		return nil
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	f.value = &t
	return nil
}

func (f *dateFlag) Type() string { return "date" }

func (f *dateFlag) IsSet() bool { return f.value != nil }

// Time returns the parsed date, or the zero time when unset.
func (f *dateFlag) Time() time.Time {
	if f.value == nil {
		return time.Time{}
	}
	return *f.value
}
