package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the storage and display layout for calendar dates.
const DateLayout = "2006-01-02"

// USDateLayout is the MM/DD/YYYY layout accepted from user input.
const USDateLayout = "01/02/2006"

// DateOf strips the time-of-day from t, keeping t's own calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDate builds a calendar date in UTC.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or MM/DD/YYYY.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, USDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, validationf("invalid date %q (use YYYY-MM-DD or MM/DD/YYYY)", s)
}

// ParseAmount parses a decimal amount or hours value.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, validationf("invalid amount %q", s)
	}
	return d, nil
}

// ParseOptionalAmount returns nil for blank input.
func ParseOptionalAmount(s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := ParseAmount(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DayInMonth places day in the given month, clamped to the month's last day.
func DayInMonth(year int, month time.Month, day int) time.Time {
	last := NewDate(year, month+1, 0).Day()
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return NewDate(year, month, day)
}

// ShiftYear moves t to the given year, turning Feb 29 into Feb 28 when needed.
func ShiftYear(t time.Time, year int) time.Time {
	return DayInMonth(year, t.Month(), t.Day())
}

// FormatMoney renders an amount with two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return fmt.Sprintf("$%s", d.StringFixed(2))
}
