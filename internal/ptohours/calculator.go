// Package ptohours computes the paid-time-off hours a date range costs.
package ptohours

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoursPerWorkday is charged for every Monday through Friday in a range.
var HoursPerWorkday = decimal.NewFromInt(8)

// Holiday is a dated hour credit deducted from ranges that contain it.
type Holiday struct {
	Date  time.Time
	Hours decimal.Decimal
}

// CalculatePTOHours returns 8 hours per weekday in [start, end] minus the
// hours of every holiday dated inside that range. Weekends cost nothing,
// but a holiday that falls on a weekend still deducts. The result may be
// negative. A range whose end precedes its start costs 0.
func CalculatePTOHours(start, end time.Time, holidays []Holiday) decimal.Decimal {
	start, end = dateOf(start), dateOf(end)
	if end.Before(start) {
		return decimal.Zero
	}

	total := decimal.Zero
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isWorkday(d) {
			total = total.Add(HoursPerWorkday)
		}
	}

	for _, h := range holidays {
		hd := dateOf(h.Date)
		if hd.Before(start) || hd.After(end) {
			continue
		}
		total = total.Sub(h.Hours)
	}
	return total
}

// CalculateHoursPerDay spreads hours evenly over the inclusive calendar days
// of [start, end]. It returns 0 when the range holds no days.
func CalculateHoursPerDay(hours decimal.Decimal, start, end time.Time) decimal.Decimal {
	days := DaysInRange(start, end)
	if days <= 0 {
		return decimal.Zero
	}
	return hours.Div(decimal.NewFromInt(int64(days)))
}

// ExceedsWorkday reports whether the per-day average of hours is above a
// standard workday.
func ExceedsWorkday(hours decimal.Decimal, start, end time.Time) bool {
	return CalculateHoursPerDay(hours, start, end).GreaterThan(HoursPerWorkday)
}

// DaysInRange counts the calendar days of [start, end], both ends included.
// A reversed range yields zero or a negative count.
func DaysInRange(start, end time.Time) int {
	return int(dayNumber(end)-dayNumber(start)) + 1
}

// dayNumber is the count of days since the Unix epoch. It avoids
// time.Duration, which saturates for spans longer than about 292 years.
func dayNumber(t time.Time) int64 {
	return dateOf(t).Unix() / secondsPerDay
}

// secondsPerDay divides UTC midnights exactly, before the epoch too.
const secondsPerDay = 24 * 60 * 60

func isWorkday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
