package service

import (
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/ptohours"
)

// monthBounds returns the first and last calendar day of t's month.
func monthBounds(t time.Time) (time.Time, time.Time) {
	first := domain.NewDate(t.Year(), t.Month(), 1)
	return first, first.AddDate(0, 1, -1)
}

// toCalculatorHolidays adapts stored holidays to the hours calculator input.
func toCalculatorHolidays(holidays []*domain.HolidayHours) []ptohours.Holiday {
	out := make([]ptohours.Holiday, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, ptohours.Holiday{Date: h.Date, Hours: h.Hours})
	}
	return out
}
