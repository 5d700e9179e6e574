package ptohours

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hrs(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculatePTOHours(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		holidays []Holiday
		want     string
	}{
		{"full work week", day(2024, 1, 1), day(2024, 1, 5), nil, "40"},
		{"week including weekend", day(2024, 1, 1), day(2024, 1, 7), nil, "40"},
		{"holiday mid-week", day(2024, 1, 1), day(2024, 1, 5),
			[]Holiday{{Date: day(2024, 1, 3), Hours: hrs("8")}}, "32"},
		{"single weekday", day(2024, 1, 3), day(2024, 1, 3), nil, "8"},
		{"single saturday", day(2024, 1, 6), day(2024, 1, 6), nil, "0"},
		{"weekend only", day(2024, 1, 6), day(2024, 1, 7), nil, "0"},
		{"holiday outside range ignored", day(2024, 1, 1), day(2024, 1, 5),
			[]Holiday{{Date: day(2024, 1, 8), Hours: hrs("8")}}, "40"},
		{"holiday on start boundary", day(2024, 1, 1), day(2024, 1, 5),
			[]Holiday{{Date: day(2024, 1, 1), Hours: hrs("8")}}, "32"},
		{"holiday on end boundary", day(2024, 1, 1), day(2024, 1, 5),
			[]Holiday{{Date: day(2024, 1, 5), Hours: hrs("4")}}, "36"},
		{"saturday holiday still deducts", day(2024, 1, 1), day(2024, 1, 7),
			[]Holiday{{Date: day(2024, 1, 6), Hours: hrs("8")}}, "32"},
		{"two holidays on one date", day(2024, 1, 1), day(2024, 1, 5),
			[]Holiday{
				{Date: day(2024, 1, 2), Hours: hrs("8")},
				{Date: day(2024, 1, 2), Hours: hrs("4")},
			}, "28"},
		{"holidays drive total negative", day(2024, 1, 6), day(2024, 1, 6),
			[]Holiday{{Date: day(2024, 1, 6), Hours: hrs("8")}}, "-8"},
		{"fractional holiday", day(2024, 1, 1), day(2024, 1, 1),
			[]Holiday{{Date: day(2024, 1, 1), Hours: hrs("2.5")}}, "5.5"},
		{"two weeks", day(2024, 1, 1), day(2024, 1, 14), nil, "80"},
		{"across leap day", day(2024, 2, 28), day(2024, 3, 1), nil, "24"},
		{"reversed range", day(2024, 1, 5), day(2024, 1, 1), nil, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePTOHours(tt.start, tt.end, tt.holidays)
			assert.True(t, got.Equal(hrs(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestCalculatePTOHours_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 17, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 6, 0, 0, 0, time.UTC)
	holiday := Holiday{Date: time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC), Hours: hrs("8")}

	got := CalculatePTOHours(start, end, []Holiday{holiday})
	assert.True(t, got.Equal(hrs("32")), "got %s", got)
}

func TestCalculatePTOHours_ConcurrentCallers(t *testing.T) {
	holidays := []Holiday{{Date: day(2024, 1, 3), Hours: hrs("8")}}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := CalculatePTOHours(day(2024, 1, 1), day(2024, 1, 5), holidays)
			assert.True(t, got.Equal(hrs("32")))
		}()
	}
	wg.Wait()
}

func TestCalculateHoursPerDay(t *testing.T) {
	tests := []struct {
		name  string
		hours string
		start time.Time
		end   time.Time
		want  string
	}{
		{"even week", "40", day(2024, 1, 1), day(2024, 1, 5), "8"},
		{"single day", "8", day(2024, 1, 1), day(2024, 1, 1), "8"},
		{"across weekend", "40", day(2024, 1, 1), day(2024, 1, 8), "5"},
		{"reversed range", "40", day(2024, 1, 5), day(2024, 1, 1), "0"},
		{"zero hours", "0", day(2024, 1, 1), day(2024, 1, 5), "0"},
		{"centuries", "237408", day(1700, 1, 1), day(2024, 12, 31), "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHoursPerDay(hrs(tt.hours), tt.start, tt.end)
			assert.True(t, got.Equal(hrs(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestExceedsWorkday(t *testing.T) {
	assert.False(t, ExceedsWorkday(hrs("40"), day(2024, 1, 1), day(2024, 1, 5)))
	assert.True(t, ExceedsWorkday(hrs("41"), day(2024, 1, 1), day(2024, 1, 5)))
	assert.False(t, ExceedsWorkday(hrs("100"), day(2024, 1, 5), day(2024, 1, 1)))
	assert.False(t, ExceedsWorkday(hrs("949632"), day(1700, 1, 1), day(2024, 12, 31)))
	assert.True(t, ExceedsWorkday(hrs("949633"), day(1700, 1, 1), day(2024, 12, 31)))
}

func TestDaysInRange(t *testing.T) {
	assert.Equal(t, 1, DaysInRange(day(2024, 1, 1), day(2024, 1, 1)))
	assert.Equal(t, 7, DaysInRange(day(2024, 1, 1), day(2024, 1, 7)))
	assert.Equal(t, 0, DaysInRange(day(2024, 1, 2), day(2024, 1, 1)))
	assert.Equal(t, -3, DaysInRange(day(2024, 1, 5), day(2024, 1, 1)))
	assert.Equal(t, 366, DaysInRange(day(1969, 1, 1), day(1970, 1, 1)))
	assert.Equal(t, 118704, DaysInRange(day(1700, 1, 1), day(2024, 12, 31)))
	assert.Equal(t, 365242, DaysInRange(day(1000, 1, 1), day(1999, 12, 31)))
}
