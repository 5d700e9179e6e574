package formatter

import (
	"testing"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		pct     float64
		width   int
		filled  int
		percent string
	}{
		{"empty", 0, 10, 0, "  0%"},
		{"half", 0.5, 10, 5, " 50%"},
		{"full", 1, 10, 10, "100%"},
		{"over 100% clamps", 1.5, 10, 10, "100%"},
		{"negative clamps", -0.5, 10, 0, "  0%"},
		{"tiny width clamps to 2", 0.5, 1, 1, " 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgress(tt.pct, tt.width))
			assert.Equal(t, tt.filled, countRune(got, '█'))
			assert.Contains(t, got, tt.percent)
		})
	}
}

func TestFraction(t *testing.T) {
	assert.InDelta(t, 0.25, Fraction(decimal.NewFromInt(20), decimal.NewFromInt(80)), 1e-9)
	assert.Zero(t, Fraction(decimal.NewFromInt(5), decimal.Zero))
	assert.Zero(t, Fraction(decimal.NewFromInt(5), decimal.NewFromInt(-1)))
}

func TestRemainingBar_CountsCarriedHours(t *testing.T) {
	s := domain.PTOSummary{
		AvailableHours: decimal.NewFromInt(80),
		CarriedHours:   decimal.NewFromInt(20),
		HoursRemaining: decimal.NewFromInt(50),
	}
	got := stripANSI(RemainingBar(s, 10))
	assert.Equal(t, 5, countRune(got, '█'))
	assert.Contains(t, got, " 50%")
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
