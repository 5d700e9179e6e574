package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45%.
// The bar is green above 66%, yellow from 33% and red below.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// Fraction returns part/whole as a float, or 0 when whole is not positive.
func Fraction(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	f, _ := part.Div(whole).Float64()
	return f
}

// RemainingBar shows how much of a PTO year's hours are still free.
func RemainingBar(s domain.PTOSummary, width int) string {
	total := s.AvailableHours.Add(s.CarriedHours)
	return RenderProgress(Fraction(s.HoursRemaining, total), width)
}
