package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Money formats an amount as dollars without color.
func Money(d decimal.Decimal) string {
	return domain.FormatMoney(d)
}

// SignedMoney colors an amount green when non-negative and red otherwise.
func SignedMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return StyleRed.Render(Money(d))
	}
	return StyleGreen.Render(Money(d))
}

// Hours formats an hours value with two decimals.
func Hours(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// SignedHours colors remaining hours red when overdrawn.
func SignedHours(d decimal.Decimal) string {
	if d.IsNegative() {
		return StyleRed.Render(Hours(d))
	}
	return StyleGreen.Render(Hours(d))
}

// Date formats a calendar date as YYYY-MM-DD.
func Date(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// OptionalDate renders a dim dash for a missing date.
func OptionalDate(t *time.Time) string {
	if t == nil {
		return Dim("—")
	}
	return Date(*t)
}

// DateRange renders "start → end", or a single date when they match.
func DateRange(start, end time.Time) string {
	if start.Equal(end) {
		return Date(start)
	}
	return Date(start) + " → " + Date(end)
}

// Month renders a ledger month such as "Mar 2025".
func Month(t time.Time) string {
	return t.Format("Jan 2006")
}

// ShortID returns the first eight characters of an ID for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// YesNo renders a boolean as "yes" or a dim "no".
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return Dim("no")
}

// Truncate shortens s to width runes with an ellipsis.
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
