package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PlanStatusColor returns the style used for a PTO plan status.
func PlanStatusColor(status domain.PlanStatus) lipgloss.Style {
	switch status {
	case domain.PlanPlanned:
		return StyleBlue
	case domain.PlanRequested:
		return StyleYellow
	case domain.PlanApproved:
		return StyleGreen
	case domain.PlanCompleted:
		return StyleDim
	case domain.PlanCancelled:
		return StyleRed
	default:
		return StyleDim
	}
}

// PlanStatusPill returns a colored status indicator such as "● Approved".
func PlanStatusPill(status domain.PlanStatus) string {
	icon := "●"
	switch status {
	case domain.PlanPlanned:
		icon = "○"
	case domain.PlanCompleted:
		icon = "✔"
	case domain.PlanCancelled:
		icon = "✖"
	}
	return PlanStatusColor(status).Render(icon + " " + string(status))
}

// PaidPill renders the paid state of a ledger bill.
func PaidPill(paid bool) string {
	if paid {
		return StyleGreen.Render("✔ Paid")
	}
	return StyleYellow.Render("○ Due")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
