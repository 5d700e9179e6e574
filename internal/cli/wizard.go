package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// moneybaeHuhTheme returns a custom huh theme using the Gruvbox palette.
func moneybaeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// ptoYearOptions lists the PTO years as select options keyed by ID.
func ptoYearOptions(ctx context.Context, app *App) ([]huh.Option[string], error) {
	years, err := app.PTO.List(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]huh.Option[string], 0, len(years))
	for _, o := range years {
		label := fmt.Sprintf("%d (%s hours left)", o.PTO.Year, formatter.Hours(o.Summary.HoursRemaining))
		options = append(options, huh.NewOption(label, o.PTO.ID))
	}
	return options, nil
}

// planStatusOptions lists every plan status in display order.
func planStatusOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.PlanStatuses))
	for _, st := range domain.PlanStatuses {
		options = append(options, huh.NewOption(string(st), string(st)))
	}
	return options
}

// validateOptionalDate accepts empty, YYYY-MM-DD or MM/DD/YYYY.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD or MM/DD/YYYY")
	}
	return nil
}

// validateRequiredDate rejects blank input, then validates like validateOptionalDate.
func validateRequiredDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("date is required")
	}
	return validateOptionalDate(s)
}

// validateOptionalHours accepts empty or a non-negative decimal.
func validateOptionalHours(s string) error {
	v, err := domain.ParseOptionalAmount(s)
	if err != nil {
		return fmt.Errorf("enter a number such as 8 or 7.5")
	}
	if v != nil && v.IsNegative() {
		return fmt.Errorf("hours must not be negative")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(moneybaeHuhTheme()).WithShowHelp(false)
}

// confirmDestructive asks before a cascading delete when a terminal is
// attached. Non-interactive callers are not prompted.
func confirmDestructive(app *App, title string) (bool, error) {
	if !app.interactive() {
		return true, nil
	}
	ok := false
	if err := wizardConfirm(title, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}
