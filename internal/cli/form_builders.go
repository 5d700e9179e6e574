package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/charmbracelet/huh"
)

// dateInput returns a huh.Input for a date field.
func dateInput(title string, value *string, required bool) *huh.Input {
	validate := validateOptionalDate
	if required {
		validate = validateRequiredDate
	}
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validate)
}

// hoursInput returns a huh.Input for an optional hours override.
func hoursInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description("Leave blank to calculate from workdays and holidays").
		Placeholder("auto").
		Value(value).
		Validate(validateOptionalHours)
}

// planInput is the raw text collected for a PTO plan.
type planInput struct {
	PTOID       string
	Name        string
	Start       string
	End         string
	Hours       string
	Description string
	Status      string
}

// missing reports whether any required field is blank.
func (in *planInput) missing() bool {
	return in.PTOID == "" || in.Name == "" || in.Start == "" || in.End == ""
}

// planForm collects a plan's fields, prefilled with whatever in already holds.
func planForm(ctx context.Context, app *App, in *planInput) (*huh.Form, error) {
	years, err := ptoYearOptions(ctx, app)
	if err != nil {
		return nil, err
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("no PTO years yet; create one with: moneybae pto add --year ... --hours ...")
	}
	if in.Status == "" {
		in.Status = string(domain.PlanPlanned)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("PTO Year").
				Options(years...).
				Value(&in.PTOID),
			huh.NewInput().
				Title("Name").
				Value(&in.Name).
				Validate(validateRequired("name")),
			dateInput("Start Date", &in.Start, true),
			dateInput("End Date", &in.End, true),
		),
		huh.NewGroup(
			hoursInput("Hours", &in.Hours),
			huh.NewSelect[string]().
				Title("Status").
				Options(planStatusOptions()...).
				Value(&in.Status),
			huh.NewText().
				Title("Description").
				Value(&in.Description),
		),
	).WithTheme(moneybaeHuhTheme()).WithShowHelp(false), nil
}
