package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/ptohours"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage PTO plans",
	}

	cmd.AddCommand(
		newPlanAddCmd(app),
		newPlanListCmd(app),
		newPlanEditCmd(app),
		newPlanRecalcCmd(app),
		newPlanStatusCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

// toPlan parses the collected text into a plan and its optional hours override.
func (in *planInput) toPlan() (*domain.PTOPlan, *decimal.Decimal, error) {
	start, err := domain.ParseDate(in.Start)
	if err != nil {
		return nil, nil, err
	}
	end, err := domain.ParseDate(in.End)
	if err != nil {
		return nil, nil, err
	}
	hours, err := domain.ParseOptionalAmount(in.Hours)
	if err != nil {
		return nil, nil, err
	}
	status := domain.PlanPlanned
	if in.Status != "" {
		if status, err = domain.ParsePlanStatus(in.Status); err != nil {
			return nil, nil, err
		}
	}
	return &domain.PTOPlan{
		PTOID:       in.PTOID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		StartDate:   start,
		EndDate:     end,
		Status:      status,
	}, hours, nil
}

// warnLongDays prints a soft warning when a plan averages more than a workday.
func warnLongDays(out io.Writer, p *domain.PTOPlan) {
	if !ptohours.ExceedsWorkday(p.Hours, p.StartDate, p.EndDate) {
		return
	}
	perDay := ptohours.CalculateHoursPerDay(p.Hours, p.StartDate, p.EndDate)
	fmt.Fprintln(out, formatter.FormatWorkdayWarning(perDay.StringFixed(2)))
}

func printPlan(out io.Writer, verb string, p *domain.PTOPlan) {
	source := "calculated"
	if p.CustomHours {
		source = "custom"
	}
	fmt.Fprintf(out, "%s plan %s %s: %s hours (%s) [%s]\n",
		verb, p.Name, formatter.DateRange(p.StartDate, p.EndDate),
		formatter.Hours(p.Hours), source, formatter.ShortID(p.ID))
	warnLongDays(out, p)
}

func newPlanAddCmd(app *App) *cobra.Command {
	var (
		in  planInput
		pto string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Plan time off",
		Long: `Plan time off within a PTO year.

Without --hours the plan's hours are calculated from the weekdays in range at
8 hours each, minus the year's holiday hours in range. With --hours the value
is stored as-is and never recalculated.

In a terminal, missing fields are collected with a form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if pto != "" {
				id, err := resolvePTOID(ctx, app, pto)
				if err != nil {
					return err
				}
				in.PTOID = id
			}

			if in.missing() {
				if !app.interactive() {
					return fmt.Errorf(`required flag(s) "pto", "name", "start", "end" not set`)
				}
				if err := runPlanForm(ctx, app, &in); err != nil {
					return err
				}
			}

			p, hours, err := in.toPlan()
			if err != nil {
				return err
			}
			if err := app.Plans.Create(ctx, p, hours); err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), "Created", p)
			return nil
		},
	}

	cmd.Flags().StringVar(&pto, "pto", "", "PTO year or ID")
	cmd.Flags().StringVar(&in.Name, "name", "", "Plan name")
	cmd.Flags().StringVar(&in.Start, "start", "", "First day off")
	cmd.Flags().StringVar(&in.End, "end", "", "Last day off")
	cmd.Flags().StringVar(&in.Hours, "hours", "", "Hours override (blank calculates)")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description")
	cmd.Flags().StringVar(&in.Status, "status", "", "Planned, Requested, Approved, Completed or Cancelled")

	return cmd
}

func runPlanForm(ctx context.Context, app *App, in *planInput) error {
	form, err := planForm(ctx, app, in)
	if err != nil {
		return err
	}
	return form.Run()
}

func newPlanListCmd(app *App) *cobra.Command {
	var pto string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List a PTO year's plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ptoID, err := resolvePTOID(ctx, app, pto)
			if err != nil {
				return err
			}
			plans, err := app.Plans.ListByPTO(ctx, ptoID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(plans))
			return nil
		},
	}

	cmd.Flags().StringVar(&pto, "pto", "", "PTO year or ID")
	_ = cmd.MarkFlagRequired("pto")

	return cmd
}

func newPlanEditCmd(app *App) *cobra.Command {
	var (
		name, description, status string
		start, end                dateFlag
		hours                     decimalFlag
		auto                      bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a plan",
		Long: `Update a plan.

Saving recalculates calculated hours against the current holidays. Custom
hours are kept unless --hours replaces them or --auto switches the plan back
to calculated hours.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				p.Name = name
			}
			if flags.Changed("description") {
				p.Description = description
			}
			if start.IsSet() {
				p.StartDate = start.Time()
			}
			if end.IsSet() {
				p.EndDate = end.Time()
			}
			if flags.Changed("status") {
				if p.Status, err = domain.ParsePlanStatus(status); err != nil {
					return err
				}
			}

			override := hours.Ptr()
			if override == nil && p.CustomHours && !auto {
				kept := p.Hours
				override = &kept
			}
			if err := app.Plans.Update(ctx, p, override); err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), "Updated", p)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().Var(&start, "start", "First day off")
	cmd.Flags().Var(&end, "end", "Last day off")
	cmd.Flags().Var(&hours, "hours", "Hours override")
	cmd.Flags().BoolVar(&auto, "auto", false, "Drop custom hours and calculate them")
	cmd.Flags().StringVar(&status, "status", "", "Plan status")
	cmd.MarkFlagsMutuallyExclusive("hours", "auto")

	return cmd
}

func newPlanRecalcCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recalc <id>",
		Short: "Recalculate a plan's hours against the current holidays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.Recalculate(ctx, id)
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), "Recalculated", p)
			return nil
		},
	}
}

func newPlanStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a plan to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.SetStatus(ctx, id, domain.PlanStatus(args[1])); err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", p.Name, formatter.PlanStatusPill(p.Status))
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a plan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Plans.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
