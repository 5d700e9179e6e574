package cli

import (
	"fmt"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newPTOCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pto",
		Short: "Manage PTO years",
	}

	cmd.AddCommand(
		newPTOAddCmd(app),
		newPTOListCmd(app),
		newPTOShowCmd(app),
		newPTOEditCmd(app),
		newPTORemoveCmd(app),
	)

	return cmd
}

func newPTOAddCmd(app *App) *cobra.Command {
	var (
		year      int
		available decimalFlag
		prevHours decimalFlag
		rollover  bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a PTO year",
		Long: `Create a PTO year.

With --rollover and the previous year on record, the carried hours are that
year's remaining hours (never below zero). Otherwise --prev-hours is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.PTO{
				Year:           year,
				AvailableHours: available.Or(decimal.Zero),
				PrevYearHours:  prevHours.Or(decimal.Zero),
				RolloverHours:  rollover,
			}
			if err := app.PTO.Create(cmd.Context(), p); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created PTO %d with %s hours (%s)\n",
				p.Year, formatter.Hours(p.AvailableHours), formatter.ShortID(p.ID))
			if p.RolloverHours {
				fmt.Fprintf(out, "Carrying %s hours from %d\n", formatter.Hours(p.PrevYearHours), p.Year-1)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Calendar year")
	cmd.Flags().Var(&available, "hours", "Hours available this year")
	cmd.Flags().BoolVar(&rollover, "rollover", false, "Carry hours over from the previous year")
	cmd.Flags().Var(&prevHours, "prev-hours", "Carried hours when no previous year is on record")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newPTOListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List PTO years with remaining hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := app.PTO.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPTOList(years))
			return nil
		},
	}
}

func newPTOShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "show <year|id>",
		Aliases: []string{"inspect"},
		Short:   "Show a PTO year's plans, holidays and rollup",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePTOID(ctx, app, args[0])
			if err != nil {
				return err
			}
			detail, err := app.PTO.Detail(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPTODetail(detail))
			return nil
		},
	}
}

func newPTOEditCmd(app *App) *cobra.Command {
	var (
		available decimalFlag
		prevHours decimalFlag
		rollover  bool
	)

	cmd := &cobra.Command{
		Use:   "edit <year|id>",
		Short: "Update a PTO year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePTOID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.PTO.GetByID(ctx, id)
			if err != nil {
				return err
			}
			p.AvailableHours = available.Or(p.AvailableHours)
			p.PrevYearHours = prevHours.Or(p.PrevYearHours)
			if cmd.Flags().Changed("rollover") {
				p.RolloverHours = rollover
			}
			if err := app.PTO.Update(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated PTO %d\n", p.Year)
			return nil
		},
	}

	cmd.Flags().Var(&available, "hours", "Hours available this year")
	cmd.Flags().BoolVar(&rollover, "rollover", false, "Count previous-year hours")
	cmd.Flags().Var(&prevHours, "prev-hours", "Previous-year hours")

	return cmd
}

func newPTORemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <year|id>",
		Aliases: []string{"remove"},
		Short:   "Delete a PTO year with its plans and holidays",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePTOID(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirmDestructive(app, "Delete this PTO year with its plans and holidays?")
			if err != nil || !ok {
				return err
			}
			if err := app.PTO.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted PTO %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
