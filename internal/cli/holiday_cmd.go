package cli

import (
	"fmt"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/ptohours"
	"github.com/spf13/cobra"
)

func newHolidayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage holiday hours within a PTO year",
		Long: `Manage holiday hours within a PTO year.

Holiday changes do not touch existing plans. Run "plan recalc" to refresh a
plan's hours against the current holidays.`,
	}

	cmd.AddCommand(
		newHolidayAddCmd(app),
		newHolidayListCmd(app),
		newHolidayEditCmd(app),
		newHolidayRemoveCmd(app),
		newHolidayCopyCmd(app),
	)

	return cmd
}

func newHolidayAddCmd(app *App) *cobra.Command {
	var (
		pto, name string
		date      dateFlag
		hours     decimalFlag
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a holiday",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ptoID, err := resolvePTOID(ctx, app, pto)
			if err != nil {
				return err
			}
			h := &domain.HolidayHours{
				PTOID: ptoID,
				Name:  name,
				Date:  date.Time(),
				Hours: hours.Or(ptohours.HoursPerWorkday),
			}
			if err := app.Holidays.Create(ctx, h); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added holiday %s on %s (%s hours)\n",
				h.Name, formatter.Date(h.Date), formatter.Hours(h.Hours))
			return nil
		},
	}

	cmd.Flags().StringVar(&pto, "pto", "", "PTO year or ID")
	cmd.Flags().StringVar(&name, "name", "", "Holiday name")
	cmd.Flags().Var(&date, "date", "Holiday date")
	cmd.Flags().Var(&hours, "hours", "Hours credited (default 8)")
	_ = cmd.MarkFlagRequired("pto")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newHolidayListCmd(app *App) *cobra.Command {
	var pto string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List a PTO year's holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ptoID, err := resolvePTOID(ctx, app, pto)
			if err != nil {
				return err
			}
			holidays, err := app.Holidays.ListByPTO(ctx, ptoID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHolidayList(holidays))
			return nil
		},
	}

	cmd.Flags().StringVar(&pto, "pto", "", "PTO year or ID")
	_ = cmd.MarkFlagRequired("pto")

	return cmd
}

func newHolidayEditCmd(app *App) *cobra.Command {
	var (
		name  string
		date  dateFlag
		hours decimalFlag
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveHolidayID(ctx, app, args[0])
			if err != nil {
				return err
			}
			h, err := app.Holidays.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				h.Name = name
			}
			if date.IsSet() {
				h.Date = date.Time()
			}
			h.Hours = hours.Or(h.Hours)
			if err := app.Holidays.Update(ctx, h); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated holiday %s\n", h.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Holiday name")
	cmd.Flags().Var(&date, "date", "Holiday date")
	cmd.Flags().Var(&hours, "hours", "Hours credited")

	return cmd
}

func newHolidayRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a holiday",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveHolidayID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Holidays.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted holiday %s\n", formatter.ShortID(id))
			return nil
		},
	}
}

func newHolidayCopyCmd(app *App) *cobra.Command {
	var pto string

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the previous year's holidays into a PTO year",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ptoID, err := resolvePTOID(ctx, app, pto)
			if err != nil {
				return err
			}
			n, err := app.Holidays.CopyFromPreviousYear(ctx, ptoID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d holidays\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&pto, "pto", "", "Target PTO year or ID")
	_ = cmd.MarkFlagRequired("pto")

	return cmd
}
