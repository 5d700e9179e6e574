package cli

import (
	"fmt"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newIncomeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage incomes",
	}

	cmd.AddCommand(
		newIncomeAddCmd(app),
		newIncomeListCmd(app),
		newIncomeEditCmd(app),
		newIncomeRemoveCmd(app),
	)

	return cmd
}

func newIncomeAddCmd(app *App) *cobra.Command {
	var (
		notes, ledger string
		date          dateFlag
		amount        decimalFlag
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			inc := &domain.Income{
				Date:   date.Time(),
				Amount: amount.Or(decimal.Zero),
				Notes:  notes,
			}
			if err := app.Incomes.Create(ctx, inc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded income %s on %s (%s)\n",
				formatter.Money(inc.Amount), formatter.Date(inc.Date), formatter.ShortID(inc.ID))

			if ledger == "" {
				return nil
			}
			ledgerID, err := resolveLedgerID(ctx, app, ledger)
			if err != nil {
				return err
			}
			if err := app.Ledgers.AssignIncome(ctx, ledgerID, inc.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned to ledger %s\n", formatter.ShortID(ledgerID))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Date received (YYYY-MM-DD or MM/DD/YYYY)")
	cmd.Flags().Var(&amount, "amount", "Amount received")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&ledger, "ledger", "", "Assign to this ledger")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newIncomeListCmd(app *App) *cobra.Command {
	var month dateFlag

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List incomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				incomes []*domain.Income
				err     error
			)
			if month.IsSet() {
				incomes, err = app.Incomes.ListUnassignedInMonth(ctx, month.Time())
			} else {
				incomes, err = app.Incomes.List(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIncomeList(incomes))
			return nil
		},
	}

	cmd.Flags().Var(&month, "unassigned-in", "Only unassigned incomes in this date's month")

	return cmd
}

func newIncomeEditCmd(app *App) *cobra.Command {
	var (
		notes  string
		date   dateFlag
		amount decimalFlag
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveIncomeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			inc, err := app.Incomes.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if date.IsSet() {
				inc.Date = date.Time()
			}
			inc.Amount = amount.Or(inc.Amount)
			if cmd.Flags().Changed("notes") {
				inc.Notes = notes
			}

			if err := app.Incomes.Update(ctx, inc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated income %s\n", formatter.ShortID(inc.ID))
			return nil
		},
	}

	cmd.Flags().Var(&date, "date", "Date received")
	cmd.Flags().Var(&amount, "amount", "Amount received")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newIncomeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete an income",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveIncomeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Incomes.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted income %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
