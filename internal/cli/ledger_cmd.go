package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newLedgerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Manage monthly ledgers",
	}

	cmd.AddCommand(
		newLedgerAddCmd(app),
		newLedgerListCmd(app),
		newLedgerShowCmd(app),
		newLedgerEditCmd(app),
		newLedgerRemoveCmd(app),
		newLedgerDuplicateCmd(app),
		newLedgerAddBillCmd(app),
		newLedgerEditBillCmd(app),
		newLedgerTogglePaidCmd(app),
		newLedgerRemoveBillCmd(app),
		newLedgerAssignCmd(app),
		newLedgerUnassignCmd(app),
	)

	return cmd
}

func newLedgerAddCmd(app *App) *cobra.Command {
	var (
		name, notes string
		date        dateFlag
		balance     decimalFlag
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := &domain.Ledger{
				Name:        name,
				Date:        date.Time(),
				BankBalance: balance.Or(decimal.Zero),
				Notes:       notes,
			}
			if err := app.Ledgers.Create(cmd.Context(), l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created ledger %s for %s (%s)\n",
				l.Name, formatter.Month(l.Date), formatter.ShortID(l.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Ledger name")
	cmd.Flags().Var(&date, "date", "Ledger date; its month scopes incomes")
	cmd.Flags().Var(&balance, "balance", "Starting bank balance")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newLedgerListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List ledgers with their net",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledgers, err := app.Ledgers.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLedgerList(ledgers))
			return nil
		},
	}
}

func newLedgerShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Aliases: []string{"inspect"},
		Short:   "Show a ledger's bills, incomes and summary",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLedgerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			detail, err := app.Ledgers.Detail(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLedgerDetail(detail))
			return nil
		},
	}
}

func newLedgerEditCmd(app *App) *cobra.Command {
	var (
		name, notes string
		date        dateFlag
		balance     decimalFlag
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLedgerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			l, err := app.Ledgers.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				l.Name = name
			}
			if date.IsSet() {
				l.Date = date.Time()
			}
			l.BankBalance = balance.Or(l.BankBalance)
			if cmd.Flags().Changed("notes") {
				l.Notes = notes
			}
			if err := app.Ledgers.Update(ctx, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated ledger %s\n", l.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Ledger name")
	cmd.Flags().Var(&date, "date", "Ledger date")
	cmd.Flags().Var(&balance, "balance", "Bank balance")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newLedgerRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a ledger; its incomes become unassigned",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLedgerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			ok, err := confirmDestructive(app, "Delete this ledger and its bill lines?")
			if err != nil || !ok {
				return err
			}
			if err := app.Ledgers.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted ledger %s\n", formatter.ShortID(id))
			return nil
		},
	}
}

func newLedgerDuplicateCmd(app *App) *cobra.Command {
	var (
		name string
		date dateFlag
	)

	cmd := &cobra.Command{
		Use:     "dup <id>",
		Aliases: []string{"duplicate"},
		Short:   "Copy a ledger and its bills into a new month",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveLedgerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			dup, err := app.Ledgers.Duplicate(ctx, id, name, date.Time())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created ledger %s for %s (%s)\n",
				dup.Name, formatter.Month(dup.Date), formatter.ShortID(dup.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New ledger name")
	cmd.Flags().Var(&date, "date", "New ledger date")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newLedgerAddBillCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "add-bill <ledger> [bill...]",
		Short: "Add bills to a ledger, or list the ones that can be added",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			ledgerID, err := resolveLedgerID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var billIDs []string
			switch {
			case all:
				available, err := app.Ledgers.AvailableBills(ctx, ledgerID)
				if err != nil {
					return err
				}
				for _, b := range available {
					billIDs = append(billIDs, b.ID)
				}
			case len(args) == 1:
				available, err := app.Ledgers.AvailableBills(ctx, ledgerID)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatBillList(available))
				return nil
			default:
				for _, input := range args[1:] {
					id, err := resolveBillID(ctx, app, input)
					if err != nil {
						return err
					}
					billIDs = append(billIDs, id)
				}
			}

			for _, billID := range billIDs {
				lb, err := app.Ledgers.AddBill(ctx, ledgerID, billID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Added %s %s (%s)\n",
					formatter.ShortID(billID), formatter.Money(lb.Amount), formatter.PaidPill(lb.IsPaid))
			}
			if len(billIDs) == 0 {
				fmt.Fprintln(out, formatter.Dim("Every bill is already on this ledger."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Add every bill not yet on the ledger")

	return cmd
}

func newLedgerEditBillCmd(app *App) *cobra.Command {
	var (
		notes  string
		amount decimalFlag
		due    string
		paid   bool
	)

	cmd := &cobra.Command{
		Use:   "edit-bill <ledger> <line>",
		Short: "Update a bill line on a ledger",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ledgerID, err := resolveLedgerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			lineID, err := resolveLedgerBillID(ctx, app, ledgerID, args[1])
			if err != nil {
				return err
			}
			lb, err := app.Ledgers.GetBill(ctx, lineID)
			if err != nil {
				return err
			}

			lb.Amount = amount.Or(lb.Amount)
			if cmd.Flags().Changed("due") {
				if strings.TrimSpace(due) == "" {
					lb.DueDate = nil
				} else {
					d, err := domain.ParseDate(due)
					if err != nil {
						return err
					}
					lb.DueDate = &d
				}
			}
			if cmd.Flags().Changed("paid") {
				lb.IsPaid = paid
			}
			if cmd.Flags().Changed("notes") {
				lb.Notes = notes
			}

			if err := app.Ledgers.UpdateBill(ctx, lb); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated ledger bill %s\n", formatter.ShortID(lb.ID))
			return nil
		},
	}

	cmd.Flags().Var(&amount, "amount", "Amount for this month")
	cmd.Flags().StringVar(&due, "due", "", "Due date (blank clears)")
	cmd.Flags().BoolVar(&paid, "paid", false, "Paid state")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newLedgerTogglePaidCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-paid <ledger> <line>",
		Short: "Flip the paid state of a bill line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ledgerID, err := resolveLedgerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			lineID, err := resolveLedgerBillID(ctx, app, ledgerID, args[1])
			if err != nil {
				return err
			}
			paid, err := app.Ledgers.TogglePaid(ctx, lineID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.ShortID(lineID), formatter.PaidPill(paid))
			return nil
		},
	}
}

func newLedgerRemoveBillCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm-bill <ledger> <line>",
		Short: "Remove a bill line from a ledger",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ledgerID, err := resolveLedgerID(ctx, app, args[0])
			if err != nil {
				return err
			}
			lineID, err := resolveLedgerBillID(ctx, app, ledgerID, args[1])
			if err != nil {
				return err
			}
			if err := app.Ledgers.RemoveBill(ctx, lineID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed ledger bill %s\n", formatter.ShortID(lineID))
			return nil
		},
	}
}

func newLedgerAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <ledger> [income...]",
		Short: "Assign incomes to a ledger, or list the ones that can be assigned",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			ledgerID, err := resolveLedgerID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				incomes, err := app.Ledgers.AssignableIncomes(ctx, ledgerID)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatIncomeList(incomes))
				return nil
			}

			for _, input := range args[1:] {
				incomeID, err := resolveIncomeID(ctx, app, input)
				if err != nil {
					return err
				}
				if err := app.Ledgers.AssignIncome(ctx, ledgerID, incomeID); err != nil {
					return err
				}
				fmt.Fprintf(out, "Assigned income %s\n", formatter.ShortID(incomeID))
			}
			return nil
		},
	}
}

func newLedgerUnassignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <income>",
		Short: "Detach an income from its ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			incomeID, err := resolveIncomeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Ledgers.UnassignIncome(ctx, incomeID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unassigned income %s\n", formatter.ShortID(incomeID))
			return nil
		},
	}
}
