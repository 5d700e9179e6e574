package cli

import (
	"fmt"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newBillCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Manage recurring bill templates",
	}

	cmd.AddCommand(
		newBillAddCmd(app),
		newBillListCmd(app),
		newBillEditCmd(app),
		newBillRemoveCmd(app),
	)

	return cmd
}

func newBillAddCmd(app *App) *cobra.Command {
	var (
		name, notes string
		amount      decimalFlag
		dueDay      int
		autoPay     bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &domain.Bill{
				Name:      name,
				Amount:    amount.Or(decimal.Zero),
				IsAutoPay: autoPay,
				Notes:     notes,
			}
			if cmd.Flags().Changed("due-day") {
				b.DueDay = &dueDay
			}
			if err := app.Bills.Create(cmd.Context(), b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created bill %s (%s) %s\n",
				b.Name, formatter.ShortID(b.ID), formatter.Money(b.Amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Bill name")
	cmd.Flags().Var(&amount, "amount", "Default amount")
	cmd.Flags().IntVar(&dueDay, "due-day", 0, "Day of month the bill is due (1-31)")
	cmd.Flags().BoolVar(&autoPay, "autopay", false, "Bill is paid automatically")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newBillListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List bills",
		RunE: func(cmd *cobra.Command, args []string) error {
			bills, err := app.Bills.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBillList(bills))
			return nil
		},
	}
}

func newBillEditCmd(app *App) *cobra.Command {
	var (
		name, notes string
		amount      decimalFlag
		dueDay      int
		autoPay     bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveBillID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Bills.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				b.Name = name
			}
			if flags.Changed("amount") {
				b.Amount = amount.Or(b.Amount)
			}
			if flags.Changed("due-day") {
				if dueDay == 0 {
					b.DueDay = nil
				} else {
					b.DueDay = &dueDay
				}
			}
			if flags.Changed("autopay") {
				b.IsAutoPay = autoPay
			}
			if flags.Changed("notes") {
				b.Notes = notes
			}

			if err := app.Bills.Update(ctx, b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated bill %s\n", b.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Bill name")
	cmd.Flags().Var(&amount, "amount", "Default amount")
	cmd.Flags().IntVar(&dueDay, "due-day", 0, "Day of month the bill is due (0 clears)")
	cmd.Flags().BoolVar(&autoPay, "autopay", false, "Bill is paid automatically")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newBillRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a bill and its ledger lines",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveBillID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Bills.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted bill %s\n", formatter.ShortID(id))
			return nil
		},
	}
}
