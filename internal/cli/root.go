package cli

import (
	"github.com/alexanderramin/moneybae/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Bills    service.BillService
	Incomes  service.IncomeService
	Ledgers  service.LedgerService
	PTO      service.PTOService
	Holidays service.HolidayService
	Plans    service.PlanService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	Version string
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "moneybae" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	version := app.Version
	if version == "" {
		version = "dev"
	}

	root := &cobra.Command{
		Use:           "moneybae",
		Short:         "PTO hours and personal finance tracker",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newBillCmd(app),
		newIncomeCmd(app),
		newLedgerCmd(app),
		newPTOCmd(app),
		newHolidayCmd(app),
		newPlanCmd(app),
		newExportCmd(app),
		newTUICmd(app),
	)

	return root
}
