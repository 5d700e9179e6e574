package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/moneybae/internal/cli"
	"github.com/alexanderramin/moneybae/internal/config"
	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/logging"
	"github.com/alexanderramin/moneybae/internal/repository"
	"github.com/alexanderramin/moneybae/internal/service"
	"github.com/mattn/go-isatty"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	log.WithField("path", cfg.DBPath).Debug("database ready")

	// Wire repositories
	billRepo := repository.NewSQLiteBillRepo(database)
	incomeRepo := repository.NewSQLiteIncomeRepo(database)
	ledgerRepo := repository.NewSQLiteLedgerRepo(database)
	ledgerBillRepo := repository.NewSQLiteLedgerBillRepo(database)
	ptoRepo := repository.NewSQLitePTORepo(database)
	holidayRepo := repository.NewSQLiteHolidayRepo(database)
	planRepo := repository.NewSQLitePTOPlanRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(log))
	}

	app := &cli.App{
		Bills:    service.NewBillService(billRepo),
		Incomes:  service.NewIncomeService(incomeRepo),
		Ledgers:  service.NewLedgerService(ledgerRepo, ledgerBillRepo, billRepo, incomeRepo, uow, observers...),
		PTO:      service.NewPTOService(ptoRepo, planRepo, holidayRepo),
		Holidays: service.NewHolidayService(holidayRepo, ptoRepo, uow, observers...),
		Plans:    service.NewPlanService(planRepo, holidayRepo, observers...),
		Version:  version,
	}

	// Forms, confirmations and the bare-command TUI need a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
