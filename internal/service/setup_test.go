package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/repository"
	"github.com/alexanderramin/moneybae/internal/testutil"
)

type testRepos struct {
	db          *sql.DB
	uow         db.UnitOfWork
	bills       *repository.SQLiteBillRepo
	incomes     *repository.SQLiteIncomeRepo
	ledgers     *repository.SQLiteLedgerRepo
	ledgerBills *repository.SQLiteLedgerBillRepo
	ptos        *repository.SQLitePTORepo
	holidays    *repository.SQLiteHolidayRepo
	plans       *repository.SQLitePTOPlanRepo
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testRepos{
		db:          database,
		uow:         testutil.NewTestUoW(database),
		bills:       repository.NewSQLiteBillRepo(database),
		incomes:     repository.NewSQLiteIncomeRepo(database),
		ledgers:     repository.NewSQLiteLedgerRepo(database),
		ledgerBills: repository.NewSQLiteLedgerBillRepo(database),
		ptos:        repository.NewSQLitePTORepo(database),
		holidays:    repository.NewSQLiteHolidayRepo(database),
		plans:       repository.NewSQLitePTOPlanRepo(database),
	}
}

func (r *testRepos) ledgerService(uow db.UnitOfWork, observers ...UseCaseObserver) LedgerService {
	if uow == nil {
		uow = r.uow
	}
	return NewLedgerService(r.ledgers, r.ledgerBills, r.bills, r.incomes, uow, observers...)
}

func (r *testRepos) holidayService(uow db.UnitOfWork) HolidayService {
	if uow == nil {
		uow = r.uow
	}
	return NewHolidayService(r.holidays, r.ptos, uow)
}

func (r *testRepos) planService(observers ...UseCaseObserver) PlanService {
	return NewPlanService(r.plans, r.holidays, observers...)
}

func (r *testRepos) ptoService() PTOService {
	return NewPTOService(r.ptos, r.plans, r.holidays)
}
