package service

import (
	"context"
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/shopspring/decimal"
)

type BillService interface {
	Create(ctx context.Context, b *domain.Bill) error
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	List(ctx context.Context) ([]*domain.Bill, error)
	Update(ctx context.Context, b *domain.Bill) error
	Delete(ctx context.Context, id string) error
}

type IncomeService interface {
	Create(ctx context.Context, i *domain.Income) error
	GetByID(ctx context.Context, id string) (*domain.Income, error)
	List(ctx context.Context) ([]*domain.Income, error)
	// ListUnassignedInMonth returns incomes without a ledger dated in month's calendar month.
	ListUnassignedInMonth(ctx context.Context, month time.Time) ([]*domain.Income, error)
	Update(ctx context.Context, i *domain.Income) error
	Delete(ctx context.Context, id string) error
}

// LedgerOverview pairs a ledger with its rollup for list views.
type LedgerOverview struct {
	Ledger  *domain.Ledger
	Summary domain.LedgerSummary
}

// LedgerDetail is everything shown for a single ledger.
type LedgerDetail struct {
	Ledger  *domain.Ledger
	Bills   []domain.LedgerBillLine
	Incomes []*domain.Income
	Summary domain.LedgerSummary
}

type LedgerService interface {
	Create(ctx context.Context, l *domain.Ledger) error
	GetByID(ctx context.Context, id string) (*domain.Ledger, error)
	List(ctx context.Context) ([]LedgerOverview, error)
	Detail(ctx context.Context, id string) (*LedgerDetail, error)
	Update(ctx context.Context, l *domain.Ledger) error
	Delete(ctx context.Context, id string) error

	// Duplicate copies a ledger and its bills into a new ledger. Each copied
	// bill starts paid only when its bill is on auto-pay.
	Duplicate(ctx context.Context, sourceID, name string, date time.Time) (*domain.Ledger, error)

	AvailableBills(ctx context.Context, ledgerID string) ([]*domain.Bill, error)
	AddBill(ctx context.Context, ledgerID, billID string) (*domain.LedgerBill, error)
	GetBill(ctx context.Context, ledgerBillID string) (*domain.LedgerBill, error)
	UpdateBill(ctx context.Context, lb *domain.LedgerBill) error
	TogglePaid(ctx context.Context, ledgerBillID string) (bool, error)
	RemoveBill(ctx context.Context, ledgerBillID string) error

	AssignableIncomes(ctx context.Context, ledgerID string) ([]*domain.Income, error)
	AssignIncome(ctx context.Context, ledgerID, incomeID string) error
	UnassignIncome(ctx context.Context, incomeID string) error
}

// PTOOverview pairs a PTO year with its rollup for list views.
type PTOOverview struct {
	PTO     *domain.PTO
	Summary domain.PTOSummary
}

// PTODetail is everything shown for a single PTO year.
type PTODetail struct {
	PTO      *domain.PTO
	Plans    []*domain.PTOPlan
	Holidays []*domain.HolidayHours
	Summary  domain.PTOSummary
}

type PTOService interface {
	// Create stores a PTO year. With rollover enabled and a previous year on
	// record, the carried hours are that year's non-negative remainder.
	Create(ctx context.Context, p *domain.PTO) error
	GetByID(ctx context.Context, id string) (*domain.PTO, error)
	GetByYear(ctx context.Context, year int) (*domain.PTO, error)
	List(ctx context.Context) ([]PTOOverview, error)
	Detail(ctx context.Context, id string) (*PTODetail, error)
	Update(ctx context.Context, p *domain.PTO) error
	Delete(ctx context.Context, id string) error
}

type HolidayService interface {
	Create(ctx context.Context, h *domain.HolidayHours) error
	GetByID(ctx context.Context, id string) (*domain.HolidayHours, error)
	ListByPTO(ctx context.Context, ptoID string) ([]*domain.HolidayHours, error)
	Update(ctx context.Context, h *domain.HolidayHours) error
	Delete(ctx context.Context, id string) error
	// CopyFromPreviousYear copies the prior year's holidays into ptoID's year
	// and returns how many were created.
	CopyFromPreviousYear(ctx context.Context, ptoID string) (int, error)
}

type PlanService interface {
	// Create stores a plan. A nil hours computes the hours from the plan's
	// dates and its year's holidays; otherwise hours is stored as custom.
	Create(ctx context.Context, p *domain.PTOPlan, hours *decimal.Decimal) error
	GetByID(ctx context.Context, id string) (*domain.PTOPlan, error)
	ListByPTO(ctx context.Context, ptoID string) ([]*domain.PTOPlan, error)
	// Update follows the same hours rules as Create.
	Update(ctx context.Context, p *domain.PTOPlan, hours *decimal.Decimal) error
	// Recalculate recomputes a non-custom plan against the current holidays.
	Recalculate(ctx context.Context, id string) (*domain.PTOPlan, error)
	SetStatus(ctx context.Context, id string, status domain.PlanStatus) error
	Delete(ctx context.Context, id string) error
}
