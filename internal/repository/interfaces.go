package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
)

type BillRepo interface {
	Create(ctx context.Context, b *domain.Bill) error
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	List(ctx context.Context) ([]*domain.Bill, error)
	Update(ctx context.Context, b *domain.Bill) error
	Delete(ctx context.Context, id string) error
}

type IncomeRepo interface {
	Create(ctx context.Context, i *domain.Income) error
	GetByID(ctx context.Context, id string) (*domain.Income, error)
	List(ctx context.Context) ([]*domain.Income, error)
	ListByLedger(ctx context.Context, ledgerID string) ([]*domain.Income, error)
	// ListUnassigned returns incomes with no ledger dated in [from, to].
	ListUnassigned(ctx context.Context, from, to time.Time) ([]*domain.Income, error)
	Update(ctx context.Context, i *domain.Income) error
	SetLedger(ctx context.Context, id string, ledgerID *string) error
	Delete(ctx context.Context, id string) error
}

type LedgerRepo interface {
	Create(ctx context.Context, l *domain.Ledger) error
	GetByID(ctx context.Context, id string) (*domain.Ledger, error)
	List(ctx context.Context) ([]*domain.Ledger, error)
	Update(ctx context.Context, l *domain.Ledger) error
	Delete(ctx context.Context, id string) error
}

type LedgerBillRepo interface {
	Create(ctx context.Context, lb *domain.LedgerBill) error
	GetByID(ctx context.Context, id string) (*domain.LedgerBill, error)
	ListByLedger(ctx context.Context, ledgerID string) ([]domain.LedgerBillLine, error)
	// ListAvailableBills returns the bills not yet on the ledger.
	ListAvailableBills(ctx context.Context, ledgerID string) ([]*domain.Bill, error)
	Update(ctx context.Context, lb *domain.LedgerBill) error
	SetPaid(ctx context.Context, id string, paid bool) error
	Delete(ctx context.Context, id string) error
}

type PTORepo interface {
	Create(ctx context.Context, p *domain.PTO) error
	GetByID(ctx context.Context, id string) (*domain.PTO, error)
	GetByYear(ctx context.Context, year int) (*domain.PTO, error)
	List(ctx context.Context) ([]*domain.PTO, error)
	Update(ctx context.Context, p *domain.PTO) error
	Delete(ctx context.Context, id string) error
}

type HolidayRepo interface {
	Create(ctx context.Context, h *domain.HolidayHours) error
	GetByID(ctx context.Context, id string) (*domain.HolidayHours, error)
	ListByPTO(ctx context.Context, ptoID string) ([]*domain.HolidayHours, error)
	Update(ctx context.Context, h *domain.HolidayHours) error
	Delete(ctx context.Context, id string) error
}

type PTOPlanRepo interface {
	Create(ctx context.Context, p *domain.PTOPlan) error
	GetByID(ctx context.Context, id string) (*domain.PTOPlan, error)
	ListByPTO(ctx context.Context, ptoID string) ([]*domain.PTOPlan, error)
	Update(ctx context.Context, p *domain.PTOPlan) error
	Delete(ctx context.Context, id string) error
}
