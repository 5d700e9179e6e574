package testutil

import (
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// D parses a decimal literal and panics on malformed input.
func D(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Date returns midnight UTC of the given calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return domain.NewDate(year, month, day)
}

// Bill options
type BillOption func(*domain.Bill)

func WithDueDay(day int) BillOption {
	return func(b *domain.Bill) {
		b.DueDay = &day
	}
}

func WithAutoPay() BillOption {
	return func(b *domain.Bill) {
		b.IsAutoPay = true
	}
}

func NewTestBill(name, amount string, opts ...BillOption) *domain.Bill {
	now := time.Now().UTC()
	b := &domain.Bill{
		ID:        uuid.New().String(),
		Name:      name,
		Amount:    D(amount),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Income options
type IncomeOption func(*domain.Income)

func WithIncomeLedger(ledgerID string) IncomeOption {
	return func(i *domain.Income) {
		i.LedgerID = &ledgerID
	}
}

func WithIncomeNotes(notes string) IncomeOption {
	return func(i *domain.Income) {
		i.Notes = notes
	}
}

func NewTestIncome(date time.Time, amount string, opts ...IncomeOption) *domain.Income {
	now := time.Now().UTC()
	i := &domain.Income{
		ID:        uuid.New().String(),
		Date:      date,
		Amount:    D(amount),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func NewTestLedger(name string, date time.Time, bankBalance string) *domain.Ledger {
	now := time.Now().UTC()
	return &domain.Ledger{
		ID:          uuid.New().String(),
		Name:        name,
		Date:        date,
		BankBalance: D(bankBalance),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// LedgerBill options
type LedgerBillOption func(*domain.LedgerBill)

func WithPaid() LedgerBillOption {
	return func(lb *domain.LedgerBill) {
		lb.IsPaid = true
	}
}

func WithLedgerBillDueDate(d time.Time) LedgerBillOption {
	return func(lb *domain.LedgerBill) {
		lb.DueDate = &d
	}
}

func NewTestLedgerBill(ledgerID, billID, amount string, opts ...LedgerBillOption) *domain.LedgerBill {
	now := time.Now().UTC()
	lb := &domain.LedgerBill{
		ID:        uuid.New().String(),
		LedgerID:  ledgerID,
		BillID:    billID,
		Amount:    D(amount),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(lb)
	}
	return lb
}

// PTO options
type PTOOption func(*domain.PTO)

func WithRollover(prevYearHours string) PTOOption {
	return func(p *domain.PTO) {
		p.RolloverHours = true
		p.PrevYearHours = D(prevYearHours)
	}
}

func NewTestPTO(year int, availableHours string, opts ...PTOOption) *domain.PTO {
	now := time.Now().UTC()
	p := &domain.PTO{
		ID:             uuid.New().String(),
		Year:           year,
		AvailableHours: D(availableHours),
		PrevYearHours:  decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestHoliday(ptoID, name string, date time.Time, hours string) *domain.HolidayHours {
	return &domain.HolidayHours{
		ID:        uuid.New().String(),
		PTOID:     ptoID,
		Date:      date,
		Name:      name,
		Hours:     D(hours),
		CreatedAt: time.Now().UTC(),
	}
}

// PTOPlan options
type PlanOption func(*domain.PTOPlan)

func WithPlanStatus(s domain.PlanStatus) PlanOption {
	return func(p *domain.PTOPlan) {
		p.Status = s
	}
}

func WithCustomHours(hours string) PlanOption {
	return func(p *domain.PTOPlan) {
		p.Hours = D(hours)
		p.CustomHours = true
	}
}

func NewTestPlan(ptoID, name string, start, end time.Time, hours string, opts ...PlanOption) *domain.PTOPlan {
	now := time.Now().UTC()
	p := &domain.PTOPlan{
		ID:        uuid.New().String(),
		PTOID:     ptoID,
		StartDate: start,
		EndDate:   end,
		Name:      name,
		Hours:     D(hours),
		Status:    domain.PlanPlanned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
