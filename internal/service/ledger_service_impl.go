package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ledgerService struct {
	ledgers     repository.LedgerRepo
	ledgerBills repository.LedgerBillRepo
	bills       repository.BillRepo
	incomes     repository.IncomeRepo
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

func NewLedgerService(
	ledgers repository.LedgerRepo,
	ledgerBills repository.LedgerBillRepo,
	bills repository.BillRepo,
	incomes repository.IncomeRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) LedgerService {
	return &ledgerService{
		ledgers:     ledgers,
		ledgerBills: ledgerBills,
		bills:       bills,
		incomes:     incomes,
		uow:         uow,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *ledgerService) Create(ctx context.Context, l *domain.Ledger) error {
	l.Date = domain.DateOf(l.Date)
	if err := l.Validate(); err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	return s.ledgers.Create(ctx, l)
}

func (s *ledgerService) GetByID(ctx context.Context, id string) (*domain.Ledger, error) {
	return s.ledgers.GetByID(ctx, id)
}

func (s *ledgerService) List(ctx context.Context) ([]LedgerOverview, error) {
	ledgers, err := s.ledgers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LedgerOverview, 0, len(ledgers))
	for _, l := range ledgers {
		bills, incomes, err := s.loadParts(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, LedgerOverview{Ledger: l, Summary: domain.Summarize(l, bills, incomes)})
	}
	return out, nil
}

func (s *ledgerService) Detail(ctx context.Context, id string) (*LedgerDetail, error) {
	l, err := s.ledgers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	bills, incomes, err := s.loadParts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &LedgerDetail{
		Ledger:  l,
		Bills:   bills,
		Incomes: incomes,
		Summary: domain.Summarize(l, bills, incomes),
	}, nil
}

// loadParts fetches a ledger's bill lines and incomes concurrently.
func (s *ledgerService) loadParts(ctx context.Context, ledgerID string) ([]domain.LedgerBillLine, []*domain.Income, error) {
	var bills []domain.LedgerBillLine
	var incomes []*domain.Income

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bills, err = s.ledgerBills.ListByLedger(gctx, ledgerID)
		return err
	})
	g.Go(func() error {
		var err error
		incomes, err = s.incomes.ListByLedger(gctx, ledgerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("loading ledger %s: %w", ledgerID, err)
	}
	return bills, incomes, nil
}

func (s *ledgerService) Update(ctx context.Context, l *domain.Ledger) error {
	l.Date = domain.DateOf(l.Date)
	if err := l.Validate(); err != nil {
		return fmt.Errorf("updating ledger: %w", err)
	}
	l.UpdatedAt = time.Now().UTC()
	return s.ledgers.Update(ctx, l)
}

func (s *ledgerService) Delete(ctx context.Context, id string) error {
	return s.ledgers.Delete(ctx, id)
}

func (s *ledgerService) Duplicate(ctx context.Context, sourceID, name string, date time.Time) (dup *domain.Ledger, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source_ledger": sourceID}
	defer func() { observe(ctx, s.observer, "duplicate-ledger", startedAt, &err, fields) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txLedgers := repository.NewSQLiteLedgerRepo(tx)
		txLedgerBills := repository.NewSQLiteLedgerBillRepo(tx)
		txBills := repository.NewSQLiteBillRepo(tx)

		src, err := txLedgers.GetByID(ctx, sourceID)
		if err != nil {
			return err
		}
		lines, err := txLedgerBills.ListByLedger(ctx, sourceID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		dup = &domain.Ledger{
			ID:          uuid.New().String(),
			Name:        name,
			Date:        domain.DateOf(date),
			BankBalance: src.BankBalance,
			Notes:       src.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := dup.Validate(); err != nil {
			return fmt.Errorf("duplicating ledger: %w", err)
		}
		if err := txLedgers.Create(ctx, dup); err != nil {
			return err
		}

		for _, line := range lines {
			bill, err := txBills.GetByID(ctx, line.BillID)
			if err != nil {
				return err
			}
			copied := &domain.LedgerBill{
				ID:        uuid.New().String(),
				LedgerID:  dup.ID,
				BillID:    line.BillID,
				Amount:    line.Amount,
				DueDate:   line.DueDate,
				IsPaid:    bill.IsAutoPay,
				Notes:     line.Notes,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := txLedgerBills.Create(ctx, copied); err != nil {
				return err
			}
		}
		fields["bill_count"] = len(lines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["ledger"] = dup.ID
	return dup, nil
}

func (s *ledgerService) AvailableBills(ctx context.Context, ledgerID string) ([]*domain.Bill, error) {
	return s.ledgerBills.ListAvailableBills(ctx, ledgerID)
}

func (s *ledgerService) AddBill(ctx context.Context, ledgerID, billID string) (*domain.LedgerBill, error) {
	l, err := s.ledgers.GetByID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	bill, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}

	available, err := s.ledgerBills.ListAvailableBills(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	if !containsBill(available, billID) {
		return nil, fmt.Errorf("adding %s: %w", bill.Name, ErrBillAlreadyOnLedger)
	}

	now := time.Now().UTC()
	lb := &domain.LedgerBill{
		ID:        uuid.New().String(),
		LedgerID:  l.ID,
		BillID:    bill.ID,
		Amount:    bill.Amount,
		DueDate:   bill.DueDateIn(l.Date),
		IsPaid:    bill.IsAutoPay,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ledgerBills.Create(ctx, lb); err != nil {
		return nil, err
	}
	return lb, nil
}

func containsBill(bills []*domain.Bill, id string) bool {
	for _, b := range bills {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (s *ledgerService) GetBill(ctx context.Context, ledgerBillID string) (*domain.LedgerBill, error) {
	return s.ledgerBills.GetByID(ctx, ledgerBillID)
}

func (s *ledgerService) UpdateBill(ctx context.Context, lb *domain.LedgerBill) error {
	if err := lb.Validate(); err != nil {
		return fmt.Errorf("updating ledger bill: %w", err)
	}
	if lb.DueDate != nil {
		d := domain.DateOf(*lb.DueDate)
		lb.DueDate = &d
	}
	lb.UpdatedAt = time.Now().UTC()
	return s.ledgerBills.Update(ctx, lb)
}

func (s *ledgerService) TogglePaid(ctx context.Context, ledgerBillID string) (bool, error) {
	lb, err := s.ledgerBills.GetByID(ctx, ledgerBillID)
	if err != nil {
		return false, err
	}
	paid := !lb.IsPaid
	if err := s.ledgerBills.SetPaid(ctx, ledgerBillID, paid); err != nil {
		return false, err
	}
	return paid, nil
}

func (s *ledgerService) RemoveBill(ctx context.Context, ledgerBillID string) error {
	return s.ledgerBills.Delete(ctx, ledgerBillID)
}

func (s *ledgerService) AssignableIncomes(ctx context.Context, ledgerID string) ([]*domain.Income, error) {
	l, err := s.ledgers.GetByID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	from, to := monthBounds(l.Date)
	return s.incomes.ListUnassigned(ctx, from, to)
}

func (s *ledgerService) AssignIncome(ctx context.Context, ledgerID, incomeID string) error {
	l, err := s.ledgers.GetByID(ctx, ledgerID)
	if err != nil {
		return err
	}
	inc, err := s.incomes.GetByID(ctx, incomeID)
	if err != nil {
		return err
	}
	if inc.IsAssigned() {
		return fmt.Errorf("assigning income %s: %w", inc.ID, ErrIncomeAssigned)
	}
	if !domain.SameMonth(inc.Date, l.Date) {
		return fmt.Errorf("assigning income dated %s to %s: %w",
			inc.Date.Format(domain.DateLayout), l.Date.Format("January 2006"), ErrIncomeOutsideMonth)
	}
	return s.incomes.SetLedger(ctx, incomeID, &l.ID)
}

func (s *ledgerService) UnassignIncome(ctx context.Context, incomeID string) error {
	return s.incomes.SetLedger(ctx, incomeID, nil)
}
