package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/moneybae/internal/db"
	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/repository"
	"github.com/google/uuid"
)

// Holiday changes never touch saved plans; plan hours are recomputed only on
// plan edit or an explicit recalculation.
type holidayService struct {
	holidays repository.HolidayRepo
	ptos     repository.PTORepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewHolidayService(
	holidays repository.HolidayRepo,
	ptos repository.PTORepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) HolidayService {
	return &holidayService{
		holidays: holidays,
		ptos:     ptos,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *holidayService) Create(ctx context.Context, h *domain.HolidayHours) error {
	if err := s.validate(ctx, h); err != nil {
		return fmt.Errorf("creating holiday: %w", err)
	}
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	h.CreatedAt = time.Now().UTC()
	return s.holidays.Create(ctx, h)
}

func (s *holidayService) validate(ctx context.Context, h *domain.HolidayHours) error {
	h.Date = domain.DateOf(h.Date)
	if err := h.Validate(); err != nil {
		return err
	}
	pto, err := s.ptos.GetByID(ctx, h.PTOID)
	if err != nil {
		return err
	}
	if !pto.Contains(h.Date) {
		return fmt.Errorf("%s not in %d: %w", h.Date.Format(domain.DateLayout), pto.Year, ErrOutsideYear)
	}
	return nil
}

func (s *holidayService) GetByID(ctx context.Context, id string) (*domain.HolidayHours, error) {
	return s.holidays.GetByID(ctx, id)
}

func (s *holidayService) ListByPTO(ctx context.Context, ptoID string) ([]*domain.HolidayHours, error) {
	return s.holidays.ListByPTO(ctx, ptoID)
}

func (s *holidayService) Update(ctx context.Context, h *domain.HolidayHours) error {
	if err := s.validate(ctx, h); err != nil {
		return fmt.Errorf("updating holiday: %w", err)
	}
	return s.holidays.Update(ctx, h)
}

func (s *holidayService) Delete(ctx context.Context, id string) error {
	return s.holidays.Delete(ctx, id)
}

func (s *holidayService) CopyFromPreviousYear(ctx context.Context, ptoID string) (count int, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"pto": ptoID}
	defer func() { observe(ctx, s.observer, "copy-holidays", startedAt, &err, fields) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPTOs := repository.NewSQLitePTORepo(tx)
		txHolidays := repository.NewSQLiteHolidayRepo(tx)

		current, err := txPTOs.GetByID(ctx, ptoID)
		if err != nil {
			return err
		}
		prev, err := txPTOs.GetByYear(ctx, current.Year-1)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("copying holidays into %d: %w", current.Year, ErrNoPreviousYear)
		}
		if err != nil {
			return err
		}

		source, err := txHolidays.ListByPTO(ctx, prev.ID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, h := range source {
			copied := &domain.HolidayHours{
				ID:        uuid.New().String(),
				PTOID:     current.ID,
				Date:      domain.ShiftYear(h.Date, current.Year),
				Name:      h.Name,
				Hours:     h.Hours,
				CreatedAt: now,
			}
			if err := txHolidays.Create(ctx, copied); err != nil {
				return err
			}
		}
		count = len(source)
		return nil
	})
	if err != nil {
		return 0, err
	}
	fields["copied"] = count
	return count, nil
}
