package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ptoService struct {
	ptos     repository.PTORepo
	plans    repository.PTOPlanRepo
	holidays repository.HolidayRepo
}

func NewPTOService(ptos repository.PTORepo, plans repository.PTOPlanRepo, holidays repository.HolidayRepo) PTOService {
	return &ptoService{ptos: ptos, plans: plans, holidays: holidays}
}

func (s *ptoService) Create(ctx context.Context, p *domain.PTO) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("creating pto: %w", err)
	}
	if p.RolloverHours {
		carried, ok, err := s.carriedHours(ctx, p.Year-1)
		if err != nil {
			return err
		}
		if ok {
			p.PrevYearHours = carried
		}
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.ptos.Create(ctx, p)
}

// carriedHours returns the remaining hours of year, floored at zero, and
// whether that year exists.
func (s *ptoService) carriedHours(ctx context.Context, year int) (decimal.Decimal, bool, error) {
	prev, err := s.ptos.GetByYear(ctx, year)
	if errors.Is(err, repository.ErrNotFound) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	plans, err := s.plans.ListByPTO(ctx, prev.ID)
	if err != nil {
		return decimal.Zero, false, err
	}
	remaining := domain.SummarizePTO(prev, plans).HoursRemaining
	return decimal.Max(remaining, decimal.Zero), true, nil
}

func (s *ptoService) GetByID(ctx context.Context, id string) (*domain.PTO, error) {
	return s.ptos.GetByID(ctx, id)
}

func (s *ptoService) GetByYear(ctx context.Context, year int) (*domain.PTO, error) {
	return s.ptos.GetByYear(ctx, year)
}

func (s *ptoService) List(ctx context.Context) ([]PTOOverview, error) {
	ptos, err := s.ptos.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PTOOverview, 0, len(ptos))
	for _, p := range ptos {
		plans, err := s.plans.ListByPTO(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, PTOOverview{PTO: p, Summary: domain.SummarizePTO(p, plans)})
	}
	return out, nil
}

func (s *ptoService) Detail(ctx context.Context, id string) (*PTODetail, error) {
	p, err := s.ptos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	plans, err := s.plans.ListByPTO(ctx, id)
	if err != nil {
		return nil, err
	}
	holidays, err := s.holidays.ListByPTO(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PTODetail{
		PTO:      p,
		Plans:    plans,
		Holidays: holidays,
		Summary:  domain.SummarizePTO(p, plans),
	}, nil
}

func (s *ptoService) Update(ctx context.Context, p *domain.PTO) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("updating pto: %w", err)
	}
	p.UpdatedAt = time.Now().UTC()
	return s.ptos.Update(ctx, p)
}

func (s *ptoService) Delete(ctx context.Context, id string) error {
	return s.ptos.Delete(ctx, id)
}
