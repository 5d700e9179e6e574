package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/ptohours"
	"github.com/alexanderramin/moneybae/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type planService struct {
	plans    repository.PTOPlanRepo
	holidays repository.HolidayRepo
	observer UseCaseObserver
}

func NewPlanService(
	plans repository.PTOPlanRepo,
	holidays repository.HolidayRepo,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		plans:    plans,
		holidays: holidays,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Create(ctx context.Context, p *domain.PTOPlan, hours *decimal.Decimal) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"pto": p.PTOID, "custom_hours": hours != nil}
	defer func() { observe(ctx, s.observer, "create-plan", startedAt, &err, fields) }()

	if p.Status == "" {
		p.Status = domain.PlanPlanned
	}
	if err = s.prepare(ctx, p, hours); err != nil {
		return fmt.Errorf("creating plan: %w", err)
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	fields["hours"] = p.Hours.String()
	return s.plans.Create(ctx, p)
}

func (s *planService) Update(ctx context.Context, p *domain.PTOPlan, hours *decimal.Decimal) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"plan": p.ID, "custom_hours": hours != nil}
	defer func() { observe(ctx, s.observer, "update-plan", startedAt, &err, fields) }()

	if err = s.prepare(ctx, p, hours); err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	p.UpdatedAt = time.Now().UTC()
	fields["hours"] = p.Hours.String()
	return s.plans.Update(ctx, p)
}

// prepare normalises and validates p, then sets its hours: the override when
// given, otherwise the calculator result for the plan's range.
func (s *planService) prepare(ctx context.Context, p *domain.PTOPlan, hours *decimal.Decimal) error {
	p.StartDate = domain.DateOf(p.StartDate)
	p.EndDate = domain.DateOf(p.EndDate)
	if err := p.Validate(); err != nil {
		return err
	}
	if hours != nil {
		p.Hours = *hours
		p.CustomHours = true
		return nil
	}
	calculated, err := s.calculate(ctx, p)
	if err != nil {
		return err
	}
	p.Hours = calculated
	p.CustomHours = false
	return nil
}

func (s *planService) calculate(ctx context.Context, p *domain.PTOPlan) (decimal.Decimal, error) {
	holidays, err := s.holidays.ListByPTO(ctx, p.PTOID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("loading holidays: %w", err)
	}
	return ptohours.CalculatePTOHours(p.StartDate, p.EndDate, toCalculatorHolidays(holidays)), nil
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.PTOPlan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) ListByPTO(ctx context.Context, ptoID string) ([]*domain.PTOPlan, error) {
	return s.plans.ListByPTO(ctx, ptoID)
}

func (s *planService) Recalculate(ctx context.Context, id string) (p *domain.PTOPlan, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"plan": id}
	defer func() { observe(ctx, s.observer, "recalculate-plan", startedAt, &err, fields) }()

	p, err = s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.CustomHours {
		return nil, fmt.Errorf("recalculating %s: %w", p.Name, ErrCustomHours)
	}
	before := p.Hours
	if p.Hours, err = s.calculate(ctx, p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()
	if err = s.plans.Update(ctx, p); err != nil {
		return nil, err
	}
	fields["before"] = before.String()
	fields["after"] = p.Hours.String()
	return p, nil
}

func (s *planService) SetStatus(ctx context.Context, id string, status domain.PlanStatus) error {
	st, err := domain.ParsePlanStatus(string(status))
	if err != nil {
		return err
	}
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Status = st
	p.UpdatedAt = time.Now().UTC()
	return s.plans.Update(ctx, p)
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}
