package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/repository"
	"github.com/google/uuid"
)

type incomeService struct {
	incomes repository.IncomeRepo
}

func NewIncomeService(incomes repository.IncomeRepo) IncomeService {
	return &incomeService{incomes: incomes}
}

func (s *incomeService) Create(ctx context.Context, i *domain.Income) error {
	i.Date = domain.DateOf(i.Date)
	if err := i.Validate(); err != nil {
		return fmt.Errorf("creating income: %w", err)
	}
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now
	return s.incomes.Create(ctx, i)
}

func (s *incomeService) GetByID(ctx context.Context, id string) (*domain.Income, error) {
	return s.incomes.GetByID(ctx, id)
}

func (s *incomeService) List(ctx context.Context) ([]*domain.Income, error) {
	return s.incomes.List(ctx)
}

func (s *incomeService) ListUnassignedInMonth(ctx context.Context, month time.Time) ([]*domain.Income, error) {
	from, to := monthBounds(month)
	return s.incomes.ListUnassigned(ctx, from, to)
}

func (s *incomeService) Update(ctx context.Context, i *domain.Income) error {
	i.Date = domain.DateOf(i.Date)
	if err := i.Validate(); err != nil {
		return fmt.Errorf("updating income: %w", err)
	}
	i.UpdatedAt = time.Now().UTC()
	return s.incomes.Update(ctx, i)
}

func (s *incomeService) Delete(ctx context.Context, id string) error {
	return s.incomes.Delete(ctx, id)
}
