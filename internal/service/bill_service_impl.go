package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/repository"
	"github.com/google/uuid"
)

type billService struct {
	bills repository.BillRepo
}

func NewBillService(bills repository.BillRepo) BillService {
	return &billService{bills: bills}
}

func (s *billService) Create(ctx context.Context, b *domain.Bill) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("creating bill: %w", err)
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.bills.Create(ctx, b)
}

func (s *billService) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	return s.bills.GetByID(ctx, id)
}

func (s *billService) List(ctx context.Context) ([]*domain.Bill, error) {
	return s.bills.List(ctx)
}

func (s *billService) Update(ctx context.Context, b *domain.Bill) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("updating bill: %w", err)
	}
	b.UpdatedAt = time.Now().UTC()
	return s.bills.Update(ctx, b)
}

func (s *billService) Delete(ctx context.Context, id string) error {
	return s.bills.Delete(ctx, id)
}
