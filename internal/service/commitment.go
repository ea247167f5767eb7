package service

import (
	"context"
	"strings"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"
)

type commitmentService struct {
	commitmentRepo repository.CommitmentRepository
	itemRepo       repository.ItemRepository
}

func NewCommitmentService(commitmentRepo repository.CommitmentRepository, itemRepo repository.ItemRepository) CommitmentService {
	return &commitmentService{
		commitmentRepo: commitmentRepo,
		itemRepo:       itemRepo,
	}
}

func validateCommitment(c *domain.Commitment) error {
	c.Description = strings.TrimSpace(c.Description)
	if c.Description == "" {
		return domain.NewValidationError("informe a descrição do compromisso")
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return domain.NewValidationError("informe as datas de início e fim")
	}
	if c.EndDate.Before(c.StartDate) {
		return ErrInvalidPeriod
	}
	if len(c.Items) == 0 {
		return ErrMissingCommitmentItem
	}
	seen := make(map[int32]bool, len(c.Items))
	for _, ci := range c.Items {
		if ci.Quantity <= 0 {
			return ErrMissingCommitmentItem
		}
		if seen[ci.ItemID] {
			return domain.NewValidationError("o item %d aparece mais de uma vez", ci.ItemID)
		}
		seen[ci.ItemID] = true
	}
	return nil
}

func (s *commitmentService) CreateCommitment(ctx context.Context, c *domain.Commitment) error {
	if err := validateCommitment(c); err != nil {
		return err
	}
	return s.commitmentRepo.Create(ctx, c)
}

func (s *commitmentService) GetCommitment(ctx context.Context, id int32) (*domain.Commitment, error) {
	return s.commitmentRepo.GetByID(ctx, id)
}

func (s *commitmentService) ListCommitments(ctx context.Context) ([]domain.Commitment, error) {
	return s.commitmentRepo.List(ctx)
}

func (s *commitmentService) UpdateCommitment(ctx context.Context, c *domain.Commitment) error {
	if err := validateCommitment(c); err != nil {
		return err
	}
	return s.commitmentRepo.Update(ctx, c)
}

func (s *commitmentService) DeleteCommitment(ctx context.Context, id int32) error {
	return s.commitmentRepo.Delete(ctx, id)
}

// CheckAvailability subtracts the quantities committed on q.Date from each
// item's stock. Overbooked items report a negative availability.
func (s *commitmentService) CheckAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.Availability, error) {
	logger.EnterMethod("commitmentService.CheckAvailability", "date", q.Date.String(), "itemID", q.ItemID)

	if q.Date.IsZero() {
		return nil, domain.NewValidationError("informe a data da consulta")
	}

	var items []domain.Item
	if q.ItemID != nil {
		item, err := s.itemRepo.GetByID(ctx, *q.ItemID)
		if err != nil {
			logger.ExitMethodWithError("commitmentService.CheckAvailability", err)
			return nil, err
		}
		items = []domain.Item{*item}
	} else {
		list, err := s.itemRepo.List(ctx, domain.ItemFilter{Category: q.CategoryFilter, Location: q.LocationFilter})
		if err != nil {
			logger.ExitMethodWithError("commitmentService.CheckAvailability", err)
			return nil, err
		}
		items = list
	}

	active, err := s.commitmentRepo.ListActiveOn(ctx, q.Date)
	if err != nil {
		logger.ExitMethodWithError("commitmentService.CheckAvailability", err)
		return nil, err
	}

	result := make([]domain.Availability, 0, len(items))
	for _, item := range items {
		a := domain.Availability{Item: item, Total: item.Quantity, Commitments: []domain.Commitment{}}
		for _, c := range active {
			if !c.Covers(q.Date) {
				continue
			}
			for _, ci := range c.Items {
				if ci.ItemID == item.ID {
					a.Committed += ci.Quantity
					a.Commitments = append(a.Commitments, c)
					break
				}
			}
		}
		a.Available = a.Total - a.Committed
		result = append(result, a)
	}

	logger.ExitMethod("commitmentService.CheckAvailability", "items", len(result))
	return result, nil
}
