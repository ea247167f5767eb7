package service

import (
	"context"
	"errors"
	"strings"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/money"
	"star-gestao-backend/internal/repository"
)

type vehiclePartService struct {
	partRepo repository.VehiclePartRepository
	itemRepo repository.ItemRepository
}

func NewVehiclePartService(partRepo repository.VehiclePartRepository, itemRepo repository.ItemRepository) VehiclePartService {
	return &vehiclePartService{
		partRepo: partRepo,
		itemRepo: itemRepo,
	}
}

func (s *vehiclePartService) validate(ctx context.Context, p *domain.VehiclePart) error {
	p.Description = strings.TrimSpace(p.Description)
	if p.Description == "" {
		return domain.NewValidationError("informe a descrição da peça")
	}
	if p.ChangeDate.IsZero() {
		return domain.NewValidationError("informe a data da troca")
	}
	if p.Amount < 0 {
		return domain.NewValidationError("o valor não pode ser negativo")
	}
	if p.Mileage != nil && *p.Mileage < 0 {
		return domain.NewValidationError("a quilometragem não pode ser negativa")
	}
	p.Amount = money.RoundToCents(p.Amount)

	vehicle, err := s.itemRepo.GetByID(ctx, p.VehicleID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewValidationError("veículo %d não encontrado", p.VehicleID)
	}
	if err != nil {
		return err
	}
	if !vehicle.IsVehicle() {
		return ErrNotAVehicle
	}
	return nil
}

func (s *vehiclePartService) CreatePart(ctx context.Context, p *domain.VehiclePart) error {
	if err := s.validate(ctx, p); err != nil {
		return err
	}
	return s.partRepo.Create(ctx, p)
}

func (s *vehiclePartService) GetPart(ctx context.Context, id int32) (*domain.VehiclePart, error) {
	return s.partRepo.GetByID(ctx, id)
}

func (s *vehiclePartService) ListParts(ctx context.Context, vehicleID *int32) ([]domain.VehiclePart, error) {
	return s.partRepo.List(ctx, vehicleID)
}

func (s *vehiclePartService) UpdatePart(ctx context.Context, p *domain.VehiclePart) error {
	if err := s.validate(ctx, p); err != nil {
		return err
	}
	return s.partRepo.Update(ctx, p)
}

func (s *vehiclePartService) DeletePart(ctx context.Context, id int32) error {
	return s.partRepo.Delete(ctx, id)
}
