package service

import (
	"context"
	"strings"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"
)

type itemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) ItemService {
	return &itemService{itemRepo: itemRepo}
}

// normalizeItem fixes the item variant from its category and validates it
func normalizeItem(item *domain.Item) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return domain.NewValidationError("informe o nome do item")
	}
	if item.Quantity < 0 {
		return domain.NewValidationError("a quantidade não pode ser negativa")
	}
	category, ok := lookupCategory(item.Category)
	if !ok {
		return domain.NewValidationError("categoria %q não cadastrada", item.Category)
	}
	item.Category = category.Name
	item.Kind = category.Kind

	if category.Kind == domain.ItemKindVehicle {
		item.Attributes = nil
		v := item.Vehicle
		if v == nil || strings.TrimSpace(v.Brand) == "" || strings.TrimSpace(v.Model) == "" || strings.TrimSpace(v.Plate) == "" {
			return domain.NewValidationError("veículos exigem marca, modelo e placa")
		}
		v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
		return nil
	}

	item.Vehicle = nil
	return ValidateAttributes(category, item.Attributes)
}

func (s *itemService) CreateItem(ctx context.Context, item *domain.Item) error {
	if err := normalizeItem(item); err != nil {
		return err
	}
	return s.itemRepo.Create(ctx, item)
}

func (s *itemService) GetItem(ctx context.Context, id int32) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *itemService) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	return s.itemRepo.List(ctx, filter)
}

func (s *itemService) UpdateItem(ctx context.Context, item *domain.Item) error {
	if err := normalizeItem(item); err != nil {
		return err
	}
	return s.itemRepo.Update(ctx, item)
}

func (s *itemService) DeleteItem(ctx context.Context, id int32) error {
	return s.itemRepo.Delete(ctx, id)
}
