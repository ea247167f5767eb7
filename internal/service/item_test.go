package service

import (
	"context"
	"testing"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemService_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Vehicle", func(t *testing.T) {
		repo := new(MockItemRepo)
		svc := NewItemService(repo)

		item := &domain.Item{
			Name:       " Caminhão Baú ",
			Quantity:   1,
			Category:   "carros",
			Vehicle:    &domain.Vehicle{Brand: "Volvo", Model: "VM 270", Plate: "abc1d23"},
			Attributes: map[string]string{"cor": "branco"},
		}
		repo.On("Create", ctx, item).Return(nil)

		require.NoError(t, svc.CreateItem(ctx, item))
		assert.Equal(t, "Caminhão Baú", item.Name)
		assert.Equal(t, domain.VehicleCategory, item.Category)
		assert.Equal(t, domain.ItemKindVehicle, item.Kind)
		assert.Equal(t, "ABC1D23", item.Vehicle.Plate)
		assert.Nil(t, item.Attributes)
		repo.AssertExpectations(t)
	})

	t.Run("VehicleMissingPlate", func(t *testing.T) {
		repo := new(MockItemRepo)
		svc := NewItemService(repo)

		err := svc.CreateItem(ctx, &domain.Item{
			Name:     "Van",
			Category: domain.VehicleCategory,
			Vehicle:  &domain.Vehicle{Brand: "Fiat", Model: "Ducato"},
		})
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("GenericWithAttributes", func(t *testing.T) {
		repo := new(MockItemRepo)
		svc := NewItemService(repo)

		item := &domain.Item{
			Name:       "Andaime tubular",
			Quantity:   40,
			Category:   "Andaimes",
			Vehicle:    &domain.Vehicle{Brand: "x"},
			Attributes: map[string]string{"altura": "1,5", "material": "aço"},
		}
		repo.On("Create", ctx, item).Return(nil)

		require.NoError(t, svc.CreateItem(ctx, item))
		assert.Equal(t, domain.ItemKindGeneric, item.Kind)
		assert.Nil(t, item.Vehicle)
	})

	t.Run("Invalid", func(t *testing.T) {
		svc := NewItemService(new(MockItemRepo))
		var vErr *domain.ValidationError

		cases := []*domain.Item{
			{Name: "", Category: "Outros"},
			{Name: "Lona", Category: "Outros", Quantity: -1},
			{Name: "Lona", Category: "Barcos"},
			{Name: "Andaime", Category: "Andaimes"},
			{Name: "Andaime", Category: "Andaimes", Attributes: map[string]string{"altura": "alto"}},
			{Name: "Gerador", Category: "Geradores", Attributes: map[string]string{"potencia": "5kVA", "ultima_revisao": "31/12/2023"}},
			{Name: "Tenda", Category: "Tendas", Attributes: map[string]string{"dimensoes": "10x10", "peso": "80"}},
		}
		for _, item := range cases {
			assert.ErrorAs(t, svc.CreateItem(ctx, item), &vErr, item.Name)
		}
	})
}

func TestItemService_DeleteItem(t *testing.T) {
	ctx := context.Background()
	repo := new(MockItemRepo)
	svc := NewItemService(repo)

	repo.On("Delete", ctx, int32(3)).Return(repository.ErrInUse)
	assert.ErrorIs(t, svc.DeleteItem(ctx, 3), repository.ErrInUse)
}

func TestItemService_Categories(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(new(MockItemRepo))

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, categories)
	assert.Equal(t, domain.VehicleCategory, categories[0].Name)

	c, err := svc.GetCategory(ctx, "geradores")
	require.NoError(t, err)
	assert.Equal(t, "Geradores", c.Name)
	assert.Len(t, c.Fields, 3)

	_, err = svc.GetCategory(ctx, "Barcos")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestVehiclePartService_CreatePart(t *testing.T) {
	ctx := context.Background()
	truck := &domain.Item{ID: 1, Kind: domain.ItemKindVehicle}
	tent := &domain.Item{ID: 2, Kind: domain.ItemKindGeneric}

	t.Run("Success", func(t *testing.T) {
		partRepo := new(MockVehiclePartRepo)
		itemRepo := new(MockItemRepo)
		svc := NewVehiclePartService(partRepo, itemRepo)

		part := &domain.VehiclePart{VehicleID: 1, Description: "Pastilha de freio", ChangeDate: domain.Today(), Amount: 349.999}
		itemRepo.On("GetByID", ctx, int32(1)).Return(truck, nil)
		partRepo.On("Create", ctx, part).Return(nil)

		require.NoError(t, svc.CreatePart(ctx, part))
		assert.Equal(t, 350.0, part.Amount)
	})

	t.Run("NotAVehicle", func(t *testing.T) {
		partRepo := new(MockVehiclePartRepo)
		itemRepo := new(MockItemRepo)
		svc := NewVehiclePartService(partRepo, itemRepo)

		itemRepo.On("GetByID", ctx, int32(2)).Return(tent, nil)
		err := svc.CreatePart(ctx, &domain.VehiclePart{VehicleID: 2, Description: "Lona", ChangeDate: domain.Today()})
		assert.ErrorIs(t, err, ErrNotAVehicle)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		partRepo := new(MockVehiclePartRepo)
		itemRepo := new(MockItemRepo)
		svc := NewVehiclePartService(partRepo, itemRepo)

		itemRepo.On("GetByID", ctx, int32(9)).Return(nil, repository.ErrNotFound)
		err := svc.CreatePart(ctx, &domain.VehiclePart{VehicleID: 9, Description: "Pneu", ChangeDate: domain.Today()})
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		partRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NegativeMileage", func(t *testing.T) {
		svc := NewVehiclePartService(new(MockVehiclePartRepo), new(MockItemRepo))
		km := int32(-5)
		err := svc.CreatePart(ctx, &domain.VehiclePart{VehicleID: 1, Description: "Óleo", ChangeDate: domain.Today(), Mileage: &km})
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}
