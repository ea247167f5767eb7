package service

import (
	"context"
	"strconv"
	"strings"

	"star-gestao-backend/internal/domain"
)

var categoryCatalogue = []domain.Category{
	{
		Name: domain.VehicleCategory,
		Kind: domain.ItemKindVehicle,
		Fields: []domain.CategoryField{
			{Name: "marca", Type: domain.FieldTypeText, Required: true},
			{Name: "modelo", Type: domain.FieldTypeText, Required: true},
			{Name: "placa", Type: domain.FieldTypeText, Required: true},
			{Name: "ano", Type: domain.FieldTypeNumber},
		},
	},
	{
		Name: "Andaimes",
		Kind: domain.ItemKindGeneric,
		Fields: []domain.CategoryField{
			{Name: "altura", Type: domain.FieldTypeNumber, Required: true},
			{Name: "material", Type: domain.FieldTypeText},
		},
	},
	{
		Name: "Geradores",
		Kind: domain.ItemKindGeneric,
		Fields: []domain.CategoryField{
			{Name: "potencia", Type: domain.FieldTypeText, Required: true},
			{Name: "combustivel", Type: domain.FieldTypeText},
			{Name: "ultima_revisao", Type: domain.FieldTypeDate},
		},
	},
	{
		Name: "Ferramentas",
		Kind: domain.ItemKindGeneric,
		Fields: []domain.CategoryField{
			{Name: "marca", Type: domain.FieldTypeText},
			{Name: "voltagem", Type: domain.FieldTypeText},
		},
	},
	{
		Name: "Tendas",
		Kind: domain.ItemKindGeneric,
		Fields: []domain.CategoryField{
			{Name: "dimensoes", Type: domain.FieldTypeText, Required: true},
			{Name: "cor", Type: domain.FieldTypeText},
		},
	},
	{
		Name: "Iluminação",
		Kind: domain.ItemKindGeneric,
		Fields: []domain.CategoryField{
			{Name: "potencia", Type: domain.FieldTypeText},
		},
	},
	{
		Name:   "Outros",
		Kind:   domain.ItemKindGeneric,
		Fields: []domain.CategoryField{},
	},
}

func lookupCategory(name string) (*domain.Category, bool) {
	for i := range categoryCatalogue {
		if strings.EqualFold(categoryCatalogue[i].Name, name) {
			return &categoryCatalogue[i], true
		}
	}
	return nil, false
}

func (s *itemService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return categoryCatalogue, nil
}

func (s *itemService) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	c, ok := lookupCategory(name)
	if !ok {
		return nil, ErrUnknownCategory
	}
	return c, nil
}

// ValidateAttributes checks generic attributes against the declared fields:
// required fields present, values parse as their type, no undeclared keys.
func ValidateAttributes(category *domain.Category, attrs map[string]string) error {
	declared := make(map[string]domain.CategoryField, len(category.Fields))
	for _, f := range category.Fields {
		declared[f.Name] = f
		if f.Required && strings.TrimSpace(attrs[f.Name]) == "" {
			return domain.NewValidationError("o campo %q é obrigatório para a categoria %s", f.Name, category.Name)
		}
	}
	for key, value := range attrs {
		f, ok := declared[key]
		if !ok {
			return domain.NewValidationError("o campo %q não existe na categoria %s", key, category.Name)
		}
		if value == "" {
			continue
		}
		switch f.Type {
		case domain.FieldTypeNumber:
			if _, err := strconv.ParseFloat(strings.Replace(value, ",", ".", 1), 64); err != nil {
				return domain.NewValidationError("o campo %q deve ser numérico", key)
			}
		case domain.FieldTypeDate:
			if _, err := domain.ParseDate(value); err != nil {
				return domain.NewValidationError("o campo %q deve ser uma data AAAA-MM-DD", key)
			}
		}
	}
	return nil
}
