package domain

import "time"

type ItemKind string

const (
	ItemKindVehicle ItemKind = "vehicle"
	ItemKindGeneric ItemKind = "generic"
)

// VehicleCategory is the only category whose items carry structured vehicle data.
const VehicleCategory = "Carros"

type Vehicle struct {
	Brand string `json:"marca"`
	Model string `json:"modelo"`
	Plate string `json:"placa"`
	Year  *int32 `json:"ano,omitempty"`
}

type Item struct {
	ID          int32             `json:"id"`
	Name        string            `json:"nome"`
	Quantity    int32             `json:"quantidade"`
	Category    string            `json:"categoria"`
	Location    string            `json:"localizacao"`
	Description string            `json:"descricao"`
	Kind        ItemKind          `json:"tipo"`
	Vehicle     *Vehicle          `json:"veiculo,omitempty"`
	Attributes  map[string]string `json:"atributos,omitempty"`
	CreatedOn   time.Time         `json:"created_on"`
}

func (i *Item) IsVehicle() bool {
	return i.Kind == ItemKindVehicle
}

type FieldType string

const (
	FieldTypeText   FieldType = "texto"
	FieldTypeNumber FieldType = "numero"
	FieldTypeDate   FieldType = "data"
)

type CategoryField struct {
	Name     string    `json:"nome"`
	Type     FieldType `json:"tipo"`
	Required bool      `json:"obrigatorio"`
}

type Category struct {
	Name   string          `json:"nome"`
	Kind   ItemKind        `json:"tipo"`
	Fields []CategoryField `json:"campos"`
}

type VehiclePart struct {
	ID          int32     `json:"id"`
	VehicleID   int32     `json:"carro_id"`
	Description string    `json:"descricao_peca"`
	ChangeDate  Date      `json:"data_troca"`
	Mileage     *int32    `json:"quilometragem,omitempty"`
	Amount      float64   `json:"valor"`
	Workshop    string    `json:"oficina"`
	Notes       string    `json:"observacoes"`
	CreatedOn   time.Time `json:"created_on"`
}

type ItemFilter struct {
	Category string
	Location string
	Search   string
}
