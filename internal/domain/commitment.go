package domain

import "time"

type CommitmentItem struct {
	ItemID   int32  `json:"item_id"`
	Quantity int32  `json:"quantidade"`
	ItemName string `json:"item_nome,omitempty"`
}

type Commitment struct {
	ID             int32            `json:"id"`
	Description    string           `json:"descricao"`
	StartDate      Date             `json:"data_inicio"`
	EndDate        Date             `json:"data_fim"`
	Client         string           `json:"cliente"`
	ContractNumber string           `json:"contrato_numero"`
	Items          []CommitmentItem `json:"itens"`
	CreatedOn      time.Time        `json:"created_on"`
}

// Covers reports whether day falls inside the commitment, both ends inclusive.
func (c *Commitment) Covers(day Date) bool {
	return !day.Before(c.StartDate) && !day.After(c.EndDate)
}

type AvailabilityQuery struct {
	ItemID         *int32 `json:"item_id,omitempty"`
	Date           Date   `json:"data_consulta"`
	CategoryFilter string `json:"filtro_categoria,omitempty"`
	LocationFilter string `json:"filtro_localizacao,omitempty"`
}

type Availability struct {
	Item        Item         `json:"item"`
	Total       int32        `json:"quantidade_total"`
	Committed   int32        `json:"quantidade_comprometida"`
	Available   int32        `json:"quantidade_disponivel"`
	Commitments []Commitment `json:"compromissos"`
}
