package domain

import "time"

type FinancingStatus string

const (
	FinancingStatusActive    FinancingStatus = "Ativo"
	FinancingStatusSettled   FinancingStatus = "Quitado"
	FinancingStatusCancelled FinancingStatus = "Cancelado"
)

type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "Pendente"
	InstallmentStatusPaid    InstallmentStatus = "Pago"
	InstallmentStatusOverdue InstallmentStatus = "Atrasado"
)

func (s InstallmentStatus) Valid() bool {
	switch s {
	case InstallmentStatusPending, InstallmentStatusPaid, InstallmentStatusOverdue:
		return true
	}
	return false
}

type ScheduleType string

const (
	ScheduleTypeFixed  ScheduleType = "fixo"
	ScheduleTypeCustom ScheduleType = "customizado"
)

type Financing struct {
	ID               int32           `json:"id"`
	ContractCode     *string         `json:"codigo_contrato,omitempty"`
	ItemIDs          []int32         `json:"item_ids"`
	TotalValue       float64         `json:"valor_total"`
	DownPayment      float64         `json:"valor_entrada"`
	FinancedAmount   float64         `json:"valor_financiado"`
	InstallmentCount int32           `json:"numero_parcelas"`
	InterestRate     float64         `json:"taxa_juros"` // periodic, as a fraction (0.0275 = 2.75%)
	StartDate        Date            `json:"data_inicio"`
	Institution      string          `json:"instituicao_financeira"`
	Notes            string          `json:"observacoes"`
	ScheduleType     ScheduleType    `json:"tipo_parcelamento"`
	Status           FinancingStatus `json:"status"`
	Version          int32           `json:"version"`
	PaidCount        int32           `json:"parcelas_pagas"`
	RemainingCount   int32           `json:"parcelas_restantes"`
	PaidTotal        float64         `json:"valor_pago_total"`
	Installments     []Installment   `json:"parcelas,omitempty"`
	CreatedOn        time.Time       `json:"created_on"`
	UpdatedOn        time.Time       `json:"updated_on"`
}

// FindInstallment returns a pointer into f.Installments, or nil.
func (f *Financing) FindInstallment(id int32) *Installment {
	for i := range f.Installments {
		if f.Installments[i].ID == id {
			return &f.Installments[i]
		}
	}
	return nil
}

type Installment struct {
	ID             int32             `json:"id"`
	FinancingID    int32             `json:"financiamento_id"`
	Number         int32             `json:"numero"`
	DueDate        Date              `json:"data_vencimento"`
	OriginalAmount float64           `json:"valor_original"`
	PaidAmount     float64           `json:"valor_pago"`
	PaymentDate    *Date             `json:"data_pagamento,omitempty"`
	Interest       float64           `json:"juros"`
	Penalty        float64           `json:"multa"`
	Discount       float64           `json:"desconto"`
	Status         InstallmentStatus `json:"status"`
	BoletoLink     string            `json:"link_boleto"`
	ReceiptLink    string            `json:"link_comprovante"`
}

// EffectiveAmount is original + interest + penalty - discount, unrounded.
func (i Installment) EffectiveAmount() float64 {
	return i.OriginalAmount + i.Interest + i.Penalty - i.Discount
}

type ScheduleEntry struct {
	Amount  float64 `json:"valor"`
	DueDate Date    `json:"data_vencimento"`
}

type FinancingInput struct {
	ContractCode     *string         `json:"codigo_contrato"`
	ItemIDs          []int32         `json:"item_ids"`
	TotalValue       float64         `json:"valor_total"`
	DownPayment      float64         `json:"valor_entrada"`
	InstallmentCount int32           `json:"numero_parcelas"`
	InterestRate     float64         `json:"taxa_juros"`
	ConfirmRate      bool            `json:"confirmar_taxa"`
	StartDate        Date            `json:"data_inicio"`
	Institution      string          `json:"instituicao_financeira"`
	Notes            string          `json:"observacoes"`
	ScheduleType     ScheduleType    `json:"tipo_parcelamento"`
	CustomSchedule   []ScheduleEntry `json:"parcelas_customizadas"`
	Version          *int32          `json:"version,omitempty"`
}

type PaymentInput struct {
	PaidAmount  float64 `json:"valor_pago"`
	PaymentDate Date    `json:"data_pagamento"`
	Interest    float64 `json:"juros"`
	Penalty     float64 `json:"multa"`
	Discount    float64 `json:"desconto"`
}

type InstallmentPatch struct {
	Status         *InstallmentStatus `json:"status,omitempty"`
	BoletoLink     *string            `json:"link_boleto,omitempty"`
	OriginalAmount *float64           `json:"valor_original,omitempty"`
	DueDate        *Date              `json:"data_vencimento,omitempty"`
}

type Simulation struct {
	FinancedAmount float64       `json:"valor_financiado"`
	Installments   []Installment `json:"parcelas"`
	AnnuityPayment float64       `json:"parcela_price"`
	AnnuityTotal   float64       `json:"total_price"`
}

type PresentValue struct {
	PresentValue   float64    `json:"valor_presente"`
	RemainingTotal float64    `json:"valor_total_restante"`
	RemainingCount int32      `json:"parcelas_restantes"`
	DiscountRate   float64    `json:"taxa_desconto"`
	RateSource     RateSource `json:"fonte_taxa"`
	AsOf           Date       `json:"data_referencia"`
}

type UpcomingInstallment struct {
	FinancingID    int32             `json:"financiamento_id"`
	ContractCode   *string           `json:"codigo_contrato,omitempty"`
	Institution    string            `json:"instituicao_financeira"`
	InstallmentID  int32             `json:"parcela_id"`
	Number         int32             `json:"numero"`
	DueDate        Date              `json:"data_vencimento"`
	OriginalAmount float64           `json:"valor_original"`
	Status         InstallmentStatus `json:"status"`
}
