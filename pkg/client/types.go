package client

// Dates are exchanged as "YYYY-MM-DD" strings.

type Installment struct {
	ID             int32   `json:"id"`
	FinancingID    int32   `json:"financiamento_id"`
	Number         int32   `json:"numero"`
	DueDate        string  `json:"data_vencimento"`
	OriginalAmount float64 `json:"valor_original"`
	PaidAmount     float64 `json:"valor_pago"`
	PaymentDate    *string `json:"data_pagamento,omitempty"`
	Interest       float64 `json:"juros"`
	Penalty        float64 `json:"multa"`
	Discount       float64 `json:"desconto"`
	Status         string  `json:"status"`
	BoletoLink     string  `json:"link_boleto"`
	ReceiptLink    string  `json:"link_comprovante"`
}

type Financing struct {
	ID               int32         `json:"id"`
	ContractCode     *string       `json:"codigo_contrato,omitempty"`
	ItemIDs          []int32       `json:"item_ids"`
	TotalValue       float64       `json:"valor_total"`
	DownPayment      float64       `json:"valor_entrada"`
	FinancedAmount   float64       `json:"valor_financiado"`
	InstallmentCount int32         `json:"numero_parcelas"`
	InterestRate     float64       `json:"taxa_juros"`
	StartDate        string        `json:"data_inicio"`
	Institution      string        `json:"instituicao_financeira"`
	Notes            string        `json:"observacoes"`
	ScheduleType     string        `json:"tipo_parcelamento"`
	Status           string        `json:"status"`
	Version          int32         `json:"version"`
	PaidCount        int32         `json:"parcelas_pagas"`
	RemainingCount   int32         `json:"parcelas_restantes"`
	PaidTotal        float64       `json:"valor_pago_total"`
	Installments     []Installment `json:"parcelas,omitempty"`
}

type ScheduleEntry struct {
	Amount  float64 `json:"valor"`
	DueDate string  `json:"data_vencimento"`
}

// FinancingInput creates or edits a contract. Version must be set on edits.
type FinancingInput struct {
	ContractCode     *string         `json:"codigo_contrato,omitempty"`
	ItemIDs          []int32         `json:"item_ids,omitempty"`
	TotalValue       float64         `json:"valor_total"`
	DownPayment      float64         `json:"valor_entrada"`
	InstallmentCount int32           `json:"numero_parcelas"`
	InterestRate     float64         `json:"taxa_juros"`
	ConfirmRate      bool            `json:"confirmar_taxa,omitempty"`
	StartDate        string          `json:"data_inicio"`
	Institution      string          `json:"instituicao_financeira,omitempty"`
	Notes            string          `json:"observacoes,omitempty"`
	ScheduleType     string          `json:"tipo_parcelamento,omitempty"`
	CustomSchedule   []ScheduleEntry `json:"parcelas_customizadas,omitempty"`
	Version          *int32          `json:"version,omitempty"`
}

type Payment struct {
	PaidAmount  float64 `json:"valor_pago"`
	PaymentDate string  `json:"data_pagamento,omitempty"`
	Interest    float64 `json:"juros"`
	Penalty     float64 `json:"multa"`
	Discount    float64 `json:"desconto"`
}

type InstallmentPatch struct {
	Status         *string  `json:"status,omitempty"`
	BoletoLink     *string  `json:"link_boleto,omitempty"`
	OriginalAmount *float64 `json:"valor_original,omitempty"`
	DueDate        *string  `json:"data_vencimento,omitempty"`
}

type Simulation struct {
	FinancedAmount float64       `json:"valor_financiado"`
	Installments   []Installment `json:"parcelas"`
	AnnuityPayment float64       `json:"parcela_price"`
	AnnuityTotal   float64       `json:"total_price"`
}

type PresentValue struct {
	PresentValue   float64 `json:"valor_presente"`
	RemainingTotal float64 `json:"valor_total_restante"`
	RemainingCount int32   `json:"parcelas_restantes"`
	DiscountRate   float64 `json:"taxa_desconto"`
	RateSource     string  `json:"fonte_taxa"`
	AsOf           string  `json:"data_referencia"`
}

type ReceiptUpload struct {
	Key         string `json:"key"`
	UploadURL   string `json:"upload_url"`
	DownloadURL string `json:"download_url"`
	ExpiresAt   int64  `json:"expires_at"`
}

type Account struct {
	ID            int32   `json:"id"`
	Kind          string  `json:"tipo"`
	Description   string  `json:"descricao"`
	Category      string  `json:"categoria"`
	Amount        float64 `json:"valor"`
	DueDate       string  `json:"data_vencimento"`
	PaymentDate   *string `json:"data_pagamento,omitempty"`
	Status        string  `json:"status"`
	ItemID        *int32  `json:"item_id,omitempty"`
	Counterparty  string  `json:"contraparte"`
	PaymentMethod string  `json:"forma_pagamento"`
	Notes         string  `json:"observacoes"`
}

type AccountFilter struct {
	Status   string
	Category string
	From     string
	To       string
}

type Info struct {
	Name    string `json:"nome"`
	Version string `json:"versao"`
}
