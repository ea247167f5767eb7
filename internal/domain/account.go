package domain

import "time"

type AccountKind string

const (
	AccountPayable    AccountKind = "pagar"
	AccountReceivable AccountKind = "receber"
)

type AccountStatus string

const (
	AccountStatusPending AccountStatus = "Pendente"
	AccountStatusPaid    AccountStatus = "Pago"
	AccountStatusOverdue AccountStatus = "Atrasado"
)

var payableCategories = []string{
	"Fornecedor", "Manutenção", "Combustível", "Aluguel", "Salários", "Impostos", "Financiamento", "Outros",
}

var receivableCategories = []string{
	"Locação", "Venda", "Serviço", "Reembolso", "Outros",
}

// Categories returns the closed category list accepted by the ledger.
func (k AccountKind) Categories() []string {
	if k == AccountReceivable {
		return receivableCategories
	}
	return payableCategories
}

func (k AccountKind) ValidCategory(c string) bool {
	for _, v := range k.Categories() {
		if v == c {
			return true
		}
	}
	return false
}

func (k AccountKind) Valid() bool {
	return k == AccountPayable || k == AccountReceivable
}

type Account struct {
	ID            int32         `json:"id"`
	Kind          AccountKind   `json:"tipo"`
	Description   string        `json:"descricao"`
	Category      string        `json:"categoria"`
	Amount        float64       `json:"valor"`
	DueDate       Date          `json:"data_vencimento"`
	PaymentDate   *Date         `json:"data_pagamento,omitempty"`
	Status        AccountStatus `json:"status"`
	ItemID        *int32        `json:"item_id,omitempty"`
	Counterparty  string        `json:"contraparte"`
	PaymentMethod string        `json:"forma_pagamento"`
	Notes         string        `json:"observacoes"`
	CreatedOn     time.Time     `json:"created_on"`
}

type AccountFilter struct {
	Status   AccountStatus
	Category string
	From     *Date
	To       *Date
}

type AccountTotals struct {
	Pending       float64 `json:"pendente"`
	Overdue       float64 `json:"atrasado"`
	PaidThisMonth float64 `json:"pago_mes"`
}
