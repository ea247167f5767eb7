package domain

type CategoryCount struct {
	Category string `json:"categoria"`
	Items    int32  `json:"itens"`
	Quantity int32  `json:"quantidade"`
}

type Stats struct {
	TotalItems          int32           `json:"total_itens"`
	TotalQuantity       int32           `json:"quantidade_total"`
	ByCategory          []CategoryCount `json:"por_categoria"`
	ActiveCommitments   int32           `json:"compromissos_ativos"`
	UpcomingCommitments int32           `json:"compromissos_proximos"`
}

type FinancialDashboard struct {
	Payables             AccountTotals         `json:"contas_pagar"`
	Receivables          AccountTotals         `json:"contas_receber"`
	ActiveFinancings     int32                 `json:"financiamentos_ativos"`
	FinancedBalance      float64               `json:"saldo_financiado"`
	UpcomingInstallments []UpcomingInstallment `json:"proximas_parcelas"`
}

type AppInfo struct {
	Name    string `json:"nome"`
	Version string `json:"versao"`
}

// DueItem is one line of the due-date reminder digest.
type DueItem struct {
	Source      string  `json:"origem"`
	Description string  `json:"descricao"`
	DueDate     Date    `json:"data_vencimento"`
	Amount      float64 `json:"valor"`
	Overdue     bool    `json:"atrasado"`
}
