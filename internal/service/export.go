package service

import (
	"context"
	"fmt"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/money"
	"star-gestao-backend/internal/repository"
)

const (
	TabFinancings   = "Financiamentos"
	TabInstallments = "Parcelas"
	TabPayables     = "ContasPagar"
	TabReceivables  = "ContasReceber"
)

type exportService struct {
	financingRepo repository.FinancingRepository
	accountRepo   repository.AccountRepository
	writer        SheetWriter
}

// NewExportService returns the one-way spreadsheet export. A nil writer
// makes every export fail with ErrExportDisabled.
func NewExportService(financingRepo repository.FinancingRepository, accountRepo repository.AccountRepository, writer SheetWriter) ExportService {
	return &exportService{
		financingRepo: financingRepo,
		accountRepo:   accountRepo,
		writer:        writer,
	}
}

func amount(v float64) string {
	return money.FormatLocalized(v, money.CurrencyDigits)
}

func optionalDay(d *domain.Date) string {
	if d == nil {
		return ""
	}
	return formatDay(*d)
}

func (s *exportService) ExportAll(ctx context.Context) error {
	if s.writer == nil {
		return ErrExportDisabled
	}
	logger.EnterMethod("exportService.ExportAll")

	tabs, err := s.buildTabs(ctx)
	if err != nil {
		logger.ExitMethodWithError("exportService.ExportAll", err)
		return err
	}
	for _, name := range []string{TabFinancings, TabInstallments, TabPayables, TabReceivables} {
		if err := s.writer.WriteTab(ctx, name, tabs[name]); err != nil {
			logger.ExitMethodWithError("exportService.ExportAll", err, "tab", name)
			return err
		}
	}

	logger.ExitMethod("exportService.ExportAll", "financings", len(tabs[TabFinancings])-1, "installments", len(tabs[TabInstallments])-1)
	return nil
}

func (s *exportService) buildTabs(ctx context.Context) (map[string][][]any, error) {
	tabs := make(map[string][][]any, 4)

	financings, err := s.financingRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	rows := [][]any{{"ID", "Contrato", "Instituição", "Valor total", "Entrada", "Financiado", "Parcelas", "Taxa",
		"Início", "Status", "Pagas", "Restantes", "Total pago"}}
	for _, f := range financings {
		code := ""
		if f.ContractCode != nil {
			code = *f.ContractCode
		}
		rows = append(rows, []any{f.ID, code, f.Institution, amount(f.TotalValue), amount(f.DownPayment),
			amount(f.FinancedAmount), f.InstallmentCount, money.FormatPercent(f.InterestRate), formatDay(f.StartDate),
			string(f.Status), f.PaidCount, f.RemainingCount, amount(f.PaidTotal)})
	}
	tabs[TabFinancings] = rows

	installments, err := s.financingRepo.ListAllInstallments(ctx)
	if err != nil {
		return nil, err
	}
	rows = [][]any{{"Financiamento", "Número", "Vencimento", "Valor original", "Valor pago", "Pagamento",
		"Juros", "Multa", "Desconto", "Status", "Boleto", "Comprovante"}}
	for _, inst := range installments {
		rows = append(rows, []any{inst.FinancingID, inst.Number, formatDay(inst.DueDate), amount(inst.OriginalAmount),
			amount(inst.PaidAmount), optionalDay(inst.PaymentDate), amount(inst.Interest), amount(inst.Penalty),
			amount(inst.Discount), string(inst.Status), inst.BoletoLink, inst.ReceiptLink})
	}
	tabs[TabInstallments] = rows

	for kind, tab := range map[domain.AccountKind]string{domain.AccountPayable: TabPayables, domain.AccountReceivable: TabReceivables} {
		accounts, err := s.accountRepo.List(ctx, kind, domain.AccountFilter{})
		if err != nil {
			return nil, fmt.Errorf("failed to list %s accounts: %w", kind, err)
		}
		rows := [][]any{{"ID", "Descrição", "Categoria", "Valor", "Vencimento", "Status", "Pagamento", "Contraparte", "Forma de pagamento"}}
		for _, a := range accounts {
			rows = append(rows, []any{a.ID, a.Description, a.Category, amount(a.Amount), formatDay(a.DueDate),
				string(a.Status), optionalDay(a.PaymentDate), a.Counterparty, a.PaymentMethod})
		}
		tabs[tab] = rows
	}
	return tabs, nil
}
