package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/money"
	"star-gestao-backend/internal/repository"
)

const (
	SourcePayable     = "conta_pagar"
	SourceReceivable  = "conta_receber"
	SourceInstallment = "parcela"
)

var sourceLabels = map[string]string{
	SourcePayable:     "A pagar",
	SourceReceivable:  "A receber",
	SourceInstallment: "Parcela",
}

type notificationService struct {
	accountRepo   repository.AccountRepository
	financingRepo repository.FinancingRepository
	mailer        Mailer
	pusher        Pusher
	horizonDays   int
}

// NewNotificationService wires the reminder digest. mailer and pusher are
// optional; a nil channel is skipped.
func NewNotificationService(
	accountRepo repository.AccountRepository,
	financingRepo repository.FinancingRepository,
	mailer Mailer,
	pusher Pusher,
	horizonDays int,
) NotificationService {
	return &notificationService{
		accountRepo:   accountRepo,
		financingRepo: financingRepo,
		mailer:        mailer,
		pusher:        pusher,
		horizonDays:   horizonDays,
	}
}

func formatDay(d domain.Date) string {
	return d.Format("02/01/2006")
}

func (s *notificationService) CollectDue(ctx context.Context, today domain.Date) ([]domain.DueItem, error) {
	until := today.AddDays(s.horizonDays)

	var items []domain.DueItem
	for kind, source := range map[domain.AccountKind]string{domain.AccountPayable: SourcePayable, domain.AccountReceivable: SourceReceivable} {
		accounts, err := s.accountRepo.ListDue(ctx, kind, until)
		if err != nil {
			return nil, err
		}
		for _, a := range accounts {
			description := a.Description
			if a.Counterparty != "" {
				description += " (" + a.Counterparty + ")"
			}
			items = append(items, domain.DueItem{
				Source:      source,
				Description: description,
				DueDate:     a.DueDate,
				Amount:      a.Amount,
				Overdue:     a.DueDate.Before(today),
			})
		}
	}

	installments, err := s.financingRepo.ListUnpaidInstallments(ctx, until)
	if err != nil {
		return nil, err
	}
	for _, inst := range installments {
		name := inst.Institution
		if inst.ContractCode != nil {
			name = *inst.ContractCode
		}
		if name == "" {
			name = "financiamento " + strconv.Itoa(int(inst.FinancingID))
		}
		items = append(items, domain.DueItem{
			Source:      SourceInstallment,
			Description: fmt.Sprintf("Parcela %d - %s", inst.Number, name),
			DueDate:     inst.DueDate,
			Amount:      inst.OriginalAmount,
			Overdue:     inst.DueDate.Before(today),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].DueDate.Equal(items[j].DueDate.Time) {
			return items[i].DueDate.Before(items[j].DueDate)
		}
		return items[i].Source < items[j].Source
	})
	return items, nil
}

func (s *notificationService) SendDueReminders(ctx context.Context, today domain.Date) (int, error) {
	logger.EnterMethod("notificationService.SendDueReminders", "today", today.String(), "horizonDays", s.horizonDays)

	items, err := s.CollectDue(ctx, today)
	if err != nil {
		logger.ExitMethodWithError("notificationService.SendDueReminders", err)
		return 0, err
	}
	if len(items) == 0 {
		logger.ExitMethod("notificationService.SendDueReminders", "items", 0)
		return 0, nil
	}

	overdue := 0
	for _, it := range items {
		if it.Overdue {
			overdue++
		}
	}
	until := today.AddDays(s.horizonDays)
	subject := fmt.Sprintf("Star Gestão: %d vencimento(s) até %s", len(items), formatDay(until))
	if overdue > 0 {
		subject += fmt.Sprintf(", %d em atraso", overdue)
	}

	var errs []error
	if s.mailer != nil {
		plain, htmlBody := renderDigest(items)
		if err := s.mailer.Send(ctx, subject, plain, htmlBody); err != nil {
			logger.Error("Failed to send reminder email", "error", err)
			errs = append(errs, err)
		}
	}
	if s.pusher != nil {
		data := map[string]string{"itens": strconv.Itoa(len(items)), "atrasados": strconv.Itoa(overdue)}
		if err := s.pusher.Push(ctx, "Vencimentos próximos", subject, data); err != nil {
			logger.Error("Failed to send reminder push", "error", err)
			errs = append(errs, err)
		}
	}

	logger.ExitMethod("notificationService.SendDueReminders", "items", len(items), "overdue", overdue)
	return len(items), errors.Join(errs...)
}

// renderDigest returns the plain text and HTML bodies of the reminder email
func renderDigest(items []domain.DueItem) (string, string) {
	var plain, body strings.Builder
	body.WriteString("<table><tr><th>Vencimento</th><th>Tipo</th><th>Descrição</th><th>Valor</th></tr>")
	for _, it := range items {
		flag := ""
		if it.Overdue {
			flag = " [ATRASADO]"
		}
		fmt.Fprintf(&plain, "%s  %-10s  %s  %s%s\n", formatDay(it.DueDate), sourceLabels[it.Source], it.Description,
			money.FormatCurrency(it.Amount), flag)

		style := ""
		if it.Overdue {
			style = ` style="color:#b00020"`
		}
		fmt.Fprintf(&body, "<tr%s><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>", style, formatDay(it.DueDate),
			sourceLabels[it.Source], html.EscapeString(it.Description), money.FormatCurrency(it.Amount))
	}
	body.WriteString("</table>")
	return plain.String(), body.String()
}
