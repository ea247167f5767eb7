package service

import (
	"context"
	"strings"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/money"
	"star-gestao-backend/internal/repository"
)

type accountService struct {
	accountRepo repository.AccountRepository
}

func NewAccountService(accountRepo repository.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) CreateAccount(ctx context.Context, a *domain.Account) error {
	if !a.Kind.Valid() {
		return ErrInvalidAccountKind
	}
	a.Description = strings.TrimSpace(a.Description)
	if a.Description == "" {
		return domain.NewValidationError("informe a descrição da conta")
	}
	if !a.Kind.ValidCategory(a.Category) {
		return domain.NewValidationError("categoria inválida: %s", a.Category)
	}
	if a.Amount <= 0 {
		return domain.NewValidationError("o valor deve ser maior que zero")
	}
	if a.DueDate.IsZero() {
		return domain.NewValidationError("informe a data de vencimento")
	}

	a.Amount = money.RoundToCents(a.Amount)
	a.Status = domain.AccountStatusPending
	a.PaymentDate = nil
	return s.accountRepo.Create(ctx, a)
}

func (s *accountService) ListAccounts(ctx context.Context, kind domain.AccountKind, filter domain.AccountFilter) ([]domain.Account, error) {
	if !kind.Valid() {
		return nil, ErrInvalidAccountKind
	}
	return s.accountRepo.List(ctx, kind, filter)
}

func (s *accountService) SettleAccount(ctx context.Context, kind domain.AccountKind, id int32, paidOn *domain.Date) (*domain.Account, error) {
	if !kind.Valid() {
		return nil, ErrInvalidAccountKind
	}
	day := domain.Today()
	if paidOn != nil && !paidOn.IsZero() {
		day = *paidOn
	}
	a, err := s.accountRepo.MarkPaid(ctx, kind, id, day)
	if err != nil {
		return nil, err
	}
	logger.Info("Account settled", "kind", kind, "id", id, "date", day.String())
	return a, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, kind domain.AccountKind, id int32) error {
	if !kind.Valid() {
		return ErrInvalidAccountKind
	}
	return s.accountRepo.Delete(ctx, kind, id)
}

// MarkOverdue flags pending accounts of both ledgers whose due date has passed
func (s *accountService) MarkOverdue(ctx context.Context, today domain.Date) (int64, error) {
	var total int64
	for _, kind := range []domain.AccountKind{domain.AccountPayable, domain.AccountReceivable} {
		n, err := s.accountRepo.MarkOverdue(ctx, kind, today)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
