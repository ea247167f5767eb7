package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/financing"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/money"
	"star-gestao-backend/internal/repository"
	"star-gestao-backend/internal/storage"
)

const (
	receiptUploadTTL = 15 * time.Minute
	receiptLinkTTL   = 5 * 365 * 24 * time.Hour
)

type financingService struct {
	financingRepo repository.FinancingRepository
	rates         RateService
	receipts      storage.Storage
}

func NewFinancingService(financingRepo repository.FinancingRepository, rates RateService, receipts storage.Storage) FinancingService {
	return &financingService{
		financingRepo: financingRepo,
		rates:         rates,
		receipts:      receipts,
	}
}

// terms is a validated FinancingInput
type terms struct {
	financed     float64
	rate         float64
	scheduleType domain.ScheduleType
	installments []domain.Installment
}

func buildTerms(in domain.FinancingInput, requireConfirmation bool) (*terms, error) {
	rate, needsConfirmation := money.NormalizePercent(in.InterestRate)
	if rate < 0 {
		return nil, financing.ErrNegativeRate
	}
	if requireConfirmation && needsConfirmation && !in.ConfirmRate {
		return nil, ErrRateNeedsConfirmation
	}
	if in.StartDate.IsZero() {
		return nil, financing.ErrMissingStartDate
	}

	financed, err := financing.FinancedAmount(in.TotalValue, in.DownPayment)
	if err != nil {
		return nil, err
	}
	if financed <= 0 {
		return nil, financing.ErrNonPositiveFinanced
	}

	t := &terms{financed: financed, rate: rate, scheduleType: in.ScheduleType}
	switch in.ScheduleType {
	case domain.ScheduleTypeCustom:
		t.installments, err = financing.GenerateCustomSchedule(in.CustomSchedule)
	case domain.ScheduleTypeFixed, "":
		t.scheduleType = domain.ScheduleTypeFixed
		t.installments, err = financing.GenerateSchedule(financed, int(in.InstallmentCount), rate, in.StartDate)
	default:
		return nil, domain.NewValidationError("tipo de parcelamento inválido: %s", in.ScheduleType)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func contractCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func applyHeader(f *domain.Financing, in domain.FinancingInput, t *terms) {
	f.ContractCode = contractCode(in.ContractCode)
	f.ItemIDs = in.ItemIDs
	if f.ItemIDs == nil {
		f.ItemIDs = []int32{}
	}
	f.TotalValue = money.RoundToCents(in.TotalValue)
	f.DownPayment = money.RoundToCents(in.DownPayment)
	f.FinancedAmount = t.financed
	f.InterestRate = t.rate
	f.StartDate = in.StartDate
	f.Institution = strings.TrimSpace(in.Institution)
	f.Notes = in.Notes
	f.ScheduleType = t.scheduleType
}

func (s *financingService) CreateFinancing(ctx context.Context, in domain.FinancingInput) (*domain.Financing, error) {
	logger.EnterMethod("financingService.CreateFinancing", "total", in.TotalValue, "parcelas", in.InstallmentCount, "tipo", in.ScheduleType)

	t, err := buildTerms(in, true)
	if err != nil {
		logger.ExitMethodWithError("financingService.CreateFinancing", err)
		return nil, err
	}

	f := &domain.Financing{Status: domain.FinancingStatusActive}
	applyHeader(f, in, t)
	f.Installments = t.installments
	f.InstallmentCount = int32(len(t.installments))
	financing.ApplySummary(f)

	if err := s.financingRepo.Create(ctx, f); err != nil {
		logger.ExitMethodWithError("financingService.CreateFinancing", err)
		return nil, err
	}

	logger.ExitMethod("financingService.CreateFinancing", "id", f.ID, "parcelas", f.InstallmentCount)
	return f, nil
}

func (s *financingService) GetFinancing(ctx context.Context, id int32) (*domain.Financing, error) {
	return s.financingRepo.GetByID(ctx, id)
}

func (s *financingService) ListFinancings(ctx context.Context, status domain.FinancingStatus) ([]domain.Financing, error) {
	return s.financingRepo.List(ctx, status)
}

// scheduleChanged reports whether the stored schedule no longer matches the new terms
func scheduleChanged(f *domain.Financing, t *terms) bool {
	if f.ScheduleType != t.scheduleType || len(f.Installments) != len(t.installments) {
		return true
	}
	if money.ToCents(f.FinancedAmount) != money.ToCents(t.financed) || math.Abs(f.InterestRate-t.rate) > 1e-9 {
		return true
	}
	for i := range t.installments {
		old, want := f.Installments[i], t.installments[i]
		if money.ToCents(old.OriginalAmount) != money.ToCents(want.OriginalAmount) || !old.DueDate.Equal(want.DueDate.Time) {
			return true
		}
	}
	return false
}

func (s *financingService) UpdateFinancing(ctx context.Context, id int32, in domain.FinancingInput) (*domain.Financing, error) {
	logger.EnterMethod("financingService.UpdateFinancing", "id", id)

	f, err := s.financingRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("financingService.UpdateFinancing", err, "id", id)
		return nil, err
	}
	if in.Version != nil && *in.Version != f.Version {
		err := fmt.Errorf("%w: financing %d is at version %d", repository.ErrVersionConflict, id, f.Version)
		logger.ExitMethodWithError("financingService.UpdateFinancing", err, "id", id)
		return nil, err
	}

	// Only a rate that actually changes needs a fresh confirmation
	rate, _ := money.NormalizePercent(in.InterestRate)
	t, err := buildTerms(in, math.Abs(rate-f.InterestRate) > 1e-9)
	if err != nil {
		logger.ExitMethodWithError("financingService.UpdateFinancing", err, "id", id)
		return nil, err
	}

	replace := scheduleChanged(f, t)
	if replace && financing.HasPayments(f.Installments) {
		logger.ExitMethodWithError("financingService.UpdateFinancing", ErrScheduleLocked, "id", id)
		return nil, ErrScheduleLocked
	}

	applyHeader(f, in, t)
	if replace {
		f.Installments = t.installments
		f.InstallmentCount = int32(len(t.installments))
	}
	financing.ApplySummary(f)

	if err := s.financingRepo.Update(ctx, f, replace); err != nil {
		logger.ExitMethodWithError("financingService.UpdateFinancing", err, "id", id)
		return nil, err
	}

	logger.ExitMethod("financingService.UpdateFinancing", "id", id, "version", f.Version, "regenerated", replace)
	return f, nil
}

func (s *financingService) DeleteFinancing(ctx context.Context, id int32) error {
	return s.financingRepo.Delete(ctx, id)
}

func (s *financingService) CancelFinancing(ctx context.Context, id int32) (*domain.Financing, error) {
	f, err := s.financingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.Status == domain.FinancingStatusCancelled {
		return f, nil
	}
	f.Status = domain.FinancingStatusCancelled
	if err := s.financingRepo.Update(ctx, f, false); err != nil {
		return nil, err
	}
	logger.Info("Financing cancelled", "id", id, "version", f.Version)
	return f, nil
}

func (s *financingService) Simulate(ctx context.Context, in domain.FinancingInput) (*domain.Simulation, error) {
	rate, _ := money.NormalizePercent(in.InterestRate)
	start := in.StartDate
	if start.IsZero() {
		start = domain.Today()
	}
	return financing.Simulate(in.TotalValue, in.DownPayment, int(in.InstallmentCount), rate, start)
}

// mutateInstallment loads the contract, applies fn to one installment,
// recomputes the aggregates and persists both under the version check.
func (s *financingService) mutateInstallment(ctx context.Context, op string, financingID, installmentID int32, fn func(*domain.Installment) error) (*domain.Financing, error) {
	logger.EnterMethod(op, "financingID", financingID, "installmentID", installmentID)

	f, err := s.financingRepo.GetByID(ctx, financingID)
	if err != nil {
		logger.ExitMethodWithError(op, err, "financingID", financingID)
		return nil, err
	}
	if f.Status == domain.FinancingStatusCancelled {
		return nil, ErrFinancingCancelled
	}
	inst := f.FindInstallment(installmentID)
	if inst == nil {
		return nil, ErrInstallmentNotFound
	}

	if err := fn(inst); err != nil {
		logger.ExitMethodWithError(op, err, "financingID", financingID)
		return nil, err
	}
	financing.ApplySummary(f)

	if err := s.financingRepo.SaveInstallment(ctx, f, inst); err != nil {
		logger.ExitMethodWithError(op, err, "financingID", financingID)
		return nil, err
	}

	logger.ExitMethod(op, "financingID", financingID, "status", f.Status, "version", f.Version)
	return f, nil
}

func (s *financingService) RecordPayment(ctx context.Context, financingID, installmentID int32, p domain.PaymentInput) (*domain.Financing, error) {
	if p.PaymentDate.IsZero() {
		p.PaymentDate = domain.Today()
	}
	return s.mutateInstallment(ctx, "financingService.RecordPayment", financingID, installmentID, func(inst *domain.Installment) error {
		return financing.RecordPayment(inst, p)
	})
}

func (s *financingService) UpdateInstallment(ctx context.Context, financingID, installmentID int32, patch domain.InstallmentPatch) (*domain.Financing, error) {
	return s.mutateInstallment(ctx, "financingService.UpdateInstallment", financingID, installmentID, func(inst *domain.Installment) error {
		return financing.ApplyPatch(inst, patch)
	})
}

func (s *financingService) PrepareReceiptUpload(ctx context.Context, financingID, installmentID int32, filename, contentType string) (*ReceiptUpload, error) {
	if s.receipts == nil {
		return nil, errors.New("receipt storage is not configured")
	}
	if strings.TrimSpace(filename) == "" {
		return nil, domain.NewValidationError("informe o nome do arquivo")
	}

	key := storage.ReceiptKey(financingID, installmentID, filename)
	uploadURL, err := s.receipts.GenerateUploadURL(ctx, key, contentType, receiptUploadTTL)
	if err != nil {
		return nil, err
	}
	downloadURL, err := s.receipts.GenerateDownloadURL(ctx, key, receiptLinkTTL)
	if err != nil {
		return nil, err
	}

	_, err = s.mutateInstallment(ctx, "financingService.PrepareReceiptUpload", financingID, installmentID, func(inst *domain.Installment) error {
		inst.ReceiptLink = downloadURL
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ReceiptUpload{
		Key:         key,
		UploadURL:   uploadURL,
		DownloadURL: downloadURL,
		ExpiresAt:   time.Now().Add(receiptUploadTTL).Unix(),
	}, nil
}

func (s *financingService) PresentValue(ctx context.Context, id int32, source domain.RateSource, asOf domain.Date) (*domain.PresentValue, error) {
	logger.EnterMethod("financingService.PresentValue", "id", id, "source", source, "asOf", asOf.String())

	f, err := s.financingRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("financingService.PresentValue", err, "id", id)
		return nil, err
	}
	rate, err := s.rates.GetRate(ctx, source)
	if err != nil {
		logger.ExitMethodWithError("financingService.PresentValue", err, "id", id)
		return nil, err
	}

	pv, err := financing.ComputePresentValue(f.Installments, asOf, rate.MonthlyRate)
	if err != nil {
		return nil, err
	}
	if pv != nil {
		pv.RateSource = source
	}
	logger.ExitMethod("financingService.PresentValue", "id", id, "remaining", pv != nil)
	return pv, nil
}
