package financing

import (
	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/money"
)

// RecordPayment marks the installment Paid and stores every payment
// component. The paid amount is not reconciled against the effective
// amount due; partial and over-payments are accepted.
func RecordPayment(inst *domain.Installment, p domain.PaymentInput) error {
	if p.PaidAmount < 0 || p.Interest < 0 || p.Penalty < 0 || p.Discount < 0 {
		return ErrNegativeAmount
	}
	if p.PaymentDate.IsZero() {
		return ErrMissingPaymentDate
	}

	paidOn := p.PaymentDate
	inst.PaidAmount = money.RoundToCents(p.PaidAmount)
	inst.Interest = money.RoundToCents(p.Interest)
	inst.Penalty = money.RoundToCents(p.Penalty)
	inst.Discount = money.RoundToCents(p.Discount)
	inst.PaymentDate = &paidOn
	inst.Status = domain.InstallmentStatusPaid
	return nil
}

// UpdateStatus overrides the status directly. Payment data is kept.
func UpdateStatus(inst *domain.Installment, status domain.InstallmentStatus) error {
	if !status.Valid() {
		return ErrInvalidInstallmentState
	}
	inst.Status = status
	return nil
}

// ApplyPatch applies the non-nil fields of patch.
func ApplyPatch(inst *domain.Installment, patch domain.InstallmentPatch) error {
	if patch.Status != nil && !patch.Status.Valid() {
		return ErrInvalidInstallmentState
	}
	if patch.OriginalAmount != nil && *patch.OriginalAmount < 0 {
		return ErrNegativeAmount
	}
	if patch.DueDate != nil && patch.DueDate.IsZero() {
		return ErrMissingDueDate
	}

	if patch.Status != nil {
		inst.Status = *patch.Status
	}
	if patch.BoletoLink != nil {
		inst.BoletoLink = *patch.BoletoLink
	}
	if patch.OriginalAmount != nil {
		inst.OriginalAmount = money.RoundToCents(*patch.OriginalAmount)
	}
	if patch.DueDate != nil {
		inst.DueDate = *patch.DueDate
	}
	return nil
}

// Summary holds the aggregates a contract exposes about its schedule.
type Summary struct {
	Paid      int32
	Remaining int32
	PaidTotal float64
}

func Summarize(installments []domain.Installment) Summary {
	var s Summary
	var cents int64
	for _, inst := range installments {
		if inst.Status == domain.InstallmentStatusPaid {
			s.Paid++
			cents += money.ToCents(inst.PaidAmount)
		}
	}
	s.Remaining = int32(len(installments)) - s.Paid
	s.PaidTotal = money.FromCents(cents)
	return s
}

// ApplySummary recomputes the contract aggregates from its installments
// and moves it between Active and Settled. Cancelled contracts keep their status.
func ApplySummary(f *domain.Financing) {
	s := Summarize(f.Installments)
	f.PaidCount = s.Paid
	f.RemainingCount = s.Remaining
	f.PaidTotal = s.PaidTotal

	if f.Status == domain.FinancingStatusCancelled {
		return
	}
	if len(f.Installments) > 0 && s.Remaining == 0 {
		f.Status = domain.FinancingStatusSettled
	} else {
		f.Status = domain.FinancingStatusActive
	}
}

// HasPayments reports whether any installment has been paid.
func HasPayments(installments []domain.Installment) bool {
	for _, inst := range installments {
		if inst.Status == domain.InstallmentStatusPaid {
			return true
		}
	}
	return false
}
