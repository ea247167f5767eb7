package financing

import (
	"math"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/money"
)

// Remaining returns the installments due on or after asOf that are not paid.
func Remaining(installments []domain.Installment, asOf domain.Date) []domain.Installment {
	var out []domain.Installment
	for _, inst := range installments {
		if inst.Status == domain.InstallmentStatusPaid || inst.DueDate.Before(asOf) {
			continue
		}
		out = append(out, inst)
	}
	return out
}

// ComputePresentValue discounts each remaining installment's effective
// amount by (1+rate)^k, k being the months from asOf to its due date.
// It returns nil when no installment remains.
func ComputePresentValue(installments []domain.Installment, asOf domain.Date, monthlyRate float64) (*domain.PresentValue, error) {
	if monthlyRate <= -1 || math.IsNaN(monthlyRate) || math.IsInf(monthlyRate, 0) {
		return nil, ErrInvalidDiscountRate
	}

	remaining := Remaining(installments, asOf)
	if len(remaining) == 0 {
		return nil, nil
	}

	var pv, total float64
	for _, inst := range remaining {
		amount := inst.EffectiveAmount()
		k := MonthsBetween(asOf, inst.DueDate)
		pv += amount / math.Pow(1+monthlyRate, k)
		total += amount
	}

	return &domain.PresentValue{
		PresentValue:   money.RoundToCents(pv),
		RemainingTotal: money.RoundToCents(total),
		RemainingCount: int32(len(remaining)),
		DiscountRate:   monthlyRate,
		AsOf:           asOf,
	}, nil
}

// MonthlyFromAnnual converts an annual effective rate to the equivalent monthly rate.
func MonthlyFromAnnual(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12) - 1
}
