// Package financing holds the arithmetic behind financing contracts:
// schedule generation, the installment ledger and present value.
package financing

import (
	"math"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/money"

	"github.com/shopspring/decimal"
)

// FinancedAmount returns total - down, rejecting a down payment above the total.
func FinancedAmount(total, down float64) (float64, error) {
	if total < 0 || down < 0 {
		return 0, ErrNegativeAmount
	}
	t := decimal.NewFromFloat(total).Round(money.CurrencyDigits)
	d := decimal.NewFromFloat(down).Round(money.CurrencyDigits)
	if d.GreaterThan(t) {
		return 0, ErrDownPaymentExceedsTotal
	}
	return t.Sub(d).InexactFloat64(), nil
}

// GenerateSchedule splits financed evenly over n monthly installments, the
// first due one month after start. Leftover cents go to the first
// installment so the schedule always sums to the financed amount exactly.
// The periodic rate is validated but not applied to the amounts.
func GenerateSchedule(financed float64, n int, rate float64, start domain.Date) ([]domain.Installment, error) {
	if n < 1 {
		return nil, ErrInvalidInstallmentCount
	}
	if rate < 0 {
		return nil, ErrNegativeRate
	}
	if start.IsZero() {
		return nil, ErrMissingStartDate
	}
	total := money.ToCents(financed)
	if total <= 0 {
		return nil, ErrNonPositiveFinanced
	}

	base := total / int64(n)
	remainder := total - base*int64(n)

	installments := make([]domain.Installment, 0, n)
	for i := 1; i <= n; i++ {
		cents := base
		if i == 1 {
			cents += remainder
		}
		installments = append(installments, domain.Installment{
			Number:         int32(i),
			DueDate:        start.AddMonths(i),
			OriginalAmount: money.FromCents(cents),
			Status:         domain.InstallmentStatusPending,
		})
	}
	return installments, nil
}

// GenerateCustomSchedule builds installments from an explicit list, in order.
func GenerateCustomSchedule(entries []domain.ScheduleEntry) ([]domain.Installment, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCustomSchedule
	}

	installments := make([]domain.Installment, 0, len(entries))
	for i, e := range entries {
		if e.Amount < 0 {
			return nil, ErrNegativeAmount
		}
		if e.DueDate.IsZero() {
			return nil, ErrMissingDueDate
		}
		installments = append(installments, domain.Installment{
			Number:         int32(i + 1),
			DueDate:        e.DueDate,
			OriginalAmount: money.RoundToCents(e.Amount),
			Status:         domain.InstallmentStatusPending,
		})
	}
	return installments, nil
}

// ScheduleTotal sums original amounts in cents.
func ScheduleTotal(installments []domain.Installment) float64 {
	var cents int64
	for _, inst := range installments {
		cents += money.ToCents(inst.OriginalAmount)
	}
	return money.FromCents(cents)
}

// AnnuityPayment is the fixed Price-table payment P*r*(1+r)^n / ((1+r)^n - 1).
func AnnuityPayment(financed float64, n int, rate float64) (float64, error) {
	if n < 1 {
		return 0, ErrInvalidInstallmentCount
	}
	if rate < 0 {
		return 0, ErrNegativeRate
	}
	if rate == 0 {
		return money.RoundToCents(financed / float64(n)), nil
	}
	factor := math.Pow(1+rate, float64(n))
	return money.RoundToCents(financed * rate * factor / (factor - 1)), nil
}

// Simulate builds the even-split schedule for a prospective contract along
// with the annuity payment for the same terms. Nothing is persisted.
func Simulate(total, down float64, n int, rate float64, start domain.Date) (*domain.Simulation, error) {
	financed, err := FinancedAmount(total, down)
	if err != nil {
		return nil, err
	}
	installments, err := GenerateSchedule(financed, n, rate, start)
	if err != nil {
		return nil, err
	}
	payment, err := AnnuityPayment(financed, n, rate)
	if err != nil {
		return nil, err
	}
	return &domain.Simulation{
		FinancedAmount: financed,
		Installments:   installments,
		AnnuityPayment: payment,
		AnnuityTotal:   money.FromCents(money.ToCents(payment) * int64(n)),
	}, nil
}
