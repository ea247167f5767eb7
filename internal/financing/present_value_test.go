package financing

import (
	"testing"

	"star-gestao-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePresentValue(t *testing.T) {
	asOf := d("2025-01-10")

	t.Run("Two periods at one percent", func(t *testing.T) {
		insts := []domain.Installment{
			{Number: 1, DueDate: d("2025-03-10"), OriginalAmount: 1000, Status: domain.InstallmentStatusPending},
		}
		pv, err := ComputePresentValue(insts, asOf, 0.01)
		require.NoError(t, err)
		require.NotNil(t, pv)
		assert.Equal(t, 980.30, pv.PresentValue)
		assert.Equal(t, 1000.0, pv.RemainingTotal)
		assert.Equal(t, int32(1), pv.RemainingCount)
		assert.Equal(t, 0.01, pv.DiscountRate)
		assert.Equal(t, asOf, pv.AsOf)
	})

	t.Run("Filters paid and past installments", func(t *testing.T) {
		insts := []domain.Installment{
			{Number: 1, DueDate: d("2024-12-10"), OriginalAmount: 1000, Status: domain.InstallmentStatusOverdue},
			{Number: 2, DueDate: d("2025-02-10"), OriginalAmount: 1000, Status: domain.InstallmentStatusPaid},
			{Number: 3, DueDate: d("2025-01-10"), OriginalAmount: 1000, Status: domain.InstallmentStatusPending},
			{Number: 4, DueDate: d("2025-04-10"), OriginalAmount: 1000, Interest: 20, Penalty: 10, Discount: 30, Status: domain.InstallmentStatusPending},
		}
		pv, err := ComputePresentValue(insts, asOf, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(2), pv.RemainingCount)
		assert.Equal(t, 2000.0, pv.RemainingTotal)
		assert.Equal(t, 2000.0, pv.PresentValue)
	})

	t.Run("Nothing remaining", func(t *testing.T) {
		insts := []domain.Installment{
			{Number: 1, DueDate: d("2025-02-10"), OriginalAmount: 1000, Status: domain.InstallmentStatusPaid},
		}
		pv, err := ComputePresentValue(insts, asOf, 0.01)
		assert.NoError(t, err)
		assert.Nil(t, pv)

		pv, err = ComputePresentValue(nil, asOf, 0.01)
		assert.NoError(t, err)
		assert.Nil(t, pv)
	})

	t.Run("Equals undiscounted sum at zero rate", func(t *testing.T) {
		insts, err := GenerateSchedule(10000, 12, 0, asOf)
		require.NoError(t, err)
		pv, err := ComputePresentValue(insts, asOf, 0)
		require.NoError(t, err)
		assert.Equal(t, pv.RemainingTotal, pv.PresentValue)
		assert.Equal(t, 10000.0, pv.PresentValue)
	})

	t.Run("Strictly decreasing in rate", func(t *testing.T) {
		insts, err := GenerateSchedule(10000, 12, 0, asOf)
		require.NoError(t, err)

		prev := 1e18
		for _, rate := range []float64{0, 0.001, 0.005, 0.01, 0.02, 0.05, 0.1} {
			pv, err := ComputePresentValue(insts, asOf, rate)
			require.NoError(t, err)
			assert.Less(t, pv.PresentValue, prev, "rate=%v", rate)
			prev = pv.PresentValue
		}
	})

	t.Run("Invalid rate", func(t *testing.T) {
		_, err := ComputePresentValue(nil, asOf, -1)
		assert.ErrorIs(t, err, ErrInvalidDiscountRate)
	})
}

func TestMonthlyFromAnnual(t *testing.T) {
	assert.InDelta(t, 0.0, MonthlyFromAnnual(0), 1e-12)
	assert.InDelta(t, 0.00797414, MonthlyFromAnnual(0.10), 1e-8)
	// compounding back gives the annual rate
	m := MonthlyFromAnnual(0.1365)
	assert.InDelta(t, 0.1365, (1+m)*(1+m)*(1+m)*(1+m)*(1+m)*(1+m)*(1+m)*(1+m)*(1+m)*(1+m)*(1+m)*(1+m)-1, 1e-9)
}
