package jobs

import (
	"context"
	"fmt"

	"star-gestao-backend/internal/logger"
)

// MarkOverdueInstallments flags unpaid installments of active contracts whose due date has passed
func (jr *JobRunner) MarkOverdueInstallments() {
	jr.runWithRecovery("MarkOverdueInstallments", func(ctx context.Context) error {
		count, err := jr.financings.MarkOverdueInstallments(ctx, jr.today())
		if err != nil {
			return fmt.Errorf("mark overdue installments: %w", err)
		}
		logger.Info("Marked installments as overdue", "count", count)
		return nil
	})
}

// RefreshBenchmarkRates pulls the latest CDI and SELIC rates from the central bank
func (jr *JobRunner) RefreshBenchmarkRates() {
	jr.runWithRecovery("RefreshBenchmarkRates", func(ctx context.Context) error {
		return jr.services.Rates.RefreshRates(ctx)
	})
}
