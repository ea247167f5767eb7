package jobs

import (
	"context"
	"fmt"

	"star-gestao-backend/internal/logger"
)

// MarkOverdueAccounts moves pending payables and receivables past their due date to overdue
func (jr *JobRunner) MarkOverdueAccounts() {
	jr.runWithRecovery("MarkOverdueAccounts", func(ctx context.Context) error {
		count, err := jr.services.Accounts.MarkOverdue(ctx, jr.today())
		if err != nil {
			return fmt.Errorf("mark overdue accounts: %w", err)
		}
		logger.Info("Marked accounts as overdue", "count", count)
		return nil
	})
}
