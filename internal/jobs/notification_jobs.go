package jobs

import (
	"context"
	"fmt"

	"star-gestao-backend/internal/logger"
)

// SendDueReminders sends the daily digest of items due soon or overdue
func (jr *JobRunner) SendDueReminders() {
	jr.runWithRecovery("SendDueReminders", func(ctx context.Context) error {
		count, err := jr.services.Notifications.SendDueReminders(ctx, jr.today())
		if err != nil {
			return fmt.Errorf("send due reminders: %w", err)
		}
		logger.Info("Due reminders processed", "items", count)
		return nil
	})
}

// ExportSheets pushes contracts, installments and accounts to the spreadsheet
func (jr *JobRunner) ExportSheets() {
	if jr.services.Export == nil {
		logger.Debug("Spreadsheet export not configured, skipping job")
		return
	}
	jr.runWithRecovery("ExportSheets", func(ctx context.Context) error {
		return jr.services.Export.ExportAll(ctx)
	})
}
