package scheduler

import (
	"testing"

	"star-gestao-backend/internal/config"
	"star-gestao-backend/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schedulerConfig() *config.Config {
	return &config.Config{Scheduler: config.SchedulerConfig{
		MarkOverdueInstallments: "0 5 3 * * *",
		MarkOverdueAccounts:     "0 10 3 * * *",
		RefreshBenchmarkRates:   "0 0 10 * * 1-5",
		SendDueReminders:        "0 0 11 * * *",
		ExportSheets:            "0 0 * * * *",
		JobTimeoutSeconds:       60,
	}}
}

func TestNewScheduler(t *testing.T) {
	t.Run("RegistersAllJobs", func(t *testing.T) {
		s, err := NewScheduler(jobs.NewJobRunner(nil, &jobs.Services{}, schedulerConfig()))
		require.NoError(t, err)
		assert.Equal(t, 5, s.Entries())

		s.Start()
		s.Stop()
	})

	t.Run("InvalidExpression", func(t *testing.T) {
		cfg := schedulerConfig()
		// five fields are rejected when seconds are enabled
		cfg.Scheduler.ExportSheets = "0 * * * *"

		_, err := NewScheduler(jobs.NewJobRunner(nil, &jobs.Services{}, cfg))
		assert.ErrorContains(t, err, "ExportSheets")
	})
}
