package jobs

import (
	"context"
	"time"

	"star-gestao-backend/internal/config"
	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"
	"star-gestao-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	financings repository.FinancingRepository
	services   *Services
	config     *config.Config
	now        func() time.Time
}

// Services holds all service dependencies needed by jobs.
// Export is nil when the spreadsheet export is not configured.
type Services struct {
	Accounts      service.AccountService
	Rates         service.RateService
	Notifications service.NotificationService
	Export        service.ExportService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(financings repository.FinancingRepository, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		financings: financings,
		services:   services,
		config:     cfg,
		now:        time.Now,
	}
}

// Config returns the configuration the jobs were built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

func (jr *JobRunner) today() domain.Date {
	return domain.DateOf(jr.now())
}

// runWithRecovery wraps job execution with panic recovery and a per-job timeout
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	timeout := time.Duration(jr.config.Scheduler.JobTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	ctx = logger.ContextWithRequestID(ctx, jobName)

	logger.Info("Starting job", "job", jobName)
	start := time.Now()
	if err := jobFunc(ctx); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err, "duration", time.Since(start))
		return
	}
	logger.Info("Job completed", "job", jobName, "duration", time.Since(start))
}

// RunAllDailyJobs runs every job once, in dependency order (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.MarkOverdueInstallments()
	jr.MarkOverdueAccounts()
	jr.RefreshBenchmarkRates()
	jr.SendDueReminders()
	jr.ExportSheets()
}
