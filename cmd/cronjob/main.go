package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"star-gestao-backend/internal/clients/bcb"
	"star-gestao-backend/internal/config"
	"star-gestao-backend/internal/jobs"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository/postgres"
	"star-gestao-backend/internal/scheduler"
	"star-gestao-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'mark-overdue-installments', 'all-daily')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Star Gestão cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	ctx := context.Background()
	var (
		mailer service.Mailer
		pusher service.Pusher
	)
	if sg := cfg.Notifications.SendGrid; sg.Enabled() {
		mailer = service.NewSendGridMailer(sg.APIKey, sg.FromEmail, sg.FromName, sg.Recipients)
		logger.Info("SendGrid email enabled", "recipients", len(sg.Recipients))
	}
	if fb := cfg.Notifications.Firebase; fb.Enabled() {
		p, err := service.NewFirebasePusher(ctx, fb.CredentialsFile, fb.ProjectID, fb.Topic)
		if err != nil {
			logger.Error("Firebase push disabled", "error", err)
		} else {
			pusher = p
			logger.Info("Firebase push enabled", "topic", fb.Topic)
		}
	}

	jobServices := &jobs.Services{
		Accounts: service.NewAccountService(store.AccountRepository),
		Rates: service.NewRateService(
			store.RateRepository,
			bcb.NewClient(cfg.Rates.BCBBaseURL, time.Duration(cfg.Rates.TimeoutSeconds)*time.Second),
			service.RateDefaults{CDIAnnual: cfg.Rates.CDIAnnual, SELICAnnual: cfg.Rates.SELICAnnual},
		),
		Notifications: service.NewNotificationService(
			store.AccountRepository,
			store.FinancingRepository,
			mailer,
			pusher,
			cfg.Notifications.HorizonDays,
		),
	}
	if sh := cfg.Sheets; sh.Enabled() {
		w, err := service.NewGoogleSheetWriter(ctx, sh.CredentialsFile, sh.SpreadsheetID)
		if err != nil {
			logger.Error("Sheets export disabled", "error", err)
		} else {
			jobServices.Export = service.NewExportService(store.FinancingRepository, store.AccountRepository, w)
			logger.Info("Sheets export enabled", "spreadsheet_id", sh.SpreadsheetID)
		}
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store.FinancingRepository, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		logger.Error("Failed to initialize scheduler", "error", err)
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}

	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.", "jobs", cronScheduler.Entries())

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "mark-overdue-installments":
		jobRunner.MarkOverdueInstallments()
	case "mark-overdue-accounts":
		jobRunner.MarkOverdueAccounts()
	case "refresh-benchmark-rates":
		jobRunner.RefreshBenchmarkRates()
	case "send-due-reminders":
		jobRunner.SendDueReminders()
	case "export-sheets":
		jobRunner.ExportSheets()
	case "all-daily":
		jobRunner.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - mark-overdue-installments\n")
		fmt.Printf("  - mark-overdue-accounts\n")
		fmt.Printf("  - refresh-benchmark-rates\n")
		fmt.Printf("  - send-due-reminders\n")
		fmt.Printf("  - export-sheets\n")
		fmt.Printf("  - all-daily\n")
		os.Exit(1)
	}
}
