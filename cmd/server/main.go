package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcapi "star-gestao-backend/internal/api/grpc"
	"star-gestao-backend/internal/api/grpc/interceptor"
	httpapi "star-gestao-backend/internal/api/http"
	"star-gestao-backend/internal/clients/bcb"
	"star-gestao-backend/internal/config"
	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository/postgres"
	"star-gestao-backend/internal/security"
	"star-gestao-backend/internal/service"
	"star-gestao-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Star Gestão backend...", "version", cfg.App.Version, "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "http_address", cfg.GetServerAddress(), "grpc_port", cfg.Server.GRPCPort)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize receipt storage
	receipts, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir, tokenManager)
	if err != nil {
		logger.Error("Failed to initialize receipt storage", "error", err)
		log.Fatalf("Failed to initialize receipt storage: %v", err)
	}
	logger.Info("Using local receipt storage", "upload_dir", cfg.Storage.UploadDir)

	// Optional spreadsheet export
	var sheetWriter service.SheetWriter
	if sh := cfg.Sheets; sh.Enabled() {
		w, err := service.NewGoogleSheetWriter(ctx, sh.CredentialsFile, sh.SpreadsheetID)
		if err != nil {
			logger.Error("Sheets export disabled", "error", err)
		} else {
			sheetWriter = w
			logger.Info("Sheets export enabled", "spreadsheet_id", sh.SpreadsheetID)
		}
	}

	// Initialize Services
	rateSvc := service.NewRateService(
		store.RateRepository,
		bcb.NewClient(cfg.Rates.BCBBaseURL, time.Duration(cfg.Rates.TimeoutSeconds)*time.Second),
		service.RateDefaults{CDIAnnual: cfg.Rates.CDIAnnual, SELICAnnual: cfg.Rates.SELICAnnual},
	)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	itemSvc := service.NewItemService(store.ItemRepository)
	commitmentSvc := service.NewCommitmentService(store.CommitmentRepository, store.ItemRepository)
	partSvc := service.NewVehiclePartService(store.VehiclePartRepository, store.ItemRepository)
	financingSvc := service.NewFinancingService(store.FinancingRepository, rateSvc, receipts)
	accountSvc := service.NewAccountService(store.AccountRepository)
	dashboardSvc := service.NewDashboardService(
		store.DashboardRepository,
		store.AccountRepository,
		store.FinancingRepository,
		domain.AppInfo{Name: cfg.App.Name, Version: cfg.App.Version},
	)
	exportSvc := service.NewExportService(store.FinancingRepository, store.AccountRepository, sheetWriter)

	// HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Auth:        authSvc,
		Items:       itemSvc,
		Commitments: commitmentSvc,
		Parts:       partSvc,
		Financings:  financingSvc,
		Accounts:    accountSvc,
		Dashboard:   dashboardSvc,
		Export:      exportSvc,
	}, httpapi.RouterOptions{
		AllowedOrigins:      cfg.Server.AllowedOrigins,
		Receipts:            receipts,
		Tokens:              tokenManager,
		MaxReceiptBytes:     cfg.Storage.MaxFileSize << 20,
		AllowedReceiptTypes: cfg.Storage.AllowedTypes,
	})
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	// gRPC server
	var grpcServer *grpc.Server
	if cfg.Server.GRPCPort > 0 {
		lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
		if err != nil {
			logger.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
			log.Fatalf("Failed to listen: %v", err)
		}

		authInterceptor := interceptor.NewAuthInterceptor(tokenManager)
		grpcServer = grpc.NewServer(grpc.UnaryInterceptor(authInterceptor.Unary()))

		health := grpcapi.NewHealthChecker(dashboardSvc.Health, 30*time.Second)
		go health.Run(ctx)
		healthpb.RegisterHealthServer(grpcServer, health.Server())
		grpcapi.RegisterFinancingServiceServer(grpcServer, grpcapi.NewFinancingHandler(financingSvc))

		// Register reflection service for grpcurl
		reflection.Register(grpcServer)

		go func() {
			logger.Info("gRPC server listening", "address", cfg.GetGRPCAddress())
			if err := grpcServer.Serve(lis); err != nil {
				logger.Error("Failed to serve gRPC", "error", err)
				stop()
			}
		}()
	}

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	logger.Info("Server stopped")
}
