package service

import (
	"context"
	"time"

	"star-gestao-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)
	// Authenticate validates an access token and returns the user id it carries
	Authenticate(ctx context.Context, token string) (int32, error)
}

type ItemService interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id int32) (*domain.Item, error)
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id int32) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, name string) (*domain.Category, error)
}

type CommitmentService interface {
	CreateCommitment(ctx context.Context, c *domain.Commitment) error
	GetCommitment(ctx context.Context, id int32) (*domain.Commitment, error)
	ListCommitments(ctx context.Context) ([]domain.Commitment, error)
	UpdateCommitment(ctx context.Context, c *domain.Commitment) error
	DeleteCommitment(ctx context.Context, id int32) error
	CheckAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.Availability, error)
}

type VehiclePartService interface {
	CreatePart(ctx context.Context, p *domain.VehiclePart) error
	GetPart(ctx context.Context, id int32) (*domain.VehiclePart, error)
	ListParts(ctx context.Context, vehicleID *int32) ([]domain.VehiclePart, error)
	UpdatePart(ctx context.Context, p *domain.VehiclePart) error
	DeletePart(ctx context.Context, id int32) error
}

type FinancingService interface {
	CreateFinancing(ctx context.Context, in domain.FinancingInput) (*domain.Financing, error)
	GetFinancing(ctx context.Context, id int32) (*domain.Financing, error)
	ListFinancings(ctx context.Context, status domain.FinancingStatus) ([]domain.Financing, error)
	// UpdateFinancing regenerates the schedule when its inputs changed and
	// nothing is paid yet, otherwise patches the header only
	UpdateFinancing(ctx context.Context, id int32, in domain.FinancingInput) (*domain.Financing, error)
	DeleteFinancing(ctx context.Context, id int32) error
	CancelFinancing(ctx context.Context, id int32) (*domain.Financing, error)
	Simulate(ctx context.Context, in domain.FinancingInput) (*domain.Simulation, error)

	RecordPayment(ctx context.Context, financingID, installmentID int32, p domain.PaymentInput) (*domain.Financing, error)
	UpdateInstallment(ctx context.Context, financingID, installmentID int32, patch domain.InstallmentPatch) (*domain.Financing, error)
	// PrepareReceiptUpload reserves a storage key for the receipt and links it to the installment
	PrepareReceiptUpload(ctx context.Context, financingID, installmentID int32, filename, contentType string) (*ReceiptUpload, error)
	PresentValue(ctx context.Context, id int32, source domain.RateSource, asOf domain.Date) (*domain.PresentValue, error)
}

type AccountService interface {
	CreateAccount(ctx context.Context, a *domain.Account) error
	ListAccounts(ctx context.Context, kind domain.AccountKind, filter domain.AccountFilter) ([]domain.Account, error)
	// SettleAccount marks the account paid (or received) on paidOn, today when nil
	SettleAccount(ctx context.Context, kind domain.AccountKind, id int32, paidOn *domain.Date) (*domain.Account, error)
	DeleteAccount(ctx context.Context, kind domain.AccountKind, id int32) error
	MarkOverdue(ctx context.Context, today domain.Date) (int64, error)
}

type DashboardService interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
	GetFinancialDashboard(ctx context.Context) (*domain.FinancialDashboard, error)
	GetInfo() domain.AppInfo
	Health(ctx context.Context) error
}

type RateService interface {
	// GetRate returns the stored rate, or the configured default when none was fetched yet
	GetRate(ctx context.Context, source domain.RateSource) (*domain.BenchmarkRate, error)
	// RefreshRates fetches every benchmark from the central bank and stores it
	RefreshRates(ctx context.Context) error
}

type NotificationService interface {
	// CollectDue gathers unpaid items due up to today + horizon
	CollectDue(ctx context.Context, today domain.Date) ([]domain.DueItem, error)
	// SendDueReminders sends the digest over every configured channel and returns the item count
	SendDueReminders(ctx context.Context, today domain.Date) (int, error)
}

type ExportService interface {
	ExportAll(ctx context.Context) error
}

// Mailer delivers a plain text and HTML email to the configured recipients
type Mailer interface {
	Send(ctx context.Context, subject, plainText, html string) error
}

// Pusher delivers a push notification to the configured topic
type Pusher interface {
	Push(ctx context.Context, title, body string, data map[string]string) error
}

// SheetWriter replaces the content of one tab of the export spreadsheet
type SheetWriter interface {
	WriteTab(ctx context.Context, tab string, rows [][]any) error
}

// RateFetcher returns the latest annual rate of a benchmark
type RateFetcher interface {
	FetchAnnualRate(ctx context.Context, source domain.RateSource) (float64, time.Time, error)
}

type ReceiptUpload struct {
	Key         string `json:"key"`
	UploadURL   string `json:"upload_url"`
	DownloadURL string `json:"download_url"`
	ExpiresAt   int64  `json:"expires_at"`
}
