package http

import (
	"context"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginResult), args.Error(1)
}
func (m *MockAuthService) Authenticate(ctx context.Context, token string) (int32, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int32), args.Error(1)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemService) GetItem(ctx context.Context, id int32) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemService) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemService) UpdateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemService) DeleteItem(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockItemService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockItemService) GetCategory(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

type MockFinancingService struct {
	mock.Mock
}

func (m *MockFinancingService) CreateFinancing(ctx context.Context, in domain.FinancingInput) (*domain.Financing, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Financing), args.Error(1)
}
func (m *MockFinancingService) GetFinancing(ctx context.Context, id int32) (*domain.Financing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Financing), args.Error(1)
}
func (m *MockFinancingService) ListFinancings(ctx context.Context, status domain.FinancingStatus) ([]domain.Financing, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Financing), args.Error(1)
}
func (m *MockFinancingService) UpdateFinancing(ctx context.Context, id int32, in domain.FinancingInput) (*domain.Financing, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Financing), args.Error(1)
}
func (m *MockFinancingService) DeleteFinancing(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockFinancingService) CancelFinancing(ctx context.Context, id int32) (*domain.Financing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Financing), args.Error(1)
}
func (m *MockFinancingService) Simulate(ctx context.Context, in domain.FinancingInput) (*domain.Simulation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Simulation), args.Error(1)
}
func (m *MockFinancingService) RecordPayment(ctx context.Context, financingID, installmentID int32, p domain.PaymentInput) (*domain.Financing, error) {
	args := m.Called(ctx, financingID, installmentID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Financing), args.Error(1)
}
func (m *MockFinancingService) UpdateInstallment(ctx context.Context, financingID, installmentID int32, patch domain.InstallmentPatch) (*domain.Financing, error) {
	args := m.Called(ctx, financingID, installmentID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Financing), args.Error(1)
}
func (m *MockFinancingService) PrepareReceiptUpload(ctx context.Context, financingID, installmentID int32, filename, contentType string) (*service.ReceiptUpload, error) {
	args := m.Called(ctx, financingID, installmentID, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReceiptUpload), args.Error(1)
}
func (m *MockFinancingService) PresentValue(ctx context.Context, id int32, source domain.RateSource, asOf domain.Date) (*domain.PresentValue, error) {
	args := m.Called(ctx, id, source, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PresentValue), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, kind domain.AccountKind, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, kind, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) SettleAccount(ctx context.Context, kind domain.AccountKind, id int32, paidOn *domain.Date) (*domain.Account, error) {
	args := m.Called(ctx, kind, id, paidOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, kind domain.AccountKind, id int32) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}
func (m *MockAccountService) MarkOverdue(ctx context.Context, today domain.Date) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetStats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}
func (m *MockDashboardService) GetFinancialDashboard(ctx context.Context) (*domain.FinancialDashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialDashboard), args.Error(1)
}
func (m *MockDashboardService) GetInfo() domain.AppInfo {
	args := m.Called()
	return args.Get(0).(domain.AppInfo)
}
func (m *MockDashboardService) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
