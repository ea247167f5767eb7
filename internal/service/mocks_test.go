package service

import (
	"context"
	"io"
	"time"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/security"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommitmentRepo struct {
	mock.Mock
}

func (m *MockCommitmentRepo) Create(ctx context.Context, c *domain.Commitment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCommitmentRepo) GetByID(ctx context.Context, id int32) (*domain.Commitment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commitment), args.Error(1)
}
func (m *MockCommitmentRepo) List(ctx context.Context) ([]domain.Commitment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Commitment), args.Error(1)
}
func (m *MockCommitmentRepo) Update(ctx context.Context, c *domain.Commitment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCommitmentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCommitmentRepo) ListActiveOn(ctx context.Context, day domain.Date) ([]domain.Commitment, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Commitment), args.Error(1)
}

type MockVehiclePartRepo struct {
	mock.Mock
}

func (m *MockVehiclePartRepo) Create(ctx context.Context, p *domain.VehiclePart) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockVehiclePartRepo) GetByID(ctx context.Context, id int32) (*domain.VehiclePart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehiclePart), args.Error(1)
}
func (m *MockVehiclePartRepo) List(ctx context.Context, vehicleID *int32) ([]domain.VehiclePart, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.VehiclePart), args.Error(1)
}
func (m *MockVehiclePartRepo) Update(ctx context.Context, p *domain.VehiclePart) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockVehiclePartRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFinancingRepo struct {
	mock.Mock
}

func (m *MockFinancingRepo) Create(ctx context.Context, f *domain.Financing) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFinancingRepo) GetByID(ctx context.Context, id int32) (*domain.Financing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Financing), args.Error(1)
}
func (m *MockFinancingRepo) List(ctx context.Context, status domain.FinancingStatus) ([]domain.Financing, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Financing), args.Error(1)
}
func (m *MockFinancingRepo) Update(ctx context.Context, f *domain.Financing, replaceSchedule bool) error {
	args := m.Called(ctx, f, replaceSchedule)
	return args.Error(0)
}
func (m *MockFinancingRepo) SaveInstallment(ctx context.Context, f *domain.Financing, inst *domain.Installment) error {
	args := m.Called(ctx, f, inst)
	return args.Error(0)
}
func (m *MockFinancingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockFinancingRepo) MarkOverdueInstallments(ctx context.Context, today domain.Date) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockFinancingRepo) ListUnpaidInstallments(ctx context.Context, until domain.Date) ([]domain.UpcomingInstallment, error) {
	args := m.Called(ctx, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UpcomingInstallment), args.Error(1)
}
func (m *MockFinancingRepo) ListAllInstallments(ctx context.Context) ([]domain.Installment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}
func (m *MockFinancingRepo) ActiveTotals(ctx context.Context) (int32, float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Get(1).(float64), args.Error(2)
}

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, kind domain.AccountKind, id int32) (*domain.Account, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) List(ctx context.Context, kind domain.AccountKind, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, kind, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) MarkPaid(ctx context.Context, kind domain.AccountKind, id int32, paidOn domain.Date) (*domain.Account, error) {
	args := m.Called(ctx, kind, id, paidOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) Delete(ctx context.Context, kind domain.AccountKind, id int32) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}
func (m *MockAccountRepo) MarkOverdue(ctx context.Context, kind domain.AccountKind, today domain.Date) (int64, error) {
	args := m.Called(ctx, kind, today)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAccountRepo) ListDue(ctx context.Context, kind domain.AccountKind, until domain.Date) ([]domain.Account, error) {
	args := m.Called(ctx, kind, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) Totals(ctx context.Context, kind domain.AccountKind, today domain.Date) (*domain.AccountTotals, error) {
	args := m.Called(ctx, kind, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountTotals), args.Error(1)
}

type MockRateRepo struct {
	mock.Mock
}

func (m *MockRateRepo) Get(ctx context.Context, source domain.RateSource) (*domain.BenchmarkRate, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BenchmarkRate), args.Error(1)
}
func (m *MockRateRepo) Upsert(ctx context.Context, rate *domain.BenchmarkRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

type MockDashboardRepo struct {
	mock.Mock
}

func (m *MockDashboardRepo) GetStats(ctx context.Context, today, upcomingUntil domain.Date) (*domain.Stats, error) {
	args := m.Called(ctx, today, upcomingUntil)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}
func (m *MockDashboardRepo) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRate(ctx context.Context, source domain.RateSource) (*domain.BenchmarkRate, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BenchmarkRate), args.Error(1)
}
func (m *MockRateService) RefreshRates(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) FetchAnnualRate(ctx context.Context, source domain.RateSource) (float64, time.Time, error) {
	args := m.Called(ctx, source)
	return args.Get(0).(float64), args.Get(1).(time.Time), args.Error(2)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, subject, plainText, html string) error {
	args := m.Called(ctx, subject, plainText, html)
	return args.Error(0)
}

type MockPusher struct {
	mock.Mock
}

func (m *MockPusher) Push(ctx context.Context, title, body string, data map[string]string) error {
	args := m.Called(ctx, title, body, data)
	return args.Error(0)
}

type MockSheetWriter struct {
	mock.Mock
}

func (m *MockSheetWriter) WriteTab(ctx context.Context, tab string, rows [][]any) error {
	args := m.Called(ctx, tab, rows)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	args := m.Called(key, reader)
	return args.Error(0)
}
func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID int32, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateTransferToken(key string, ttl time.Duration) (string, error) {
	args := m.Called(key, ttl)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
