package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"star-gestao-backend/internal/config"
	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"
	"star-gestao-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFinancingRepo struct {
	mock.Mock
	repository.FinancingRepository
}

func (m *mockFinancingRepo) MarkOverdueInstallments(ctx context.Context, today domain.Date) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

type mockAccountService struct {
	mock.Mock
	service.AccountService
}

func (m *mockAccountService) MarkOverdue(ctx context.Context, today domain.Date) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

type mockRateService struct {
	mock.Mock
	service.RateService
}

func (m *mockRateService) RefreshRates(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockNotificationService struct {
	mock.Mock
	service.NotificationService
}

func (m *mockNotificationService) SendDueReminders(ctx context.Context, today domain.Date) (int, error) {
	args := m.Called(ctx, today)
	return args.Int(0), args.Error(1)
}

type mockExportService struct {
	mock.Mock
}

func (m *mockExportService) ExportAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type testDeps struct {
	financings    *mockFinancingRepo
	accounts      *mockAccountService
	rates         *mockRateService
	notifications *mockNotificationService
	export        *mockExportService
}

func newTestRunner(withExport bool) (*JobRunner, *testDeps) {
	deps := &testDeps{
		financings:    new(mockFinancingRepo),
		accounts:      new(mockAccountService),
		rates:         new(mockRateService),
		notifications: new(mockNotificationService),
		export:        new(mockExportService),
	}
	svcs := &Services{
		Accounts:      deps.accounts,
		Rates:         deps.rates,
		Notifications: deps.notifications,
	}
	if withExport {
		svcs.Export = deps.export
	}
	cfg := &config.Config{Scheduler: config.SchedulerConfig{JobTimeoutSeconds: 30}}
	jr := NewJobRunner(deps.financings, svcs, cfg)
	jr.now = func() time.Time { return time.Date(2024, time.June, 14, 22, 30, 0, 0, time.UTC) }
	return jr, deps
}

var june14 = mock.MatchedBy(func(d domain.Date) bool {
	return d.Equal(domain.NewDate(2024, time.June, 14).Time)
})

// withDeadline asserts that jobs never receive an unbounded context.
var withDeadline = mock.MatchedBy(func(ctx context.Context) bool {
	_, ok := ctx.Deadline()
	return ok
})

func TestMarkOverdueInstallments(t *testing.T) {
	jr, deps := newTestRunner(false)
	deps.financings.On("MarkOverdueInstallments", withDeadline, june14).Return(int64(2), nil).Once()

	jr.MarkOverdueInstallments()

	deps.financings.AssertExpectations(t)
}

func TestMarkOverdueAccounts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		jr, deps := newTestRunner(false)
		deps.accounts.On("MarkOverdue", withDeadline, june14).Return(int64(5), nil).Once()

		jr.MarkOverdueAccounts()

		deps.accounts.AssertExpectations(t)
	})

	t.Run("ErrorIsContained", func(t *testing.T) {
		jr, deps := newTestRunner(false)
		deps.accounts.On("MarkOverdue", mock.Anything, june14).Return(int64(0), errors.New("db down")).Once()

		assert.NotPanics(t, jr.MarkOverdueAccounts)
		deps.accounts.AssertExpectations(t)
	})
}

func TestRefreshBenchmarkRates(t *testing.T) {
	jr, deps := newTestRunner(false)
	deps.rates.On("RefreshRates", withDeadline).Return(nil).Once()

	jr.RefreshBenchmarkRates()

	deps.rates.AssertExpectations(t)
}

func TestSendDueReminders(t *testing.T) {
	jr, deps := newTestRunner(false)
	deps.notifications.On("SendDueReminders", withDeadline, june14).Return(3, nil).Once()

	jr.SendDueReminders()

	deps.notifications.AssertExpectations(t)
}

func TestExportSheets(t *testing.T) {
	t.Run("Configured", func(t *testing.T) {
		jr, deps := newTestRunner(true)
		deps.export.On("ExportAll", withDeadline).Return(nil).Once()

		jr.ExportSheets()

		deps.export.AssertExpectations(t)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		jr, deps := newTestRunner(false)

		jr.ExportSheets()

		deps.export.AssertNotCalled(t, "ExportAll", mock.Anything)
	})
}

func TestRunWithRecovery_Panic(t *testing.T) {
	jr, deps := newTestRunner(false)
	deps.rates.On("RefreshRates", mock.Anything).Run(func(mock.Arguments) {
		panic("boom")
	}).Return(nil).Once()

	assert.NotPanics(t, jr.RefreshBenchmarkRates)
	deps.rates.AssertExpectations(t)
}

func TestRunAllDailyJobs(t *testing.T) {
	jr, deps := newTestRunner(true)
	var order []string
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) { order = append(order, name) }
	}
	deps.financings.On("MarkOverdueInstallments", mock.Anything, june14).Run(record("installments")).Return(int64(0), nil).Once()
	deps.accounts.On("MarkOverdue", mock.Anything, june14).Run(record("accounts")).Return(int64(0), nil).Once()
	deps.rates.On("RefreshRates", mock.Anything).Run(record("rates")).Return(nil).Once()
	deps.notifications.On("SendDueReminders", mock.Anything, june14).Run(record("reminders")).Return(0, nil).Once()
	deps.export.On("ExportAll", mock.Anything).Run(record("export")).Return(nil).Once()

	jr.RunAllDailyJobs()

	assert.Equal(t, []string{"installments", "accounts", "rates", "reminders", "export"}, order)
}
