package service

import (
	"context"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"
)

const (
	upcomingCommitmentDays  = 7
	upcomingInstallmentDays = 30
)

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	accountRepo   repository.AccountRepository
	financingRepo repository.FinancingRepository
	info          domain.AppInfo
}

func NewDashboardService(
	dashboardRepo repository.DashboardRepository,
	accountRepo repository.AccountRepository,
	financingRepo repository.FinancingRepository,
	info domain.AppInfo,
) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		accountRepo:   accountRepo,
		financingRepo: financingRepo,
		info:          info,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*domain.Stats, error) {
	today := domain.Today()
	stats, err := s.dashboardRepo.GetStats(ctx, today, today.AddDays(upcomingCommitmentDays))
	if err != nil {
		return nil, err
	}
	if stats.ByCategory == nil {
		stats.ByCategory = []domain.CategoryCount{}
	}
	return stats, nil
}

func (s *dashboardService) GetFinancialDashboard(ctx context.Context) (*domain.FinancialDashboard, error) {
	today := domain.Today()
	d := &domain.FinancialDashboard{}

	payables, err := s.accountRepo.Totals(ctx, domain.AccountPayable, today)
	if err != nil {
		return nil, err
	}
	receivables, err := s.accountRepo.Totals(ctx, domain.AccountReceivable, today)
	if err != nil {
		return nil, err
	}
	d.Payables, d.Receivables = *payables, *receivables

	d.ActiveFinancings, d.FinancedBalance, err = s.financingRepo.ActiveTotals(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.financingRepo.ListUnpaidInstallments(ctx, today.AddDays(upcomingInstallmentDays))
	if err != nil {
		return nil, err
	}
	d.UpcomingInstallments = upcoming
	if d.UpcomingInstallments == nil {
		d.UpcomingInstallments = []domain.UpcomingInstallment{}
	}
	return d, nil
}

func (s *dashboardService) GetInfo() domain.AppInfo {
	return s.info
}

func (s *dashboardService) Health(ctx context.Context) error {
	return s.dashboardRepo.Ping(ctx)
}
