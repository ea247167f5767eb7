package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/financing"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"
)

// RateDefaults are the annual rates used until a benchmark has been fetched once
type RateDefaults struct {
	CDIAnnual   float64
	SELICAnnual float64
}

func (d RateDefaults) annual(source domain.RateSource) float64 {
	if source == domain.RateSourceCDI {
		return d.CDIAnnual
	}
	return d.SELICAnnual
}

var rateSources = []domain.RateSource{domain.RateSourceCDI, domain.RateSourceSELIC}

type rateService struct {
	rateRepo repository.RateRepository
	fetcher  RateFetcher
	defaults RateDefaults
}

// NewRateService builds the rate service. fetcher may be nil, in which case
// refreshing is a no-op and stored or default rates are served.
func NewRateService(rateRepo repository.RateRepository, fetcher RateFetcher, defaults RateDefaults) RateService {
	return &rateService{
		rateRepo: rateRepo,
		fetcher:  fetcher,
		defaults: defaults,
	}
}

func (s *rateService) defaultRate(source domain.RateSource) *domain.BenchmarkRate {
	annual := s.defaults.annual(source)
	return &domain.BenchmarkRate{
		Source:      source,
		AnnualRate:  annual,
		MonthlyRate: financing.MonthlyFromAnnual(annual),
	}
}

func (s *rateService) GetRate(ctx context.Context, source domain.RateSource) (*domain.BenchmarkRate, error) {
	if source != domain.RateSourceCDI && source != domain.RateSourceSELIC {
		return nil, domain.NewValidationError("fonte de taxa desconhecida: %s", source)
	}

	rate, err := s.rateRepo.Get(ctx, source)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logger.Warn("Failed to load stored benchmark rate, using default", "source", source, "error", err)
	}
	return s.defaultRate(source), nil
}

// RefreshRates keeps the stored value of any benchmark that fails to refresh
func (s *rateService) RefreshRates(ctx context.Context) error {
	if s.fetcher == nil {
		return nil
	}

	var errs []error
	for _, source := range rateSources {
		annual, observed, err := s.fetcher.FetchAnnualRate(ctx, source)
		if err != nil {
			logger.Warn("Benchmark rate refresh failed, keeping previous value", "source", source, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", source, err))
			continue
		}
		if observed.IsZero() {
			observed = time.Now()
		}
		rate := &domain.BenchmarkRate{
			Source:      source,
			AnnualRate:  annual,
			MonthlyRate: financing.MonthlyFromAnnual(annual),
			UpdatedOn:   observed,
		}
		if err := s.rateRepo.Upsert(ctx, rate); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", source, err))
			continue
		}
		logger.Info("Benchmark rate refreshed", "source", source, "annual", annual, "monthly", rate.MonthlyRate)
	}
	return errors.Join(errs...)
}
