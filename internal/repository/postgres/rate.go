package postgres

import (
	"context"
	"database/sql"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"
)

type rateRepository struct {
	db *sql.DB
}

func NewRateRepository(db *sql.DB) repository.RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) Get(ctx context.Context, source domain.RateSource) (*domain.BenchmarkRate, error) {
	rate := &domain.BenchmarkRate{}
	query := `SELECT fonte, taxa_anual, taxa_mensal, atualizado_em FROM taxas_referencia WHERE fonte = $1`
	err := r.db.QueryRowContext(ctx, query, source).Scan(&rate.Source, &rate.AnnualRate, &rate.MonthlyRate, &rate.UpdatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return rate, nil
}

func (r *rateRepository) Upsert(ctx context.Context, rate *domain.BenchmarkRate) error {
	query := `INSERT INTO taxas_referencia (fonte, taxa_anual, taxa_mensal, atualizado_em) VALUES ($1, $2, $3, $4)
	          ON CONFLICT (fonte) DO UPDATE SET taxa_anual = EXCLUDED.taxa_anual, taxa_mensal = EXCLUDED.taxa_mensal, atualizado_em = EXCLUDED.atualizado_em`
	_, err := r.db.ExecContext(ctx, query, rate.Source, rate.AnnualRate, rate.MonthlyRate, rate.UpdatedOn)
	return err
}
