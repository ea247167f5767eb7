package postgres

import (
	"context"
	"database/sql"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"
)

type dashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *dashboardRepository) GetStats(ctx context.Context, today, upcomingUntil domain.Date) (*domain.Stats, error) {
	s := &domain.Stats{}

	rows, err := r.db.QueryContext(ctx, `SELECT categoria, COUNT(*), COALESCE(SUM(quantidade), 0) FROM itens GROUP BY categoria ORDER BY categoria`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Items, &c.Quantity); err != nil {
			return nil, err
		}
		s.TotalItems += c.Items
		s.TotalQuantity += c.Quantity
		s.ByCategory = append(s.ByCategory, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query := `SELECT
	            COUNT(*) FILTER (WHERE data_inicio <= $1 AND data_fim >= $1),
	            COUNT(*) FILTER (WHERE data_inicio > $1 AND data_inicio <= $2)
	          FROM compromissos`
	if err := r.db.QueryRowContext(ctx, query, today, upcomingUntil).Scan(&s.ActiveCommitments, &s.UpcomingCommitments); err != nil {
		return nil, err
	}
	return s, nil
}
