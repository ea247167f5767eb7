package postgres_test

import (
	"context"
	"testing"
	"time"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"
	"star-gestao-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountCols = []string{"id", "descricao", "categoria", "valor", "data_vencimento", "data_pagamento", "status",
	"item_id", "contraparte", "forma_pagamento", "observacoes", "created_on"}

func TestAccountRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewAccountRepository(db)
	ctx := context.Background()

	t.Run("Payable", func(t *testing.T) {
		a := &domain.Account{Kind: domain.AccountPayable, Description: "Pneus", Category: "Manutenção", Amount: 1800,
			DueDate: domain.NewDate(2025, time.March, 5), Status: domain.AccountStatusPending, Counterparty: "Borracharia Silva"}

		mock.ExpectQuery("INSERT INTO contas_pagar (.+) fornecedor").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(4, time.Now()))

		err := repo.Create(ctx, a)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), a.ID)
	})

	t.Run("Receivable", func(t *testing.T) {
		a := &domain.Account{Kind: domain.AccountReceivable, Description: "Locação gerador", Category: "Locação", Amount: 950,
			DueDate: domain.NewDate(2025, time.March, 5), Status: domain.AccountStatusPending, Counterparty: "Obra Centro"}

		mock.ExpectQuery("INSERT INTO contas_receber (.+) cliente").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(9, time.Now()))

		err := repo.Create(ctx, a)
		assert.NoError(t, err)
		assert.Equal(t, int32(9), a.ID)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Account{Kind: "outro"})
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_MarkPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewAccountRepository(db)
	ctx := context.Background()
	paidOn := domain.NewDate(2025, time.March, 4)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE contas_receber SET status = 'Pago', data_pagamento = \\$1 WHERE id = \\$2 RETURNING").
			WithArgs(paidOn, int32(9)).
			WillReturnRows(sqlmock.NewRows(accountCols).
				AddRow(9, "Locação gerador", "Locação", 950.0, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), paidOn.Time,
					"Pago", nil, "Obra Centro", "PIX", "", time.Now()))

		a, err := repo.MarkPaid(ctx, domain.AccountReceivable, 9, paidOn)
		require.NoError(t, err)
		assert.Equal(t, domain.AccountStatusPaid, a.Status)
		assert.Equal(t, "2025-03-04", a.PaymentDate.String())
		assert.Equal(t, domain.AccountReceivable, a.Kind)
		assert.Nil(t, a.ItemID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE contas_pagar SET status = 'Pago'").
			WillReturnRows(sqlmock.NewRows(accountCols))

		a, err := repo.MarkPaid(ctx, domain.AccountPayable, 99, paidOn)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, a)
	})
}

func TestAccountRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewAccountRepository(db)
	from := domain.NewDate(2025, time.March, 1)

	mock.ExpectQuery("SELECT (.+) FROM contas_pagar WHERE 1=1 AND status = \\$1 AND data_vencimento >= \\$2 ORDER BY data_vencimento, id").
		WithArgs(domain.AccountStatusOverdue, from).
		WillReturnRows(sqlmock.NewRows(accountCols).
			AddRow(1, "Diesel", "Combustível", 600.0, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), nil,
				"Atrasado", 3, "Posto", "", "", time.Now()))

	list, err := repo.List(context.Background(), domain.AccountPayable, domain.AccountFilter{Status: domain.AccountStatusOverdue, From: &from})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int32(3), *list[0].ItemID)
	assert.Nil(t, list[0].PaymentDate)
}

func TestAccountRepository_Totals(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewAccountRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM contas_pagar").
		WillReturnRows(sqlmock.NewRows([]string{"pendente", "atrasado", "pago_mes"}).AddRow(1500.0, 200.0, 3300.25))

	totals, err := repo.Totals(context.Background(), domain.AccountPayable, domain.NewDate(2025, time.March, 10))
	require.NoError(t, err)
	assert.Equal(t, 1500.0, totals.Pending)
	assert.Equal(t, 200.0, totals.Overdue)
	assert.Equal(t, 3300.25, totals.PaidThisMonth)
}

func TestAccountRepository_MarkOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewAccountRepository(db)

	mock.ExpectExec("UPDATE contas_receber SET status = 'Atrasado' WHERE status = 'Pendente'").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.MarkOverdue(context.Background(), domain.AccountReceivable, domain.NewDate(2025, time.March, 10))
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
