package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// accountTable returns the table and counterparty column of a ledger
func accountTable(kind domain.AccountKind) (string, string, error) {
	switch kind {
	case domain.AccountPayable:
		return "contas_pagar", "fornecedor", nil
	case domain.AccountReceivable:
		return "contas_receber", "cliente", nil
	}
	return "", "", fmt.Errorf("unknown account kind %q", kind)
}

func accountColumns(counterparty string) string {
	return `id, descricao, categoria, valor, data_vencimento, data_pagamento, status, item_id, COALESCE(` + counterparty + `, ''),
	COALESCE(forma_pagamento, ''), COALESCE(observacoes, ''), created_on`
}

func scanAccount(row rowScanner, kind domain.AccountKind) (*domain.Account, error) {
	a := domain.Account{Kind: kind}
	var paidOn domain.Date
	var itemID sql.NullInt32
	err := row.Scan(&a.ID, &a.Description, &a.Category, &a.Amount, &a.DueDate, &paidOn, &a.Status, &itemID,
		&a.Counterparty, &a.PaymentMethod, &a.Notes, &a.CreatedOn)
	if err != nil {
		return nil, err
	}
	if !paidOn.IsZero() {
		a.PaymentDate = &paidOn
	}
	a.ItemID = int32Ptr(itemID)
	return &a, nil
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	table, counterparty, err := accountTable(a.Kind)
	if err != nil {
		return err
	}
	query := `INSERT INTO ` + table + ` (descricao, categoria, valor, data_vencimento, data_pagamento, status, item_id, ` + counterparty + `, forma_pagamento, observacoes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on`
	err = r.db.QueryRowContext(ctx, query, a.Description, a.Category, a.Amount, a.DueDate, a.PaymentDate, a.Status,
		nullInt32(a.ItemID), nullString(a.Counterparty), nullString(a.PaymentMethod), nullString(a.Notes)).Scan(&a.ID, &a.CreatedOn)
	return mapError(err)
}

func (r *accountRepository) GetByID(ctx context.Context, kind domain.AccountKind, id int32) (*domain.Account, error) {
	table, counterparty, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + accountColumns(counterparty) + ` FROM ` + table + ` WHERE id = $1`
	a, err := scanAccount(r.db.QueryRowContext(ctx, query, id), kind)
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *accountRepository) List(ctx context.Context, kind domain.AccountKind, filter domain.AccountFilter) ([]domain.Account, error) {
	table, counterparty, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + accountColumns(counterparty) + ` FROM ` + table + ` WHERE 1=1`
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND categoria = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND data_vencimento >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND data_vencimento <= $%d", len(args))
	}
	query += " ORDER BY data_vencimento, id"
	return r.query(ctx, kind, query, args...)
}

func (r *accountRepository) query(ctx context.Context, kind domain.AccountKind, query string, args ...any) ([]domain.Account, error) {
	logger.DatabaseCall("SELECT", string(kind))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var list []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows, kind)
		if err != nil {
			return nil, err
		}
		list = append(list, *a)
	}
	logger.DatabaseResult("SELECT", int64(len(list)), rows.Err())
	return list, rows.Err()
}

func (r *accountRepository) MarkPaid(ctx context.Context, kind domain.AccountKind, id int32, paidOn domain.Date) (*domain.Account, error) {
	table, counterparty, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	query := `UPDATE ` + table + ` SET status = 'Pago', data_pagamento = $1 WHERE id = $2 RETURNING ` + accountColumns(counterparty)
	a, err := scanAccount(r.db.QueryRowContext(ctx, query, paidOn, id), kind)
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *accountRepository) Delete(ctx context.Context, kind domain.AccountKind, id int32) error {
	table, _, err := accountTable(kind)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err)
	}
	return expectOneRow(result)
}

func (r *accountRepository) MarkOverdue(ctx context.Context, kind domain.AccountKind, today domain.Date) (int64, error) {
	table, _, err := accountTable(kind)
	if err != nil {
		return 0, err
	}
	logger.DatabaseCall("UPDATE", table, "today", today.String())
	result, err := r.db.ExecContext(ctx, `UPDATE `+table+` SET status = 'Atrasado' WHERE status = 'Pendente' AND data_vencimento < $1`, today)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return 0, err
	}
	n, err := result.RowsAffected()
	logger.DatabaseResult("UPDATE", n, err)
	return n, err
}

func (r *accountRepository) ListDue(ctx context.Context, kind domain.AccountKind, until domain.Date) ([]domain.Account, error) {
	table, counterparty, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + accountColumns(counterparty) + ` FROM ` + table + ` WHERE status <> 'Pago' AND data_vencimento <= $1 ORDER BY data_vencimento, id`
	return r.query(ctx, kind, query, until)
}

func (r *accountRepository) Totals(ctx context.Context, kind domain.AccountKind, today domain.Date) (*domain.AccountTotals, error) {
	table, _, err := accountTable(kind)
	if err != nil {
		return nil, err
	}
	query := `SELECT
	            COALESCE(SUM(valor) FILTER (WHERE status = 'Pendente'), 0),
	            COALESCE(SUM(valor) FILTER (WHERE status = 'Atrasado'), 0),
	            COALESCE(SUM(valor) FILTER (WHERE status = 'Pago' AND date_trunc('month', data_pagamento) = date_trunc('month', $1::date)), 0)
	          FROM ` + table
	var t domain.AccountTotals
	if err := r.db.QueryRowContext(ctx, query, today).Scan(&t.Pending, &t.Overdue, &t.PaidThisMonth); err != nil {
		return nil, err
	}
	return &t, nil
}
