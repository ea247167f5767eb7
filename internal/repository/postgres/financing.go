package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"

	"github.com/lib/pq"
)

type financingRepository struct {
	db *sql.DB
}

func NewFinancingRepository(db *sql.DB) repository.FinancingRepository {
	return &financingRepository{db: db}
}

const financingColumns = `f.id, f.codigo_contrato, f.valor_total, f.valor_entrada, f.valor_financiado, f.numero_parcelas,
	f.taxa_juros, f.data_inicio, COALESCE(f.instituicao_financeira, ''), COALESCE(f.observacoes, ''), f.tipo_parcelamento,
	f.status, f.parcelas_pagas, f.parcelas_restantes, f.valor_pago_total, f.version, f.created_on, f.updated_on,
	COALESCE(array_agg(fi.item_id ORDER BY fi.item_id) FILTER (WHERE fi.item_id IS NOT NULL), '{}')`

const financingFrom = ` FROM financiamentos f LEFT JOIN financiamento_itens fi ON fi.financiamento_id = f.id`

const installmentColumns = `id, financiamento_id, numero, data_vencimento, valor_original, valor_pago, data_pagamento,
	juros, multa, desconto, status, COALESCE(link_boleto, ''), COALESCE(link_comprovante, '')`

func scanFinancing(row rowScanner) (*domain.Financing, error) {
	var f domain.Financing
	var code sql.NullString
	var itemIDs pq.Int64Array
	err := row.Scan(&f.ID, &code, &f.TotalValue, &f.DownPayment, &f.FinancedAmount, &f.InstallmentCount,
		&f.InterestRate, &f.StartDate, &f.Institution, &f.Notes, &f.ScheduleType,
		&f.Status, &f.PaidCount, &f.RemainingCount, &f.PaidTotal, &f.Version, &f.CreatedOn, &f.UpdatedOn,
		&itemIDs)
	if err != nil {
		return nil, err
	}
	if code.Valid {
		f.ContractCode = &code.String
	}
	f.ItemIDs = make([]int32, len(itemIDs))
	for i, id := range itemIDs {
		f.ItemIDs[i] = int32(id)
	}
	return &f, nil
}

func scanInstallment(row rowScanner) (*domain.Installment, error) {
	var inst domain.Installment
	var paidOn domain.Date
	err := row.Scan(&inst.ID, &inst.FinancingID, &inst.Number, &inst.DueDate, &inst.OriginalAmount, &inst.PaidAmount, &paidOn,
		&inst.Interest, &inst.Penalty, &inst.Discount, &inst.Status, &inst.BoletoLink, &inst.ReceiptLink)
	if err != nil {
		return nil, err
	}
	if !paidOn.IsZero() {
		inst.PaymentDate = &paidOn
	}
	return &inst, nil
}

func codeArg(code *string) sql.NullString {
	if code == nil {
		return sql.NullString{}
	}
	return nullString(*code)
}

func itemIDArray(ids []int32) any {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return pq.Array(out)
}

func (r *financingRepository) Create(ctx context.Context, f *domain.Financing) error {
	logger.EnterMethod("financingRepository.Create", "installments", len(f.Installments))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO financiamentos (codigo_contrato, valor_total, valor_entrada, valor_financiado, numero_parcelas,
	          taxa_juros, data_inicio, instituicao_financeira, observacoes, tipo_parcelamento, status,
	          parcelas_pagas, parcelas_restantes, valor_pago_total, version)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 1)
	          RETURNING id, version, created_on, updated_on`
	err = tx.QueryRowContext(ctx, query, codeArg(f.ContractCode), f.TotalValue, f.DownPayment, f.FinancedAmount, f.InstallmentCount,
		f.InterestRate, f.StartDate, nullString(f.Institution), nullString(f.Notes), f.ScheduleType, f.Status,
		f.PaidCount, f.RemainingCount, f.PaidTotal).Scan(&f.ID, &f.Version, &f.CreatedOn, &f.UpdatedOn)
	if err != nil {
		logger.ExitMethodWithError("financingRepository.Create", err)
		return mapError(err)
	}

	if err := replaceItemLinks(ctx, tx, f); err != nil {
		return err
	}
	if err := insertInstallments(ctx, tx, f); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.ExitMethod("financingRepository.Create", "id", f.ID)
	return nil
}

func replaceItemLinks(ctx context.Context, tx *sql.Tx, f *domain.Financing) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM financiamento_itens WHERE financiamento_id = $1`, f.ID); err != nil {
		return err
	}
	if len(f.ItemIDs) == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx, `INSERT INTO financiamento_itens (financiamento_id, item_id)
	          SELECT $1::int, item_id FROM unnest($2::int[]) AS item_id ON CONFLICT DO NOTHING`, f.ID, itemIDArray(f.ItemIDs))
	return mapError(err)
}

func insertInstallments(ctx context.Context, tx *sql.Tx, f *domain.Financing) error {
	query := `INSERT INTO parcelas (financiamento_id, numero, data_vencimento, valor_original, valor_pago, data_pagamento,
	          juros, multa, desconto, status, link_boleto, link_comprovante)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	for i := range f.Installments {
		inst := &f.Installments[i]
		inst.FinancingID = f.ID
		err := tx.QueryRowContext(ctx, query, f.ID, inst.Number, inst.DueDate, inst.OriginalAmount, inst.PaidAmount, inst.PaymentDate,
			inst.Interest, inst.Penalty, inst.Discount, inst.Status, nullString(inst.BoletoLink), nullString(inst.ReceiptLink)).Scan(&inst.ID)
		if err != nil {
			return mapError(err)
		}
	}
	return nil
}

func (r *financingRepository) GetByID(ctx context.Context, id int32) (*domain.Financing, error) {
	query := `SELECT ` + financingColumns + financingFrom + ` WHERE f.id = $1 GROUP BY f.id`
	logger.DatabaseCall("SELECT", "financiamentos", "id", id)
	f, err := scanFinancing(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "id", id)
		return nil, mapError(err)
	}

	insts, err := r.listInstallments(ctx, `WHERE financiamento_id = $1`, id)
	if err != nil {
		return nil, err
	}
	f.Installments = insts
	return f, nil
}

func (r *financingRepository) listInstallments(ctx context.Context, where string, args ...any) ([]domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM parcelas ` + where + ` ORDER BY financiamento_id, numero`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insts []domain.Installment
	for rows.Next() {
		inst, err := scanInstallment(rows)
		if err != nil {
			return nil, err
		}
		insts = append(insts, *inst)
	}
	return insts, rows.Err()
}

func (r *financingRepository) List(ctx context.Context, status domain.FinancingStatus) ([]domain.Financing, error) {
	query := `SELECT ` + financingColumns + financingFrom
	var args []any
	if status != "" {
		query += ` WHERE f.status = $1`
		args = append(args, status)
	}
	query += ` GROUP BY f.id ORDER BY f.data_inicio DESC, f.id DESC`

	logger.DatabaseCall("SELECT", "financiamentos", "status", status)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var list []domain.Financing
	for rows.Next() {
		f, err := scanFinancing(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *f)
	}
	logger.DatabaseResult("SELECT", int64(len(list)), rows.Err())
	return list, rows.Err()
}

// bumpVersion runs a versioned header update. Zero affected rows means
// either the contract is gone or someone else wrote it first.
func bumpVersion(ctx context.Context, tx *sql.Tx, f *domain.Financing, query string, args ...any) error {
	var newVersion int32
	err := tx.QueryRowContext(ctx, query, args...).Scan(&newVersion, &f.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM financiamentos WHERE id = $1)`, f.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return repository.ErrNotFound
		}
		return fmt.Errorf("%w: financing %d at version %d", repository.ErrVersionConflict, f.ID, f.Version)
	}
	if err != nil {
		return mapError(err)
	}
	f.Version = newVersion
	return nil
}

func (r *financingRepository) Update(ctx context.Context, f *domain.Financing, replaceSchedule bool) error {
	logger.EnterMethod("financingRepository.Update", "id", f.ID, "version", f.Version, "replaceSchedule", replaceSchedule)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE financiamentos SET codigo_contrato=$1, valor_total=$2, valor_entrada=$3, valor_financiado=$4,
	          numero_parcelas=$5, taxa_juros=$6, data_inicio=$7, instituicao_financeira=$8, observacoes=$9,
	          tipo_parcelamento=$10, status=$11, parcelas_pagas=$12, parcelas_restantes=$13, valor_pago_total=$14,
	          version = version + 1, updated_on = NOW()
	          WHERE id=$15 AND version=$16 RETURNING version, updated_on`
	err = bumpVersion(ctx, tx, f, query, codeArg(f.ContractCode), f.TotalValue, f.DownPayment, f.FinancedAmount,
		f.InstallmentCount, f.InterestRate, f.StartDate, nullString(f.Institution), nullString(f.Notes),
		f.ScheduleType, f.Status, f.PaidCount, f.RemainingCount, f.PaidTotal, f.ID, f.Version)
	if err != nil {
		logger.ExitMethodWithError("financingRepository.Update", err, "id", f.ID)
		return err
	}

	if err := replaceItemLinks(ctx, tx, f); err != nil {
		return err
	}
	if replaceSchedule {
		if _, err := tx.ExecContext(ctx, `DELETE FROM parcelas WHERE financiamento_id = $1`, f.ID); err != nil {
			return err
		}
		if err := insertInstallments(ctx, tx, f); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.ExitMethod("financingRepository.Update", "id", f.ID, "version", f.Version)
	return nil
}

func (r *financingRepository) SaveInstallment(ctx context.Context, f *domain.Financing, inst *domain.Installment) error {
	logger.EnterMethod("financingRepository.SaveInstallment", "financingID", f.ID, "installmentID", inst.ID)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = bumpVersion(ctx, tx, f, `UPDATE financiamentos SET status=$1, parcelas_pagas=$2, parcelas_restantes=$3, valor_pago_total=$4,
	          version = version + 1, updated_on = NOW()
	          WHERE id=$5 AND version=$6 RETURNING version, updated_on`,
		f.Status, f.PaidCount, f.RemainingCount, f.PaidTotal, f.ID, f.Version)
	if err != nil {
		logger.ExitMethodWithError("financingRepository.SaveInstallment", err, "financingID", f.ID)
		return err
	}

	query := `UPDATE parcelas SET data_vencimento=$1, valor_original=$2, valor_pago=$3, data_pagamento=$4, juros=$5, multa=$6,
	          desconto=$7, status=$8, link_boleto=$9, link_comprovante=$10 WHERE id=$11 AND financiamento_id=$12`
	result, err := tx.ExecContext(ctx, query, inst.DueDate, inst.OriginalAmount, inst.PaidAmount, inst.PaymentDate, inst.Interest,
		inst.Penalty, inst.Discount, inst.Status, nullString(inst.BoletoLink), nullString(inst.ReceiptLink), inst.ID, f.ID)
	if err != nil {
		return mapError(err)
	}
	if err := expectOneRow(result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logger.ExitMethod("financingRepository.SaveInstallment", "financingID", f.ID, "version", f.Version)
	return nil
}

func (r *financingRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM financiamentos WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err)
	}
	return expectOneRow(result)
}

func (r *financingRepository) MarkOverdueInstallments(ctx context.Context, today domain.Date) (int64, error) {
	query := `UPDATE parcelas SET status = 'Atrasado'
	          WHERE status = 'Pendente' AND data_vencimento < $1
	          AND financiamento_id IN (SELECT id FROM financiamentos WHERE status = 'Ativo')`
	logger.DatabaseCall("UPDATE", "parcelas", "today", today.String())
	result, err := r.db.ExecContext(ctx, query, today)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return 0, err
	}
	n, err := result.RowsAffected()
	logger.DatabaseResult("UPDATE", n, err)
	return n, err
}

func (r *financingRepository) ListUnpaidInstallments(ctx context.Context, until domain.Date) ([]domain.UpcomingInstallment, error) {
	query := `SELECT f.id, f.codigo_contrato, COALESCE(f.instituicao_financeira, ''), p.id, p.numero, p.data_vencimento, p.valor_original, p.status
	          FROM parcelas p JOIN financiamentos f ON f.id = p.financiamento_id
	          WHERE f.status = 'Ativo' AND p.status <> 'Pago' AND p.data_vencimento <= $1
	          ORDER BY p.data_vencimento, f.id, p.numero`
	rows, err := r.db.QueryContext(ctx, query, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []domain.UpcomingInstallment
	for rows.Next() {
		var u domain.UpcomingInstallment
		var code sql.NullString
		if err := rows.Scan(&u.FinancingID, &code, &u.Institution, &u.InstallmentID, &u.Number, &u.DueDate, &u.OriginalAmount, &u.Status); err != nil {
			return nil, err
		}
		if code.Valid {
			u.ContractCode = &code.String
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *financingRepository) ListAllInstallments(ctx context.Context) ([]domain.Installment, error) {
	return r.listInstallments(ctx, "")
}

func (r *financingRepository) ActiveTotals(ctx context.Context) (int32, float64, error) {
	query := `SELECT COUNT(DISTINCT f.id), COALESCE(SUM(p.valor_original + p.juros + p.multa - p.desconto) FILTER (WHERE p.status <> 'Pago'), 0)
	          FROM financiamentos f LEFT JOIN parcelas p ON p.financiamento_id = f.id
	          WHERE f.status = 'Ativo'`
	var count int32
	var balance float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count, &balance); err != nil {
		return 0, 0, err
	}
	return count, balance, nil
}
