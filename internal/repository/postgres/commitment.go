package postgres

import (
	"context"
	"database/sql"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"

	"github.com/lib/pq"
)

type commitmentRepository struct {
	db *sql.DB
}

func NewCommitmentRepository(db *sql.DB) repository.CommitmentRepository {
	return &commitmentRepository{db: db}
}

const commitmentColumns = `id, descricao, data_inicio, data_fim, COALESCE(cliente, ''), COALESCE(contrato_numero, ''), created_on`

func (r *commitmentRepository) Create(ctx context.Context, c *domain.Commitment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO compromissos (descricao, data_inicio, data_fim, cliente, contrato_numero)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_on`
	err = tx.QueryRowContext(ctx, query, c.Description, c.StartDate, c.EndDate, nullString(c.Client), nullString(c.ContractNumber)).
		Scan(&c.ID, &c.CreatedOn)
	if err != nil {
		return mapError(err)
	}
	if err := insertCommitmentItems(ctx, tx, c); err != nil {
		return err
	}
	return tx.Commit()
}

func insertCommitmentItems(ctx context.Context, tx *sql.Tx, c *domain.Commitment) error {
	for _, ci := range c.Items {
		_, err := tx.ExecContext(ctx, `INSERT INTO compromisso_itens (compromisso_id, item_id, quantidade) VALUES ($1, $2, $3)`,
			c.ID, ci.ItemID, ci.Quantity)
		if err != nil {
			return mapError(err)
		}
	}
	return nil
}

func (r *commitmentRepository) GetByID(ctx context.Context, id int32) (*domain.Commitment, error) {
	var c domain.Commitment
	query := `SELECT ` + commitmentColumns + ` FROM compromissos WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Description, &c.StartDate, &c.EndDate, &c.Client, &c.ContractNumber, &c.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}

	list := []domain.Commitment{c}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

func (r *commitmentRepository) List(ctx context.Context) ([]domain.Commitment, error) {
	query := `SELECT ` + commitmentColumns + ` FROM compromissos ORDER BY data_inicio DESC, id DESC`
	return r.query(ctx, query)
}

func (r *commitmentRepository) ListActiveOn(ctx context.Context, day domain.Date) ([]domain.Commitment, error) {
	query := `SELECT ` + commitmentColumns + ` FROM compromissos WHERE data_inicio <= $1 AND data_fim >= $1 ORDER BY data_inicio`
	return r.query(ctx, query, day)
}

func (r *commitmentRepository) query(ctx context.Context, query string, args ...any) ([]domain.Commitment, error) {
	logger.DatabaseCall("SELECT", "compromissos")
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var list []domain.Commitment
	for rows.Next() {
		var c domain.Commitment
		if err := rows.Scan(&c.ID, &c.Description, &c.StartDate, &c.EndDate, &c.Client, &c.ContractNumber, &c.CreatedOn); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("SELECT", int64(len(list)), nil)

	if err := r.attachItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachItems loads the item links of every commitment in list with a single query
func (r *commitmentRepository) attachItems(ctx context.Context, list []domain.Commitment) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]int64, len(list))
	index := make(map[int32]int, len(list))
	for i, c := range list {
		ids[i] = int64(c.ID)
		index[c.ID] = i
	}

	query := `SELECT ci.compromisso_id, ci.item_id, ci.quantidade, i.nome
	          FROM compromisso_itens ci JOIN itens i ON i.id = ci.item_id
	          WHERE ci.compromisso_id = ANY($1) ORDER BY ci.compromisso_id, i.nome`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var commitmentID int32
		var ci domain.CommitmentItem
		if err := rows.Scan(&commitmentID, &ci.ItemID, &ci.Quantity, &ci.ItemName); err != nil {
			return err
		}
		if i, ok := index[commitmentID]; ok {
			list[i].Items = append(list[i].Items, ci)
		}
	}
	return rows.Err()
}

func (r *commitmentRepository) Update(ctx context.Context, c *domain.Commitment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE compromissos SET descricao=$1, data_inicio=$2, data_fim=$3, cliente=$4, contrato_numero=$5 WHERE id=$6`
	result, err := tx.ExecContext(ctx, query, c.Description, c.StartDate, c.EndDate, nullString(c.Client), nullString(c.ContractNumber), c.ID)
	if err != nil {
		return mapError(err)
	}
	if err := expectOneRow(result); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM compromisso_itens WHERE compromisso_id = $1`, c.ID); err != nil {
		return err
	}
	if err := insertCommitmentItems(ctx, tx, c); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *commitmentRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM compromissos WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err)
	}
	return expectOneRow(result)
}
