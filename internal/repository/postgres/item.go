package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, nome, quantidade, categoria, COALESCE(localizacao, ''), COALESCE(descricao, ''), tipo,
	COALESCE(marca, ''), COALESCE(modelo, ''), COALESCE(placa, ''), ano, atributos, created_on`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var it domain.Item
	var brand, model, plate string
	var year sql.NullInt32
	var attrs []byte
	err := row.Scan(&it.ID, &it.Name, &it.Quantity, &it.Category, &it.Location, &it.Description, &it.Kind,
		&brand, &model, &plate, &year, &attrs, &it.CreatedOn)
	if err != nil {
		return nil, err
	}
	if it.Kind == domain.ItemKindVehicle {
		it.Vehicle = &domain.Vehicle{Brand: brand, Model: model, Plate: plate, Year: int32Ptr(year)}
	} else if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &it.Attributes); err != nil {
			return nil, fmt.Errorf("failed to decode attributes of item %d: %w", it.ID, err)
		}
	}
	return &it, nil
}

// itemArgs flattens the variant into column values
func itemArgs(it *domain.Item) ([]any, error) {
	var brand, model, plate sql.NullString
	var year sql.NullInt32
	if it.Vehicle != nil {
		brand = nullString(it.Vehicle.Brand)
		model = nullString(it.Vehicle.Model)
		plate = nullString(it.Vehicle.Plate)
		year = nullInt32(it.Vehicle.Year)
	}
	attrs := it.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	encoded, err := json.Marshal(attrs)
	if err != nil {
		return nil, err
	}
	return []any{it.Name, it.Quantity, it.Category, nullString(it.Location), nullString(it.Description), it.Kind,
		brand, model, plate, year, encoded}, nil
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	args, err := itemArgs(it)
	if err != nil {
		return err
	}
	query := `INSERT INTO itens (nome, quantidade, categoria, localizacao, descricao, tipo, marca, modelo, placa, ano, atributos)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_on`
	return mapError(r.db.QueryRowContext(ctx, query, args...).Scan(&it.ID, &it.CreatedOn))
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM itens WHERE id = $1`
	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return it, nil
}

func (r *itemRepository) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM itens WHERE 1=1`
	var args []any
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND categoria = $%d", len(args))
	}
	if filter.Location != "" {
		args = append(args, filter.Location)
		query += fmt.Sprintf(" AND localizacao = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (nome ILIKE $%d OR descricao ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY nome"

	logger.DatabaseCall("SELECT", "itens", "filter", filter)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	logger.DatabaseResult("SELECT", int64(len(items)), rows.Err())
	return items, rows.Err()
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	args, err := itemArgs(it)
	if err != nil {
		return err
	}
	query := `UPDATE itens SET nome=$1, quantidade=$2, categoria=$3, localizacao=$4, descricao=$5, tipo=$6,
	          marca=$7, modelo=$8, placa=$9, ano=$10, atributos=$11 WHERE id=$12`
	result, err := r.db.ExecContext(ctx, query, append(args, it.ID)...)
	if err != nil {
		return mapError(err)
	}
	return expectOneRow(result)
}

func (r *itemRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM itens WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err)
	}
	return expectOneRow(result)
}
