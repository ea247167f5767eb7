package postgres

import (
	"context"
	"database/sql"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"
)

type vehiclePartRepository struct {
	db *sql.DB
}

func NewVehiclePartRepository(db *sql.DB) repository.VehiclePartRepository {
	return &vehiclePartRepository{db: db}
}

const vehiclePartColumns = `id, carro_id, descricao_peca, data_troca, quilometragem, valor, COALESCE(oficina, ''), COALESCE(observacoes, ''), created_on`

func scanVehiclePart(row rowScanner) (*domain.VehiclePart, error) {
	var p domain.VehiclePart
	var mileage sql.NullInt32
	err := row.Scan(&p.ID, &p.VehicleID, &p.Description, &p.ChangeDate, &mileage, &p.Amount, &p.Workshop, &p.Notes, &p.CreatedOn)
	if err != nil {
		return nil, err
	}
	p.Mileage = int32Ptr(mileage)
	return &p, nil
}

func (r *vehiclePartRepository) Create(ctx context.Context, p *domain.VehiclePart) error {
	query := `INSERT INTO pecas_carros (carro_id, descricao_peca, data_troca, quilometragem, valor, oficina, observacoes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, p.VehicleID, p.Description, p.ChangeDate, nullInt32(p.Mileage), p.Amount,
		nullString(p.Workshop), nullString(p.Notes)).Scan(&p.ID, &p.CreatedOn)
	return mapError(err)
}

func (r *vehiclePartRepository) GetByID(ctx context.Context, id int32) (*domain.VehiclePart, error) {
	p, err := scanVehiclePart(r.db.QueryRowContext(ctx, `SELECT `+vehiclePartColumns+` FROM pecas_carros WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *vehiclePartRepository) List(ctx context.Context, vehicleID *int32) ([]domain.VehiclePart, error) {
	query := `SELECT ` + vehiclePartColumns + ` FROM pecas_carros`
	var args []any
	if vehicleID != nil {
		query += ` WHERE carro_id = $1`
		args = append(args, *vehicleID)
	}
	query += ` ORDER BY data_troca DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []domain.VehiclePart
	for rows.Next() {
		p, err := scanVehiclePart(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, *p)
	}
	return parts, rows.Err()
}

func (r *vehiclePartRepository) Update(ctx context.Context, p *domain.VehiclePart) error {
	query := `UPDATE pecas_carros SET carro_id=$1, descricao_peca=$2, data_troca=$3, quilometragem=$4, valor=$5, oficina=$6, observacoes=$7 WHERE id=$8`
	result, err := r.db.ExecContext(ctx, query, p.VehicleID, p.Description, p.ChangeDate, nullInt32(p.Mileage), p.Amount,
		nullString(p.Workshop), nullString(p.Notes), p.ID)
	if err != nil {
		return mapError(err)
	}
	return expectOneRow(result)
}

func (r *vehiclePartRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pecas_carros WHERE id = $1`, id)
	if err != nil {
		return mapDeleteError(err)
	}
	return expectOneRow(result)
}
