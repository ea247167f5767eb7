package postgres

import (
	"context"
	"database/sql"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO usuarios (usuario, password_hash, nome) VALUES ($1, $2, $3) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash, u.Name).Scan(&u.ID, &u.CreatedOn)
	return mapError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, usuario, password_hash, nome, created_on FROM usuarios WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, usuario, password_hash, nome, created_on FROM usuarios WHERE LOWER(usuario) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.CreatedOn)
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}
