package postgres_test

import (
	"context"
	"testing"
	"time"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/repository"
	"star-gestao-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM usuarios WHERE LOWER\\(usuario\\) = LOWER\\(\\$1\\)").
			WithArgs("Admin").
			WillReturnRows(sqlmock.NewRows([]string{"id", "usuario", "password_hash", "nome", "created_on"}).
				AddRow(1, "admin", "hash", "Administrador", time.Now()))

		u, err := repo.GetByUsername(ctx, "Admin")
		require.NoError(t, err)
		assert.Equal(t, "admin", u.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM usuarios").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id", "usuario", "password_hash", "nome", "created_on"}))

		u, err := repo.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, u)
	})
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		u := &domain.User{Username: "maria", PasswordHash: "hash", Name: "Maria"}
		mock.ExpectQuery("INSERT INTO usuarios").
			WithArgs("maria", "hash", "Maria").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(2, time.Now()))

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), u.ID)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO usuarios").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "usuarios_usuario_key"})

		err := repo.Create(ctx, &domain.User{Username: "maria"})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})
}
