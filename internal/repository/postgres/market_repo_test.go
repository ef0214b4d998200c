package postgres

import (
	"context"
	"database/sql"
	"testing"

	"letsbookit/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestMarketRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name`).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Downtown Market"))

		repo := NewMarketRepository(db)
		m, err := repo.GetByID(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, &domain.Market{ID: 7, Name: "Downtown Market"}, m)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name`).
			WithArgs(42).
			WillReturnError(sql.ErrNoRows)

		repo := NewMarketRepository(db)
		_, err = repo.GetByID(ctx, 42)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMarketRepository_Create(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO markets`).
		WithArgs(7, "Downtown Market").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMarketRepository(db)
	require.NoError(t, repo.Create(ctx, &domain.Market{ID: 7, Name: "Downtown Market"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarketRepository_UpdateName(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE markets SET name = \$1 WHERE id = \$2`).
			WithArgs("New Name", 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMarketRepository(db)
		require.NoError(t, repo.UpdateName(ctx, 7, "New Name"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE markets SET name = \$1 WHERE id = \$2`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewMarketRepository(db)
		require.ErrorIs(t, repo.UpdateName(ctx, 42, "x"), domain.ErrNotFound)
	})
}
