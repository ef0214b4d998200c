package postgres

import (
	"context"
	"database/sql"
	"errors"

	"letsbookit/internal/domain"
)

type marketRepository struct {
	DB *sql.DB
}

func NewMarketRepository(db *sql.DB) domain.MarketRepository {
	return &marketRepository{
		DB: db,
	}
}

func (r *marketRepository) GetByID(ctx context.Context, id int) (*domain.Market, error) {
	query := `
		SELECT id, name
		FROM markets
		WHERE id = $1
	`
	m := &domain.Market{}
	err := q(ctx, r.DB).QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *marketRepository) Create(ctx context.Context, m *domain.Market) error {
	query := `
		INSERT INTO markets (id, name)
		VALUES ($1, $2)
	`
	_, err := q(ctx, r.DB).ExecContext(ctx, query, m.ID, m.Name)
	return err
}

func (r *marketRepository) UpdateName(ctx context.Context, id int, name string) error {
	query := `UPDATE markets SET name = $1 WHERE id = $2`
	result, err := q(ctx, r.DB).ExecContext(ctx, query, name, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
