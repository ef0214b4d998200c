package postgres

import (
	"context"
	"database/sql"
	"errors"

	"letsbookit/internal/domain"
)

type standRepository struct {
	DB *sql.DB
}

func NewStandRepository(db *sql.DB) domain.StandRepository {
	return &standRepository{
		DB: db,
	}
}

const standColumns = `id, event_id, table_name, table_notes, booked, price, created_at, updated_at`

func scanStand(row interface{ Scan(dest ...any) error }) (*domain.Stand, error) {
	s := &domain.Stand{}
	err := row.Scan(
		&s.ID, &s.EventID, &s.TableName, &s.TableNotes, &s.Booked, &s.Price,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *standRepository) Create(ctx context.Context, s *domain.Stand) error {
	query := `
		INSERT INTO stands (event_id, table_name, table_notes, booked, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return q(ctx, r.DB).QueryRowContext(ctx, query,
		s.EventID, s.TableName, s.TableNotes, s.Booked, s.Price, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *standRepository) GetByID(ctx context.Context, id int) (*domain.Stand, error) {
	query := `
		SELECT ` + standColumns + `
		FROM stands
		WHERE id = $1
	`
	s, err := scanStand(q(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *standRepository) List(ctx context.Context) ([]*domain.Stand, error) {
	query := `
		SELECT ` + standColumns + `
		FROM stands
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

func (r *standRepository) ListByEventID(ctx context.Context, eventID int) ([]*domain.Stand, error) {
	query := `
		SELECT ` + standColumns + `
		FROM stands
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, eventID)
}

func (r *standRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Stand, error) {
	rows, err := q(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stands := make([]*domain.Stand, 0)
	for rows.Next() {
		s, err := scanStand(rows)
		if err != nil {
			return nil, err
		}
		stands = append(stands, s)
	}
	return stands, rows.Err()
}

func (r *standRepository) Update(ctx context.Context, s *domain.Stand) error {
	query := `
		UPDATE stands
		SET event_id = $1, table_name = $2, table_notes = $3, booked = $4, price = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := q(ctx, r.DB).ExecContext(ctx, query,
		s.EventID, s.TableName, s.TableNotes, s.Booked, s.Price, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *standRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM stands WHERE id = $1`
	result, err := q(ctx, r.DB).ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *standRepository) SetBooked(ctx context.Context, id int, booked bool) (*domain.Stand, error) {
	query := `
		UPDATE stands
		SET booked = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + standColumns + `
	`
	s, err := scanStand(q(ctx, r.DB).QueryRowContext(ctx, query, booked, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}
