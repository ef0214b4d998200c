package postgres

import (
	"context"
	"database/sql"
	"errors"

	"letsbookit/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `e.id, e.name, e.start_time, e.end_time, e.location, e.venue_layout, e.market_id, e.created_at, e.updated_at, m.name`

func scanEvent(row interface{ Scan(dest ...any) error }) (*domain.Event, error) {
	e := &domain.Event{Market: &domain.Market{}}
	err := row.Scan(
		&e.ID, &e.Name, &e.Start, &e.End, &e.Location, &e.VenueLayout,
		&e.MarketID, &e.CreatedAt, &e.UpdatedAt, &e.Market.Name,
	)
	if err != nil {
		return nil, err
	}
	e.Market.ID = e.MarketID
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, start_time, end_time, location, venue_layout, market_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return q(ctx, r.DB).QueryRowContext(ctx, query,
		e.Name, e.Start, e.End, e.Location, e.VenueLayout, e.MarketID, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN markets m ON m.id = e.market_id
		WHERE e.id = $1
	`
	e, err := scanEvent(q(ctx, r.DB).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN markets m ON m.id = e.market_id
		ORDER BY e.created_at DESC
	`
	return r.list(ctx, query)
}

func (r *eventRepository) ListByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		JOIN markets m ON m.id = e.market_id
		WHERE e.location = $1
		ORDER BY e.created_at DESC
	`
	return r.list(ctx, query, location)
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := q(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, start_time = $2, end_time = $3, location = $4, venue_layout = $5, market_id = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := q(ctx, r.DB).ExecContext(ctx, query,
		e.Name, e.Start, e.End, e.Location, e.VenueLayout, e.MarketID, e.UpdatedAt, e.ID,
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

func (r *eventRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM events WHERE id = $1`
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
