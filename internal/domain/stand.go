package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Stand is a bookable vendor table at an event. EventID is a validated
// foreign key; stands are removed together with their event.
// swagger:model Stand
type Stand struct {
	ID         int             `json:"id"`
	EventID    int             `json:"event_id"`
	TableName  string          `json:"table_name"`
	TableNotes string          `json:"table_notes"`
	Booked     bool            `json:"booked"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewStand returns a new Stand. ID is set by the repository on create.
func NewStand(eventID int, tableName, tableNotes string, price decimal.Decimal, createdAt, updatedAt time.Time) *Stand {
	return &Stand{
		EventID:    eventID,
		TableName:  tableName,
		TableNotes: tableNotes,
		Price:      price,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// StandRepository defines the interface for stand storage.
type StandRepository interface {
	Create(ctx context.Context, stand *Stand) error
	GetByID(ctx context.Context, id int) (*Stand, error)
	List(ctx context.Context) ([]*Stand, error)
	ListByEventID(ctx context.Context, eventID int) ([]*Stand, error)
	Update(ctx context.Context, stand *Stand) error
	Delete(ctx context.Context, id int) error
	SetBooked(ctx context.Context, id int, booked bool) (*Stand, error)
}

// StandService defines stand management operations.
type StandService interface {
	Create(ctx context.Context, stand *Stand) error
	GetAll(ctx context.Context) ([]*Stand, error)
	GetByID(ctx context.Context, id int) (*Stand, error)
	ListByEventID(ctx context.Context, eventID int) ([]*Stand, error)
	Update(ctx context.Context, id int, patch *Stand) (*Stand, error)
	Delete(ctx context.Context, id int) error
	// Book marks the stand as booked and notifies the organizer address, if
	// one is configured. Booking an already booked stand returns ErrAlreadyBooked.
	Book(ctx context.Context, id int) (*Stand, error)
}
