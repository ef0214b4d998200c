package domain

import (
	"context"
	"time"
)

// Event represents a scheduled occurrence at a market, with a time window
// and a free-text location.
// swagger:model Event
type Event struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location"`
	VenueLayout string    `json:"venue_layout"`
	MarketID    int       `json:"market_id"`
	Market      *Market   `json:"market,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventDraft is an unpersisted candidate event supplied by a caller.
// MarketName is used to materialize or rename the referenced market.
type EventDraft struct {
	Name        string
	Start       time.Time
	End         time.Time
	Location    string
	VenueLayout string
	MarketName  string
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(draft EventDraft, marketID int, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:        draft.Name,
		Start:       draft.Start,
		End:         draft.End,
		Location:    draft.Location,
		VenueLayout: draft.VenueLayout,
		MarketID:    marketID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListByLocation(ctx context.Context, location string) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int) error
}

// EventService defines the event booking operations. It is the sole place
// where event invariants are enforced and where market resolution happens.
type EventService interface {
	// Create validates the draft (positive market id, start before end,
	// start in the future) and, inside a single transaction, resolves the
	// market by id (creating or renaming it with the draft's market name)
	// and persists the event. Invariant violations return ErrInvalidInput.
	Create(ctx context.Context, draft EventDraft, marketID int) (*Event, error)
	GetAll(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id int) (*Event, error)
	FindByLocation(ctx context.Context, location string) ([]*Event, error)
	// Update overwrites every mutable field of the event with the draft's
	// values and re-resolves the market linkage. Start/end ordering is
	// re-validated; the start-in-the-future rule applies to creation only.
	Update(ctx context.Context, id int, draft EventDraft, marketID int) (*Event, error)
	Delete(ctx context.Context, id int) error
}
