package domain

import "context"

// Market is the owning entity of one or more events, e.g. a farmer's
// market or a convention. Its id is caller-supplied: markets are
// materialized implicitly while creating events, never managed directly.
// swagger:model Market
type Market struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MarketRepository defines the interface for market storage.
type MarketRepository interface {
	GetByID(ctx context.Context, id int) (*Market, error)
	// Create inserts a market with the caller-supplied id.
	Create(ctx context.Context, market *Market) error
	UpdateName(ctx context.Context, id int, name string) error
}
