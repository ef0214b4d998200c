package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"letsbookit/internal/clock"
	"letsbookit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID      map[int]*domain.Event
	nextID    int
	createErr error // if set, Create returns this error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byID:   make(map[int]*domain.Event),
		nextID: 1,
	}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = f.nextID
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) ListByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0)
	for _, e := range f.byID {
		if e.Location == location {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeMarketRepo is an in-memory MarketRepository for tests.
type fakeMarketRepo struct {
	byID      map[int]*domain.Market
	createErr error
}

func newFakeMarketRepo() *fakeMarketRepo {
	return &fakeMarketRepo{byID: make(map[int]*domain.Market)}
}

func (f *fakeMarketRepo) GetByID(ctx context.Context, id int) (*domain.Market, error) {
	if m, ok := f.byID[id]; ok {
		return &domain.Market{ID: m.ID, Name: m.Name}, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMarketRepo) Create(ctx context.Context, m *domain.Market) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[m.ID] = &domain.Market{ID: m.ID, Name: m.Name}
	return nil
}

func (f *fakeMarketRepo) UpdateName(ctx context.Context, id int, name string) error {
	m, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Name = name
	return nil
}

// fakeTxManager runs the function directly; repositories are in-memory anyway.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEventService(events *fakeEventRepo, markets *fakeMarketRepo) (domain.EventService, *fakeTxManager) {
	tx := &fakeTxManager{}
	svc := NewEventService(events, markets, tx, clock.NewFixed(testNow), 2*time.Second)
	return svc, tx
}

func validDraft() domain.EventDraft {
	return domain.EventDraft{
		Name:        "Harvest Fair",
		Start:       testNow.Add(21 * time.Hour), // tomorrow 09:00
		End:         testNow.Add(29 * time.Hour), // tomorrow 17:00
		Location:    "Town Square",
		VenueLayout: "ring of tables",
		MarketName:  "Downtown Farmer's Market",
	}
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success assigns id and keeps draft fields", func(t *testing.T) {
		events := newFakeEventRepo()
		markets := newFakeMarketRepo()
		svc, tx := newTestEventService(events, markets)

		draft := validDraft()
		event, err := svc.Create(ctx, draft, 7)
		require.NoError(t, err)
		require.NotZero(t, event.ID)
		assert.Equal(t, draft.Name, event.Name)
		assert.Equal(t, draft.Start, event.Start)
		assert.Equal(t, draft.End, event.End)
		assert.Equal(t, draft.Location, event.Location)
		assert.Equal(t, draft.VenueLayout, event.VenueLayout)
		assert.Equal(t, 7, event.MarketID)
		require.NotNil(t, event.Market)
		assert.Equal(t, draft.MarketName, event.Market.Name)
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("materializes absent market with draft name", func(t *testing.T) {
		events := newFakeEventRepo()
		markets := newFakeMarketRepo()
		svc, _ := newTestEventService(events, markets)

		_, err := svc.Create(ctx, validDraft(), 7)
		require.NoError(t, err)
		m, err := markets.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Downtown Farmer's Market", m.Name)
	})

	t.Run("renames existing market, draft name wins", func(t *testing.T) {
		events := newFakeEventRepo()
		markets := newFakeMarketRepo()
		markets.byID[7] = &domain.Market{ID: 7, Name: "Old Name"}
		svc, _ := newTestEventService(events, markets)

		_, err := svc.Create(ctx, validDraft(), 7)
		require.NoError(t, err)
		m, err := markets.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Downtown Farmer's Market", m.Name)
	})

	t.Run("precondition failures persist nothing", func(t *testing.T) {
		pastStart := validDraft()
		pastStart.Start = testNow.Add(-24 * time.Hour)
		pastStart.End = testNow.Add(-16 * time.Hour)

		misordered := validDraft()
		misordered.Start, misordered.End = misordered.End, misordered.Start

		startEqualsEnd := validDraft()
		startEqualsEnd.End = startEqualsEnd.Start

		startIsNow := validDraft()
		startIsNow.Start = testNow
		startIsNow.End = testNow.Add(8 * time.Hour)

		tests := []struct {
			name     string
			draft    domain.EventDraft
			marketID int
		}{
			{"market id zero", validDraft(), 0},
			{"market id negative", validDraft(), -3},
			{"start after end", misordered, 7},
			{"start equals end", startEqualsEnd, 7},
			{"start in the past", pastStart, 7},
			{"start equals now", startIsNow, 7},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				events := newFakeEventRepo()
				markets := newFakeMarketRepo()
				svc, _ := newTestEventService(events, markets)

				_, err := svc.Create(ctx, tt.draft, tt.marketID)
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Empty(t, events.byID)
				assert.Empty(t, markets.byID)
			})
		}
	})

	t.Run("repo failure surfaces error", func(t *testing.T) {
		events := newFakeEventRepo()
		events.createErr = errors.New("connection refused")
		markets := newFakeMarketRepo()
		svc, _ := newTestEventService(events, markets)

		_, err := svc.Create(ctx, validDraft(), 7)
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEventService_CreateThenGetByID(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	markets := newFakeMarketRepo()
	svc, _ := newTestEventService(events, markets)

	created, err := svc.Create(ctx, validDraft(), 7)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Start, got.Start)
	assert.Equal(t, created.End, got.End)
	assert.Equal(t, created.Location, got.Location)
	assert.Equal(t, created.VenueLayout, got.VenueLayout)
	assert.Equal(t, created.MarketID, got.MarketID)
}

func TestEventService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestEventService(newFakeEventRepo(), newFakeMarketRepo())
	_, err := svc.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_GetAll_EmptyStore(t *testing.T) {
	svc, _ := newTestEventService(newFakeEventRepo(), newFakeMarketRepo())
	events, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, events)
	assert.Empty(t, events)
}

func TestEventService_FindByLocation(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	markets := newFakeMarketRepo()
	svc, _ := newTestEventService(events, markets)

	mainSt := validDraft()
	mainSt.Location = "Main St"
	other := validDraft()
	other.Location = "Town Square"
	lowercase := validDraft()
	lowercase.Location = "main st"

	a, err := svc.Create(ctx, mainSt, 1)
	require.NoError(t, err)
	_, err = svc.Create(ctx, other, 2)
	require.NoError(t, err)
	_, err = svc.Create(ctx, lowercase, 3)
	require.NoError(t, err)

	found, err := svc.FindByLocation(ctx, "Main St")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, a.ID, found[0].ID)

	none, err := svc.FindByLocation(ctx, "Nowhere")
	require.NoError(t, err)
	require.NotNil(t, none)
	assert.Empty(t, none)
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("nonexistent id", func(t *testing.T) {
		svc, _ := newTestEventService(newFakeEventRepo(), newFakeMarketRepo())
		_, err := svc.Update(ctx, 99, validDraft(), 7)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("overwrites every mutable field", func(t *testing.T) {
		events := newFakeEventRepo()
		markets := newFakeMarketRepo()
		svc, _ := newTestEventService(events, markets)

		created, err := svc.Create(ctx, validDraft(), 7)
		require.NoError(t, err)

		patch := domain.EventDraft{
			Name:        "Winter Fair",
			Start:       testNow.Add(48 * time.Hour),
			End:         testNow.Add(56 * time.Hour),
			Location:    "Market Hall",
			VenueLayout: "rows",
			MarketName:  "Winter Market",
		}
		updated, err := svc.Update(ctx, created.ID, patch, 9)
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Winter Fair", updated.Name)
		assert.Equal(t, 9, updated.MarketID)

		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Winter Fair", got.Name)
		assert.Equal(t, patch.Start, got.Start)
		assert.Equal(t, patch.End, got.End)
		assert.Equal(t, "Market Hall", got.Location)
		assert.Equal(t, "rows", got.VenueLayout)
		assert.Equal(t, 9, got.MarketID)

		m, err := markets.GetByID(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, "Winter Market", m.Name)
	})

	t.Run("start in the past is allowed on update", func(t *testing.T) {
		events := newFakeEventRepo()
		markets := newFakeMarketRepo()
		svc, _ := newTestEventService(events, markets)

		created, err := svc.Create(ctx, validDraft(), 7)
		require.NoError(t, err)

		patch := validDraft()
		patch.Start = testNow.Add(-48 * time.Hour)
		patch.End = testNow.Add(-40 * time.Hour)
		_, err = svc.Update(ctx, created.ID, patch, 7)
		require.NoError(t, err)
	})

	t.Run("misordered times rejected on update", func(t *testing.T) {
		events := newFakeEventRepo()
		markets := newFakeMarketRepo()
		svc, _ := newTestEventService(events, markets)

		created, err := svc.Create(ctx, validDraft(), 7)
		require.NoError(t, err)

		patch := validDraft()
		patch.Start, patch.End = patch.End, patch.Start
		_, err = svc.Update(ctx, created.ID, patch, 7)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	markets := newFakeMarketRepo()
	svc, _ := newTestEventService(events, markets)

	created, err := svc.Create(ctx, validDraft(), 7)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
}

// Scenario: event A books market 7; a second draft starting in the past is
// rejected without touching market 7 or persisting event B.
func TestEventService_CreateScenario(t *testing.T) {
	ctx := context.Background()
	events := newFakeEventRepo()
	markets := newFakeMarketRepo()
	svc, _ := newTestEventService(events, markets)

	a, err := svc.Create(ctx, validDraft(), 7)
	require.NoError(t, err)
	require.NotZero(t, a.ID)

	m, err := markets.GetByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "Downtown Farmer's Market", m.Name)

	b := validDraft()
	b.MarketName = "Some Other Name"
	b.Start = testNow.Add(-24 * time.Hour)
	b.End = testNow.Add(-16 * time.Hour)
	_, err = svc.Create(ctx, b, 7)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	m, err = markets.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Downtown Farmer's Market", m.Name)
	assert.Len(t, events.byID, 1)
}
