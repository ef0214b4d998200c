package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"letsbookit/internal/clock"
	"letsbookit/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	marketRepo     domain.MarketRepository
	tx             domain.TxManager
	clk            clock.Clock
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	marketRepo domain.MarketRepository,
	tx domain.TxManager,
	clk clock.Clock,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		marketRepo:     marketRepo,
		tx:             tx,
		clk:            clk,
		contextTimeout: timeout,
	}
}

// validateDraft checks the invariants shared by create and update:
// a positive market id and a start strictly before the end.
func validateDraft(draft domain.EventDraft, marketID int) error {
	if marketID <= 0 {
		return fmt.Errorf("%w: market id must be positive", domain.ErrInvalidInput)
	}
	if !draft.Start.Before(draft.End) {
		return fmt.Errorf("%w: event must start before it ends", domain.ErrInvalidInput)
	}
	return nil
}

// resolveMarket finds the market by id or materializes it with the draft's
// market name. An existing market is renamed: the draft's name always wins.
// Callers must run this inside the same transaction as the event write.
func (s *eventService) resolveMarket(ctx context.Context, id int, name string) (*domain.Market, error) {
	m, err := s.marketRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		m = &domain.Market{ID: id, Name: name}
		if err := s.marketRepo.Create(ctx, m); err != nil {
			return nil, fmt.Errorf("create market: %w", err)
		}
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get market: %w", err)
	}
	if m.Name != name {
		if err := s.marketRepo.UpdateName(ctx, id, name); err != nil {
			return nil, fmt.Errorf("rename market: %w", err)
		}
		m.Name = name
	}
	return m, nil
}

func (s *eventService) Create(ctx context.Context, draft domain.EventDraft, marketID int) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateDraft(draft, marketID); err != nil {
		return nil, err
	}
	if !draft.Start.After(s.clk.Now()) {
		return nil, fmt.Errorf("%w: event must start in the future", domain.ErrInvalidInput)
	}

	now := s.clk.Now()
	event := domain.NewEvent(draft, marketID, now, now)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		market, err := s.resolveMarket(ctx, marketID, draft.MarketName)
		if err != nil {
			return err
		}
		if err := s.eventRepo.Create(ctx, event); err != nil {
			return fmt.Errorf("create event: %w", err)
		}
		event.Market = market
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) GetAll(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) FindByLocation(ctx context.Context, location string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("list events by location: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, id int, draft domain.EventDraft, marketID int) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateDraft(draft, marketID); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	event.Name = draft.Name
	event.Start = draft.Start
	event.End = draft.End
	event.Location = draft.Location
	event.VenueLayout = draft.VenueLayout
	event.MarketID = marketID
	event.UpdatedAt = s.clk.Now()

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		market, err := s.resolveMarket(ctx, marketID, draft.MarketName)
		if err != nil {
			return err
		}
		if err := s.eventRepo.Update(ctx, event); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("update event: %w", err)
		}
		event.Market = market
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
