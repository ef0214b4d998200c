package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"letsbookit/internal/clock"
	"letsbookit/internal/domain"
)

type standService struct {
	standRepo      domain.StandRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	notifyEmail    string
	clk            clock.Clock
	contextTimeout time.Duration
}

// NewStandService returns a StandService. notifyEmail is the organizer
// address booking confirmations go to; empty disables notifications.
func NewStandService(standRepo domain.StandRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	notifyEmail string,
	clk clock.Clock,
	timeout time.Duration,
) domain.StandService {
	return &standService{
		standRepo:      standRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		notifyEmail:    notifyEmail,
		clk:            clk,
		contextTimeout: timeout,
	}
}

// checkStand validates the stand fields and that the referenced event exists.
func (s *standService) checkStand(ctx context.Context, stand *domain.Stand) error {
	if stand.TableName == "" {
		return fmt.Errorf("%w: table name is required", domain.ErrInvalidInput)
	}
	if stand.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if _, err := s.eventRepo.GetByID(ctx, stand.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: event %d does not exist", domain.ErrInvalidInput, stand.EventID)
		}
		return fmt.Errorf("get event: %w", err)
	}
	return nil
}

func (s *standService) Create(ctx context.Context, stand *domain.Stand) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkStand(ctx, stand); err != nil {
		return err
	}
	now := s.clk.Now()
	stand.CreatedAt = now
	stand.UpdatedAt = now
	if err := s.standRepo.Create(ctx, stand); err != nil {
		return fmt.Errorf("create stand: %w", err)
	}
	return nil
}

func (s *standService) GetAll(ctx context.Context) ([]*domain.Stand, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stands, err := s.standRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stands: %w", err)
	}
	if stands == nil {
		stands = []*domain.Stand{}
	}
	return stands, nil
}

func (s *standService) GetByID(ctx context.Context, id int) (*domain.Stand, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stand, err := s.standRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stand: %w", err)
	}
	return stand, nil
}

func (s *standService) ListByEventID(ctx context.Context, eventID int) ([]*domain.Stand, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	stands, err := s.standRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list stands: %w", err)
	}
	if stands == nil {
		stands = []*domain.Stand{}
	}
	return stands, nil
}

func (s *standService) Update(ctx context.Context, id int, patch *domain.Stand) (*domain.Stand, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stand, err := s.standRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stand: %w", err)
	}
	if err := s.checkStand(ctx, patch); err != nil {
		return nil, err
	}

	stand.EventID = patch.EventID
	stand.TableName = patch.TableName
	stand.TableNotes = patch.TableNotes
	stand.Booked = patch.Booked
	stand.Price = patch.Price
	stand.UpdatedAt = s.clk.Now()

	if err := s.standRepo.Update(ctx, stand); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update stand: %w", err)
	}
	return stand, nil
}

func (s *standService) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.standRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete stand: %w", err)
	}
	return nil
}

func (s *standService) Book(ctx context.Context, id int) (*domain.Stand, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stand, err := s.standRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stand: %w", err)
	}
	if stand.Booked {
		return nil, domain.ErrAlreadyBooked
	}

	updated, err := s.standRepo.SetBooked(ctx, id, true)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("book stand: %w", err)
	}

	// Notification is best-effort; the booking stands even if email fails.
	if s.notifyEmail != "" && s.emailService != nil {
		event, err := s.eventRepo.GetByID(ctx, updated.EventID)
		if err != nil {
			log.Printf("[STAND] booking notification skipped, event lookup failed: %v", err)
			return updated, nil
		}
		data := &domain.BookingConfirmationEmailData{
			Email:     s.notifyEmail,
			TableName: updated.TableName,
			EventName: event.Name,
			Location:  event.Location,
			Price:     updated.Price.StringFixed(2),
		}
		if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
			log.Printf("[STAND] booking notification failed: %v", err)
		}
	}
	return updated, nil
}
