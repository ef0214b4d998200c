package services

import (
	"context"
	"fmt"
	"log"

	"letsbookit/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendBookingConfirmation sends a stand booking confirmation using the
// "booking_confirmation" template and the given data.
func (s *emailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("booking confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("booking_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render booking_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send booking confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Booking confirmation sent to %s", data.Email)
	return nil
}
