package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// BookingConfirmationEmailData holds data for the stand booking confirmation email.
type BookingConfirmationEmailData struct {
	Email     string
	TableName string
	EventName string
	Location  string
	Price     string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, data *BookingConfirmationEmailData) error
}
