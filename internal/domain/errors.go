package domain

import "errors"

var (
	// ErrNotFound is returned when a lookup by identifier yields no record.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput is returned when a request violates a domain invariant.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyBooked is returned when booking a stand that is already booked.
	ErrAlreadyBooked = errors.New("stand already booked")
)
