package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound    = errors.New("Booking not found")
	ErrRoomNotFound       = errors.New("Room not found")
	ErrCancelNotConfirmed = errors.New("cancellation requires explicit confirmation")
)

// ValidationError is bad input caught on this side. It never reaches the
// network and is not logged as a system fault.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationError *ValidationError
	if errors.As(err, &validationError) {
		return validationError
	}

	return nil
}

// TransportError means the request could not complete at all. Retryable.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) *TransportError {
	if err == nil {
		return nil
	}

	var transportError *TransportError
	if errors.As(err, &transportError) {
		return transportError
	}

	return nil
}

// BackendError is a completed request the backend refused. Message carries
// the server-provided reason verbatim when one was present.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend rejected the request (status %d)", e.StatusCode)
}

func IsBackendError(err error) *BackendError {
	if err == nil {
		return nil
	}

	var backendError *BackendError
	if errors.As(err, &backendError) {
		return backendError
	}

	return nil
}

// OverlapError is the backend detecting a conflicting booking for the same
// room and date range.
type OverlapError struct {
	BackendError
}

func IsOverlapError(err error) *OverlapError {
	if err == nil {
		return nil
	}

	var overlapError *OverlapError
	if errors.As(err, &overlapError) {
		return overlapError
	}

	return nil
}
