package services

import (
	"context"

	"booking-client/domain"
)

// BookingClient is the slice of the backend the reservation engine needs.
type BookingClient interface {
	CreateBooking(ctx context.Context, token, roomID, userID string, request domain.BookingRequest) (string, error)
	GetBookingByConfirmationCode(ctx context.Context, token, code string) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, token, bookingID string) error
}

type ReservationService interface {
	// Quote is the cheap, non-committing phase: pure computation, identical
	// inputs give identical output, nothing leaves the process.
	Quote(room *domain.Room, stay domain.DateRange, guests domain.GuestCount) (*domain.BookingQuote, error)

	// Confirm submits the booking and returns the backend-issued
	// confirmation code. No local booking exists on failure.
	Confirm(ctx context.Context, token, roomID, userID string, stay domain.DateRange, guests domain.GuestCount) (string, error)

	Find(ctx context.Context, token, confirmationCode string) (*domain.Booking, error)

	// Cancel refuses to act without explicit confirmation; the request it
	// sends is irreversible.
	Cancel(ctx context.Context, token, bookingID string, confirmed bool) error
}
