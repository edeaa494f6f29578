package services

import (
	"context"

	"booking-client/domain"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type ReservationServiceImpl struct {
	backend BookingClient
	Tracer  trace.Tracer
}

func NewReservationServiceImpl(backend BookingClient, tr trace.Tracer) ReservationService {
	return &ReservationServiceImpl{backend: backend, Tracer: tr}
}

func (s *ReservationServiceImpl) Quote(room *domain.Room, stay domain.DateRange, guests domain.GuestCount) (*domain.BookingQuote, error) {
	if err := validateStay(stay); err != nil {
		return nil, err
	}
	if err := validateGuests(guests); err != nil {
		return nil, err
	}

	nights := stay.Nights()
	return &domain.BookingQuote{
		Nights:      nights,
		TotalPrice:  room.RoomPrice * float64(nights),
		TotalGuests: guests.Total(),
	}, nil
}

func (s *ReservationServiceImpl) Confirm(ctx context.Context, token, roomID, userID string, stay domain.DateRange, guests domain.GuestCount) (string, error) {
	spanCtx, span := s.Tracer.Start(ctx, "ReservationService.Confirm")
	defer span.End()

	if err := validateStay(stay); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	if err := validateGuests(guests); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	// Serialize the stay as the calendar days the guest picked. The dates
	// are formatted in their own location; converting through UTC here
	// could shift the stay by a day.
	request := domain.BookingRequest{
		CheckInDate:  domain.FormatLocalDate(stay.CheckIn),
		CheckOutDate: domain.FormatLocalDate(stay.CheckOut),
		AdultCount:   guests.Adults,
		ChildCount:   guests.Children,
		GuestTotal:   guests.Total(),
	}

	confirmationCode, err := s.backend.CreateBooking(spanCtx, token, roomID, userID, request)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	span.SetStatus(codes.Ok, "Booking confirmed")
	return confirmationCode, nil
}

func (s *ReservationServiceImpl) Find(ctx context.Context, token, confirmationCode string) (*domain.Booking, error) {
	spanCtx, span := s.Tracer.Start(ctx, "ReservationService.Find")
	defer span.End()

	if confirmationCode == "" {
		err := domain.NewValidationError("confirmationCode", "Please enter a confirmation code")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	booking, err := s.backend.GetBookingByConfirmationCode(spanCtx, token, confirmationCode)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "Found booking")
	return booking, nil
}

func (s *ReservationServiceImpl) Cancel(ctx context.Context, token, bookingID string, confirmed bool) error {
	spanCtx, span := s.Tracer.Start(ctx, "ReservationService.Cancel")
	defer span.End()

	if !confirmed {
		span.SetStatus(codes.Error, domain.ErrCancelNotConfirmed.Error())
		return domain.ErrCancelNotConfirmed
	}

	if err := s.backend.DeleteBooking(spanCtx, token, bookingID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "Booking cancelled")
	return nil
}
