package clients

import (
	"context"
	"encoding/json"
	"net/http"

	"booking-client/domain"

	"go.opentelemetry.io/otel/codes"
)

func (bc *BackendClient) CreateBooking(ctx context.Context, token, roomID, userID string, request domain.BookingRequest) (string, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.CreateBooking")
	defer span.End()

	body, err := json.Marshal(request)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	url := bc.url("/bookings/book-room/" + roomID + "/" + userID)
	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, token, http.MethodPost, url, body, false)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		span.SetStatus(codes.Error, "Failed to create booking")
		return "", decodeRejection(resp)
	}

	var payload struct {
		ConfirmationCode string `json:"bookingConfirmationCode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Booking created")
	return payload.ConfirmationCode, nil
}

func (bc *BackendClient) GetBookingByConfirmationCode(ctx context.Context, token, code string) (*domain.Booking, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.GetBookingByConfirmationCode")
	defer span.End()

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, token, http.MethodGet, bc.url("/bookings/get-by-confirmation-code/"+code), nil, true)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "Booking not found")
		return nil, decodeRejection(resp)
	}

	var payload struct {
		Booking domain.Booking `json:"booking"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Got booking by confirmation code")
	return &payload.Booking, nil
}

func (bc *BackendClient) GetAllBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.GetAllBookings")
	defer span.End()

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, token, http.MethodGet, bc.url("/bookings/all"), nil, true)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "Failed to get bookings")
		return nil, decodeRejection(resp)
	}

	var payload struct {
		Bookings []domain.Booking `json:"bookingList"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Got all bookings")
	return payload.Bookings, nil
}

func (bc *BackendClient) DeleteBooking(ctx context.Context, token, bookingID string) error {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.DeleteBooking")
	defer span.End()

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, token, http.MethodDelete, bc.url("/bookings/cancel/"+bookingID), nil, false)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		span.SetStatus(codes.Error, "Failed to cancel booking")
		return decodeRejection(resp)
	}
	span.SetStatus(codes.Ok, "Booking cancelled")
	return nil
}
