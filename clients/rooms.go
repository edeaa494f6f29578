package clients

import (
	"context"
	"encoding/json"
	"net/http"

	"booking-client/domain"

	"go.opentelemetry.io/otel/codes"
)

func (bc *BackendClient) GetRoomTypes(ctx context.Context) ([]string, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.GetRoomTypes")
	defer span.End()

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, "", http.MethodGet, bc.url("/rooms/types"), nil, true)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "Failed to get room types")
		return nil, decodeRejection(resp)
	}

	var types []string
	if err := json.NewDecoder(resp.Body).Decode(&types); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Got room types")
	return types, nil
}

func (bc *BackendClient) SearchAvailableRooms(ctx context.Context, checkIn, checkOut, roomType string) ([]domain.Room, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.SearchAvailableRooms")
	defer span.End()

	url := bc.url("/rooms/available-rooms-by-date-and-type?checkInDate=" + checkIn + "&checkOutDate=" + checkOut + "&roomType=" + roomType)
	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, "", http.MethodGet, url, nil, true)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "Failed to search available rooms")
		return nil, decodeRejection(resp)
	}

	var payload struct {
		Rooms []domain.Room `json:"rooms"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Searched available rooms")
	return payload.Rooms, nil
}

func (bc *BackendClient) GetAllRooms(ctx context.Context, token string) ([]domain.Room, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.GetAllRooms")
	defer span.End()

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, token, http.MethodGet, bc.url("/rooms/all"), nil, true)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "Failed to get rooms")
		return nil, decodeRejection(resp)
	}

	var payload struct {
		Rooms []domain.Room `json:"rooms"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Got all rooms")
	return payload.Rooms, nil
}

func (bc *BackendClient) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.GetRoom")
	defer span.End()

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, "", http.MethodGet, bc.url("/rooms/room-by-id/"+roomID), nil, true)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "Room not found")
		return nil, decodeRejection(resp)
	}

	var payload struct {
		Room domain.Room `json:"room"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Got room by id")
	return &payload.Room, nil
}

func (bc *BackendClient) CreateRoom(ctx context.Context, token string, input domain.RoomInput) (*domain.Room, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.CreateRoom")
	defer span.End()

	body, err := json.Marshal(input)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, token, http.MethodPost, bc.url("/rooms/add"), body, false)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		span.SetStatus(codes.Error, "Failed to create room")
		return nil, decodeRejection(resp)
	}

	var payload struct {
		Room domain.Room `json:"room"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Room created")
	return &payload.Room, nil
}

func (bc *BackendClient) UpdateRoom(ctx context.Context, token, roomID string, input domain.RoomInput) (*domain.Room, error) {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.UpdateRoom")
	defer span.End()

	body, err := json.Marshal(input)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, token, http.MethodPut, bc.url("/rooms/update/"+roomID), body, false)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "Failed to update room")
		return nil, decodeRejection(resp)
	}

	var payload struct {
		Room domain.Room `json:"room"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, &domain.TransportError{Err: err}
	}
	span.SetStatus(codes.Ok, "Room updated")
	return &payload.Room, nil
}

func (bc *BackendClient) DeleteRoom(ctx context.Context, token, roomID string) error {
	spanCtx, span := bc.Tracer.Start(ctx, "BackendClient.DeleteRoom")
	defer span.End()

	resp, err := bc.performRequestWithCircuitBreaker(spanCtx, token, http.MethodDelete, bc.url("/rooms/delete/"+roomID), nil, false)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		span.SetStatus(codes.Error, "Failed to delete room")
		return decodeRejection(resp)
	}
	span.SetStatus(codes.Ok, "Room deleted")
	return nil
}
