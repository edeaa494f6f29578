package services

import (
	"context"
	"strings"

	"booking-client/cache"
	"booking-client/domain"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type AvailabilityServiceImpl struct {
	backend RoomSearchClient
	cache   *cache.RoomCache
	Tracer  trace.Tracer
}

func NewAvailabilityServiceImpl(backend RoomSearchClient, roomCache *cache.RoomCache, tr trace.Tracer) AvailabilityService {
	return &AvailabilityServiceImpl{backend: backend, cache: roomCache, Tracer: tr}
}

func (s *AvailabilityServiceImpl) ListRoomTypes(ctx context.Context) ([]string, error) {
	spanCtx, span := s.Tracer.Start(ctx, "AvailabilityService.ListRoomTypes")
	defer span.End()

	if s.cache != nil {
		if types, err := s.cache.GetRoomTypes(spanCtx); err == nil && types != nil {
			span.SetStatus(codes.Ok, "Room types served from cache")
			return types, nil
		}
	}

	types, err := s.backend.GetRoomTypes(spanCtx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.PostRoomTypes(types, spanCtx)
	}
	span.SetStatus(codes.Ok, "Got room types")
	return types, nil
}

// Search validates its input before anything leaves the process: an invalid
// query never costs a network round-trip. A zero-match result is an empty
// slice, which the caller presents differently from a failed request.
func (s *AvailabilityServiceImpl) Search(ctx context.Context, stay domain.DateRange, roomType string) ([]domain.Room, error) {
	spanCtx, span := s.Tracer.Start(ctx, "AvailabilityService.Search")
	defer span.End()

	if err := validateStay(stay); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if strings.TrimSpace(roomType) == "" {
		err := domain.NewValidationError("roomType", "Please select all the fields")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	checkIn := domain.FormatLocalDate(stay.CheckIn)
	checkOut := domain.FormatLocalDate(stay.CheckOut)

	if s.cache != nil {
		if rooms, hit, err := s.cache.GetSearchResults(checkIn, checkOut, roomType, spanCtx); err == nil && hit {
			span.SetStatus(codes.Ok, "Search served from cache")
			return rooms, nil
		}
	}

	rooms, err := s.backend.SearchAvailableRooms(spanCtx, checkIn, checkOut, roomType)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}

	if s.cache != nil {
		_ = s.cache.PostSearchResults(checkIn, checkOut, roomType, rooms, spanCtx)
	}
	span.SetStatus(codes.Ok, "Searched available rooms")
	return rooms, nil
}
