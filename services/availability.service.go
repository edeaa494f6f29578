package services

import (
	"context"

	"booking-client/domain"
)

// RoomSearchClient is the slice of the backend the search needs.
type RoomSearchClient interface {
	GetRoomTypes(ctx context.Context) ([]string, error)
	SearchAvailableRooms(ctx context.Context, checkIn, checkOut, roomType string) ([]domain.Room, error)
}

type AvailabilityService interface {
	ListRoomTypes(ctx context.Context) ([]string, error)
	Search(ctx context.Context, stay domain.DateRange, roomType string) ([]domain.Room, error)
}
