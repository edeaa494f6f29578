package services

import (
	"context"

	"booking-client/domain"
)

// RoomAdminClient is the slice of the backend room management needs.
type RoomAdminClient interface {
	GetAllRooms(ctx context.Context, token string) ([]domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	CreateRoom(ctx context.Context, token string, input domain.RoomInput) (*domain.Room, error)
	UpdateRoom(ctx context.Context, token, roomID string, input domain.RoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, token, roomID string) error
}

type RoomService interface {
	GetAll(ctx context.Context, token string) ([]domain.Room, error)
	Get(ctx context.Context, roomID string) (*domain.Room, error)
	Create(ctx context.Context, token string, input domain.RoomInput) (*domain.Room, error)
	Update(ctx context.Context, token, roomID string, input domain.RoomInput) (*domain.Room, error)
	Delete(ctx context.Context, token, roomID string) error
}
