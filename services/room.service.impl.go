package services

import (
	"context"
	"errors"

	"booking-client/domain"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type RoomServiceImpl struct {
	backend  RoomAdminClient
	validate *validator.Validate
	Tracer   trace.Tracer
}

func NewRoomServiceImpl(backend RoomAdminClient, tr trace.Tracer) RoomService {
	return &RoomServiceImpl{
		backend:  backend,
		validate: validator.New(),
		Tracer:   tr,
	}
}

// validateInput enforces the room invariants (non-empty type, price >= 0)
// before anything reaches the backend.
func (s *RoomServiceImpl) validateInput(input domain.RoomInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		field := fieldErrors[0]
		if field.Field() == "RoomType" {
			return domain.NewValidationError("roomType", "Room type is required")
		}
		return domain.NewValidationError("roomPrice", "Room price must not be negative")
	}
	return domain.NewValidationError("room", err.Error())
}

func (s *RoomServiceImpl) GetAll(ctx context.Context, token string) ([]domain.Room, error) {
	spanCtx, span := s.Tracer.Start(ctx, "RoomService.GetAll")
	defer span.End()

	rooms, err := s.backend.GetAllRooms(spanCtx, token)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "Got all rooms")
	return rooms, nil
}

func (s *RoomServiceImpl) Get(ctx context.Context, roomID string) (*domain.Room, error) {
	spanCtx, span := s.Tracer.Start(ctx, "RoomService.Get")
	defer span.End()

	room, err := s.backend.GetRoom(spanCtx, roomID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "Got room")
	return room, nil
}

func (s *RoomServiceImpl) Create(ctx context.Context, token string, input domain.RoomInput) (*domain.Room, error) {
	spanCtx, span := s.Tracer.Start(ctx, "RoomService.Create")
	defer span.End()

	if err := s.validateInput(input); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	room, err := s.backend.CreateRoom(spanCtx, token, input)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "Room created")
	return room, nil
}

func (s *RoomServiceImpl) Update(ctx context.Context, token, roomID string, input domain.RoomInput) (*domain.Room, error) {
	spanCtx, span := s.Tracer.Start(ctx, "RoomService.Update")
	defer span.End()

	if err := s.validateInput(input); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	room, err := s.backend.UpdateRoom(spanCtx, token, roomID, input)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "Room updated")
	return room, nil
}

// Delete never cascades locally: if active bookings still reference the
// room, the backend's constraint error is surfaced as-is.
func (s *RoomServiceImpl) Delete(ctx context.Context, token, roomID string) error {
	spanCtx, span := s.Tracer.Start(ctx, "RoomService.Delete")
	defer span.End()

	if err := s.backend.DeleteRoom(spanCtx, token, roomID); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "Room deleted")
	return nil
}
