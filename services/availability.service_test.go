package services

import (
	"context"
	"reflect"
	"testing"

	"booking-client/domain"

	"go.opentelemetry.io/otel/trace"
)

type mockRoomSearchClient struct {
	types        []string
	typesErr     error
	typesCalls   int
	rooms        []domain.Room
	searchErr    error
	searchCalls  int
	lastCheckIn  string
	lastCheckOut string
	lastRoomType string
}

func (m *mockRoomSearchClient) GetRoomTypes(ctx context.Context) ([]string, error) {
	m.typesCalls++
	return m.types, m.typesErr
}

func (m *mockRoomSearchClient) SearchAvailableRooms(ctx context.Context, checkIn, checkOut, roomType string) ([]domain.Room, error) {
	m.searchCalls++
	m.lastCheckIn = checkIn
	m.lastCheckOut = checkOut
	m.lastRoomType = roomType
	return m.rooms, m.searchErr
}

func newTestAvailabilityService(backend RoomSearchClient) AvailabilityService {
	return NewAvailabilityServiceImpl(backend, nil, trace.NewNoopTracerProvider().Tracer("test"))
}

func validStay() domain.DateRange {
	return domain.DateRange{CheckIn: day(2024, 6, 1), CheckOut: day(2024, 6, 4)}
}

func TestSearchRejectsInvalidInputBeforeAnyRequest(t *testing.T) {
	backend := &mockRoomSearchClient{}
	service := newTestAvailabilityService(backend)
	ctx := context.Background()

	cases := []struct {
		name     string
		stay     domain.DateRange
		roomType string
	}{
		{"missing dates", domain.DateRange{}, "Deluxe"},
		{"reversed dates", domain.DateRange{CheckIn: day(2024, 6, 4), CheckOut: day(2024, 6, 1)}, "Deluxe"},
		{"empty room type", validStay(), ""},
		{"blank room type", validStay(), "   "},
	}

	for _, tc := range cases {
		_, err := service.Search(ctx, tc.stay, tc.roomType)
		if domain.IsValidationError(err) == nil {
			t.Errorf("%s: expected a validation error, got %v", tc.name, err)
		}
	}
	if backend.searchCalls != 0 {
		t.Errorf("invalid searches reached the backend %d times", backend.searchCalls)
	}
}

func TestSearchPassesCalendarDates(t *testing.T) {
	backend := &mockRoomSearchClient{rooms: []domain.Room{{ID: "r1", RoomType: "Deluxe", RoomPrice: 100}}}
	service := newTestAvailabilityService(backend)

	rooms, err := service.Search(context.Background(), validStay(), "Deluxe")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != "r1" {
		t.Errorf("rooms = %+v, want the backend's single match", rooms)
	}
	if backend.lastCheckIn != "2024-06-01" || backend.lastCheckOut != "2024-06-04" {
		t.Errorf("dates sent = %v..%v, want 2024-06-01..2024-06-04", backend.lastCheckIn, backend.lastCheckOut)
	}
}

func TestSearchZeroMatchesIsNotAFailure(t *testing.T) {
	backend := &mockRoomSearchClient{rooms: nil}
	service := newTestAvailabilityService(backend)

	rooms, err := service.Search(context.Background(), validStay(), "Deluxe")
	if err != nil {
		t.Fatalf("Search returned error for zero matches: %v", err)
	}
	if rooms == nil {
		t.Error("zero matches should be an empty slice, not nil")
	}
	if len(rooms) != 0 {
		t.Errorf("rooms = %+v, want empty", rooms)
	}
}

func TestSearchSurfacesBackendFailure(t *testing.T) {
	backend := &mockRoomSearchClient{searchErr: &domain.BackendError{StatusCode: 500, Message: "database down"}}
	service := newTestAvailabilityService(backend)

	_, err := service.Search(context.Background(), validStay(), "Deluxe")
	backendErr := domain.IsBackendError(err)
	if backendErr == nil {
		t.Fatalf("expected a backend error, got %v", err)
	}
	if backendErr.Message != "database down" {
		t.Errorf("Message = %q, want the server message verbatim", backendErr.Message)
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	backend := &mockRoomSearchClient{rooms: []domain.Room{{ID: "r1"}, {ID: "r2"}}}
	service := newTestAvailabilityService(backend)
	ctx := context.Background()

	first, err := service.Search(ctx, validStay(), "Deluxe")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	second, err := service.Search(ctx, validStay(), "Deluxe")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical searches gave %+v and %+v", first, second)
	}
}

func TestListRoomTypes(t *testing.T) {
	backend := &mockRoomSearchClient{types: []string{"Single", "Double", "Deluxe"}}
	service := newTestAvailabilityService(backend)

	types, err := service.ListRoomTypes(context.Background())
	if err != nil {
		t.Fatalf("ListRoomTypes returned error: %v", err)
	}
	if !reflect.DeepEqual(types, []string{"Single", "Double", "Deluxe"}) {
		t.Errorf("types = %v", types)
	}
}
