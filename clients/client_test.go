package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-client/domain"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

func newTestClient(baseURL string) *BackendClient {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewBackendClient(baseURL, logger, trace.NewNoopTracerProvider().Tracer("test"))
}

func TestSearchAvailableRooms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("checkInDate"); got != "2024-06-01" {
			t.Errorf("checkInDate = %v, want 2024-06-01", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rooms":[{"id":"r1","roomType":"Deluxe","roomPrice":100}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	rooms, err := client.SearchAvailableRooms(context.Background(), "2024-06-01", "2024-06-04", "Deluxe")
	if err != nil {
		t.Fatalf("SearchAvailableRooms returned error: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomPrice != 100 {
		t.Errorf("rooms = %+v", rooms)
	}
}

func TestCreateBookingReturnsConfirmationCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %v, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %v, want Bearer tok", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"bookingConfirmationCode":"CONF-123"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	request := domain.BookingRequest{CheckInDate: "2024-06-01", CheckOutDate: "2024-06-04", AdultCount: 2, GuestTotal: 2}
	code, err := client.CreateBooking(context.Background(), "tok", "r1", "u1", request)
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if code != "CONF-123" {
		t.Errorf("code = %v, want CONF-123", code)
	}
}

func TestCreateBookingConflictMapsToOverlap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"statusCode":409,"message":"Room already booked for the selected date range"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.CreateBooking(context.Background(), "tok", "r1", "u1", domain.BookingRequest{})

	overlapErr := domain.IsOverlapError(err)
	if overlapErr == nil {
		t.Fatalf("expected an overlap rejection, got %v", err)
	}
	if overlapErr.Message != "Room already booked for the selected date range" {
		t.Errorf("Message = %q, want the server message verbatim", overlapErr.Message)
	}
}

func TestRejectionWithoutMessageStillDescribed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetRoomTypes(context.Background())

	backendErr := domain.IsBackendError(err)
	if backendErr == nil {
		t.Fatalf("expected a backend error, got %v", err)
	}
	if backendErr.Error() == "" {
		t.Error("rejection without a server message must still describe itself")
	}
}

func TestUnreachableBackendIsTransportFailure(t *testing.T) {
	// a closed server: the request cannot complete at all
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	err := client.DeleteBooking(context.Background(), "tok", "b1")

	if domain.IsTransportError(err) == nil {
		t.Errorf("expected a transport failure, got %v", err)
	}
}

func TestDeleteRoomSurfacesConstraintError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"statusCode":400,"message":"Room has active bookings"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.DeleteRoom(context.Background(), "tok", "r1")

	backendErr := domain.IsBackendError(err)
	if backendErr == nil {
		t.Fatalf("expected a backend error, got %v", err)
	}
	if backendErr.Message != "Room has active bookings" {
		t.Errorf("Message = %q, want the constraint message verbatim", backendErr.Message)
	}
}
