package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booking-client/domain"

	"github.com/gin-gonic/gin"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	respondWithError(ctx, err)

	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return recorder, body
}

func TestRespondWithValidationError(t *testing.T) {
	recorder, body := respond(t, domain.NewValidationError("adultCount", "Please enter valid count for adults and children"))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %v, want %v", recorder.Code, http.StatusBadRequest)
	}
	if body["field"] != "adultCount" {
		t.Errorf("field = %v, want adultCount", body["field"])
	}
}

func TestRespondWithOverlapRejection(t *testing.T) {
	overlap := &domain.OverlapError{BackendError: domain.BackendError{StatusCode: 409, Message: "Room already booked"}}
	recorder, body := respond(t, overlap)

	if recorder.Code != http.StatusConflict {
		t.Errorf("status = %v, want %v", recorder.Code, http.StatusConflict)
	}
	if body["message"] != "Room already booked" {
		t.Errorf("message = %v, want the server message verbatim", body["message"])
	}
}

func TestRespondWithBackendRejectionKeepsMessage(t *testing.T) {
	recorder, body := respond(t, &domain.BackendError{StatusCode: 400, Message: "Room has active bookings"})

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %v, want %v", recorder.Code, http.StatusBadRequest)
	}
	if body["message"] != "Room has active bookings" {
		t.Errorf("message = %v, want the server message verbatim", body["message"])
	}
}

func TestRespondWithTransportFailureIsRetryable(t *testing.T) {
	recorder, body := respond(t, &domain.TransportError{Err: errors.New("connection refused")})

	if recorder.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %v, want %v", recorder.Code, http.StatusServiceUnavailable)
	}
	notice, ok := body["notice"].(map[string]interface{})
	if !ok {
		t.Fatal("transport failure response carries no notice")
	}
	if notice["kind"] != string(domain.NoticeError) {
		t.Errorf("notice kind = %v, want %v", notice["kind"], domain.NoticeError)
	}
	if notice["displayMs"] == nil {
		t.Error("notice carries no display duration")
	}
}
