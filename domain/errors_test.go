package domain

import (
	"fmt"
	"testing"
)

func TestIsValidationError(t *testing.T) {
	err := NewValidationError("adultCount", "Please enter valid count for adults and children")

	if got := IsValidationError(err); got == nil {
		t.Fatal("IsValidationError did not recognize a validation error")
	} else if got.Field != "adultCount" {
		t.Errorf("Field = %v, want adultCount", got.Field)
	}

	wrapped := fmt.Errorf("quote failed: %w", err)
	if IsValidationError(wrapped) == nil {
		t.Error("IsValidationError did not unwrap a wrapped validation error")
	}

	if IsValidationError(nil) != nil {
		t.Error("IsValidationError(nil) should be nil")
	}
}

func TestOverlapErrorIsAlsoBackendError(t *testing.T) {
	err := error(&OverlapError{BackendError{StatusCode: 409, Message: "Room already booked for the selected date range"}})

	if IsOverlapError(err) == nil {
		t.Fatal("IsOverlapError did not recognize an overlap rejection")
	}
	if err.Error() != "Room already booked for the selected date range" {
		t.Errorf("Error() = %q, want the server message verbatim", err.Error())
	}
}

func TestBackendErrorFallbackMessage(t *testing.T) {
	err := &BackendError{StatusCode: 500}
	if err.Error() == "" {
		t.Error("BackendError without a server message must still describe itself")
	}
}
