package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Details != nil {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}

	detailed := simple.WithDetails(map[string]string{"vehicleCount": "Vehicle count is required"})
	if simple.Details != nil {
		t.Fatalf("WithDetails must not modify the receiver")
	}
	if detailed.ToHTTPError().Details["vehicleCount"] == "" || detailed.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected detailed error: %+v", detailed)
	}
}
