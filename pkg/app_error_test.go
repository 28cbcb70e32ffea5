package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewDomainError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := e.ToHTTPError()
	if body.Error.Code != "INTERNAL_ERROR" || body.Error.Details != "boom" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestNewDomainErrorSimple_WithDetails(t *testing.T) {
	base := NewDomainErrorSimple("REMOTE_REJECTED", "Rejected", http.StatusBadRequest)
	detailed := base.WithDetails("agent busy")

	if base.Details != "" {
		t.Fatalf("base must not be mutated, got %q", base.Details)
	}
	if detailed.ToHTTPError().Error.Details != "agent busy" {
		t.Fatalf("unexpected details: %+v", detailed.ToHTTPError())
	}
	if detailed.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", detailed.HTTPStatus)
	}
}
