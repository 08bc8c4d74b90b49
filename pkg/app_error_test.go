package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
		if e.Error() != "NOT_FOUND: Not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected no wrapped error")
		}
		body := e.ToHTTPError()
		if body.Code != "NOT_FOUND" || body.Message != "Not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("dynamodb timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("unexpected status %d", e.HTTPStatus)
		}
		if e.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("cause must not leak into the body")
		}
	})
}
