package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
		if e.Error() != "Quote not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		body := e.ToHTTPError()
		if body.Success || body.Code != "QUOTE_NOT_FOUND" || body.Error != "Quote not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("dynamodb down")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("expected default 500, got %d", e.HTTPStatus)
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to unwrap")
		}
		if e.ToHTTPError().Error != "An internal error occurred" {
			t.Fatalf("cause must not leak into body")
		}
	})
}
