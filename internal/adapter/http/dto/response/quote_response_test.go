package response

import (
	"testing"
	"time"

	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase"
)

func TestFromPublicQuote(t *testing.T) {
	price := 900.0
	links := usecase.QuoteDocumentLinks{QuotePDFURL: "https://files.test/q.pdf"}
	q := entities.Quote{
		ID:             "q-1",
		Status:         entities.QuoteStatusReviewing,
		EstimatedPrice: &price,
		PDFFileName:    "draft.pdf",
		ItemsJSON:      `[{"productId":"cam-1","quantity":2}]`,
	}

	t.Run("draft pricing stays hidden", func(t *testing.T) {
		r := FromPublicQuote(q, links)
		if r.EstimatedPrice != nil || r.QuotePDFURL != "" || r.PDFFileName != "" {
			t.Fatalf("draft pricing leaked: %+v", r)
		}
		if r.CanRespond {
			t.Fatalf("a reviewing quote cannot be answered")
		}
		if len(r.Items) != 1 || r.Items[0].Quantity != 2 {
			t.Fatalf("unexpected items: %+v", r.Items)
		}
	})

	t.Run("sent quote", func(t *testing.T) {
		q.Status = entities.QuoteStatusQuoted
		r := FromPublicQuote(q, links)
		if r.EstimatedPrice == nil || *r.EstimatedPrice != 900 || r.QuotePDFURL == "" || !r.CanRespond {
			t.Fatalf("unexpected projection: %+v", r)
		}
	})
}

func TestFromQuote_GraceFields(t *testing.T) {
	quoted := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	q := entities.Quote{ID: "q-1", Status: entities.QuoteStatusQuoted, IsLocked: true, QuotedAt: &quoted, ItemsJSON: "not json"}

	r := FromQuote(q, usecase.QuoteDocumentLinks{}, quoted.Add(15*time.Minute+time.Second))
	if r.Editable || r.GraceMinutesRemaining != 0 {
		t.Fatalf("expected read-only after the grace period: %+v", r)
	}
	if r.Items == nil || len(r.Items) != 0 {
		t.Fatalf("unreadable items should render as an empty list")
	}

	r = FromQuote(q, usecase.QuoteDocumentLinks{}, quoted.Add(14*time.Minute+59*time.Second))
	if !r.Editable || r.GraceMinutesRemaining != 1 {
		t.Fatalf("expected editable with one minute left: %+v", r)
	}
}
