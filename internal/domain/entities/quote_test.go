package entities

import (
	"testing"
	"time"
)

func quotedAgo(now time.Time, d time.Duration) *time.Time {
	at := now.Add(-d)
	return &at
}

func TestQuote_Editable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		q    Quote
		want bool
	}{
		{name: "unlocked pending", q: Quote{Status: QuoteStatusPending}, want: true},
		{name: "unlocked quoted long ago", q: Quote{Status: QuoteStatusQuoted, QuotedAt: quotedAgo(now, 2*time.Hour)}, want: true},
		{name: "locked within grace", q: Quote{Status: QuoteStatusQuoted, IsLocked: true, QuotedAt: quotedAgo(now, 14*time.Minute+59*time.Second)}, want: true},
		{name: "locked past grace", q: Quote{Status: QuoteStatusQuoted, IsLocked: true, QuotedAt: quotedAgo(now, 15*time.Minute+1*time.Second)}, want: false},
		{name: "locked exactly at grace", q: Quote{Status: QuoteStatusQuoted, IsLocked: true, QuotedAt: quotedAgo(now, 15*time.Minute)}, want: false},
		{name: "locked confirmed past grace", q: Quote{Status: QuoteStatusConfirmed, IsLocked: true, QuotedAt: quotedAgo(now, time.Hour)}, want: false},
		{name: "locked without quotedAt", q: Quote{Status: QuoteStatusQuoted, IsLocked: true}, want: false},
		{name: "locked reviewing", q: Quote{Status: QuoteStatusReviewing, IsLocked: true, QuotedAt: quotedAgo(now, time.Hour)}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.Editable(now); got != tc.want {
				t.Fatalf("expected editable=%v, got %v", tc.want, got)
			}
		})
	}
}

func TestQuote_GraceMinutesRemaining(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		q    Quote
		want int
	}{
		{name: "no quotedAt", q: Quote{Status: QuoteStatusQuoted}, want: 0},
		{name: "just sent", q: Quote{Status: QuoteStatusQuoted, QuotedAt: quotedAgo(now, 0)}, want: 15},
		{name: "rounds up", q: Quote{Status: QuoteStatusQuoted, QuotedAt: quotedAgo(now, 10*time.Minute+30*time.Second)}, want: 5},
		{name: "last seconds", q: Quote{Status: QuoteStatusQuoted, QuotedAt: quotedAgo(now, 14*time.Minute+59*time.Second)}, want: 1},
		{name: "floored at zero", q: Quote{Status: QuoteStatusQuoted, QuotedAt: quotedAgo(now, time.Hour)}, want: 0},
		{name: "not quoted", q: Quote{Status: QuoteStatusReviewing, QuotedAt: quotedAgo(now, time.Minute)}, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.GraceMinutesRemaining(now); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestQuote_TokenMatches(t *testing.T) {
	q := Quote{ID: "q-1", AccessToken: "tok-abc"}
	if !q.TokenMatches("tok-abc") {
		t.Fatalf("expected exact token to match")
	}
	for _, tok := range []string{"", "tok-ab", "tok-abcd", "TOK-ABC", "tok-xyz"} {
		if q.TokenMatches(tok) {
			t.Fatalf("token %q must not match", tok)
		}
	}
	if (Quote{}).TokenMatches("") {
		t.Fatalf("empty stored token must never match")
	}
}

func TestQuote_PriceAndDocument(t *testing.T) {
	zero := 0.0
	price := 500.0
	if (Quote{}).HasPrice() || (Quote{EstimatedPrice: &zero}).HasPrice() {
		t.Fatalf("missing or zero price must not count")
	}
	if !(Quote{EstimatedPrice: &price}).HasPrice() {
		t.Fatalf("expected price")
	}
	if (Quote{}).HasDocument() {
		t.Fatalf("expected no document")
	}
	if !(Quote{DocumentKey: "quotes/q-1/quote.pdf"}).HasDocument() {
		t.Fatalf("expected document")
	}
}

func TestQuoteUpdate_Apply(t *testing.T) {
	status := QuoteStatusQuoted
	locked := true
	price := 250.0
	notes := "note"
	now := time.Now().UTC()

	u := QuoteUpdate{Status: &status, IsLocked: &locked, EstimatedPrice: &price, QuotedAt: &now, InternalNotes: &notes}
	if u.Empty() {
		t.Fatalf("expected non-empty update")
	}

	before := Quote{ID: "q-1", Status: QuoteStatusPending, ClientName: "Ada"}
	after := u.Apply(before)
	if after.Status != QuoteStatusQuoted || !after.IsLocked || *after.EstimatedPrice != 250 || !after.QuotedAt.Equal(now) {
		t.Fatalf("unexpected quote: %+v", after)
	}
	if after.ClientName != "Ada" || after.InternalNotes != "note" {
		t.Fatalf("untouched fields changed: %+v", after)
	}
	if before.Status != QuoteStatusPending {
		t.Fatalf("apply must not mutate the input")
	}

	price = 1
	if *after.EstimatedPrice != 250 {
		t.Fatalf("apply must copy pointer values")
	}
	if !(QuoteUpdate{}).Empty() {
		t.Fatalf("expected empty update")
	}
}
