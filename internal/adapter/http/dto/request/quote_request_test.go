package request

import (
	"testing"

	"rental_quotes/internal/domain/entities"
)

func TestCreateQuoteRequest_ToInput(t *testing.T) {
	r := CreateQuoteRequest{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Items:     []QuoteItemRequest{{ProductID: " cam-1 ", Quantity: 2, SelectedVariants: map[string]string{"mount": "PL"}}},
		Language:  "fr",
	}
	in := r.ToInput()
	if len(in.Items) != 1 || in.Items[0].ProductID != "cam-1" || in.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
	if in.Items[0].SelectedVariants["mount"] != "PL" {
		t.Fatalf("variants not carried over")
	}
	if in.Language != "fr" || in.Email != "ada@example.com" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestFinalizeQuoteForm_ShouldNotify(t *testing.T) {
	no := false
	if !(FinalizeQuoteForm{}).ShouldNotify() {
		t.Fatalf("expected notify by default")
	}
	if (FinalizeQuoteForm{SendEmail: &no}).ShouldNotify() {
		t.Fatalf("expected sendEmail=false to be honored")
	}
}

func TestListQuotesQuery_ToFilter(t *testing.T) {
	t.Run("no status", func(t *testing.T) {
		f, err := ListQuotesQuery{Limit: 5, Status: "all"}.ToFilter()
		if err != nil || f.Status != nil || f.Limit != 5 {
			t.Fatalf("unexpected filter %+v, %v", f, err)
		}
	})

	t.Run("status", func(t *testing.T) {
		f, err := ListQuotesQuery{Status: "Quoted"}.ToFilter()
		if err != nil || f.Status == nil || *f.Status != entities.QuoteStatusQuoted {
			t.Fatalf("unexpected filter %+v, %v", f, err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		if _, err := (ListQuotesQuery{Status: "archived"}).ToFilter(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
