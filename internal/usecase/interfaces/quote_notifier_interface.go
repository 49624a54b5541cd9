package interfaces

import (
	"context"
	"rental_quotes/internal/domain/entities"
)

// QuoteReadyNotification tells a client their priced quote is waiting behind the magic link.
type QuoteReadyNotification struct {
	To                 string
	Subject            string
	CustomerName       string
	ConfirmationNumber string
	QuoteID            string
	AccessToken        string
	EstimatedPrice     *float64
	Language           string
}

// AdminQuoteNotification tells the rental desk about a new, signed or rejected quote.
type AdminQuoteNotification struct {
	To                 string
	Subject            string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	CustomerCompany    string
	ConfirmationNumber string
	Items              []entities.QuoteItem
	RentalStartDate    string
	RentalEndDate      string
	ProjectDescription string
	SpecialRequests    string
	QuoteID            string
}

// QuoteConfirmationNotification acknowledges a submitted request to the client.
type QuoteConfirmationNotification struct {
	To                 string
	Subject            string
	ReplyTo            string
	CustomerName       string
	ConfirmationNumber string
	Items              []entities.QuoteItem
	RentalStartDate    string
	RentalEndDate      string
	ProjectDescription string
	SpecialRequests    string
	QuoteID            string
	AccessToken        string
	Language           string
}

// IQuoteNotifier queues quote emails. Implementations only enqueue; delivery
// happens later in the outbox worker.
type IQuoteNotifier interface {
	SendQuoteReadyNotification(ctx context.Context, n QuoteReadyNotification) error
	SendAdminQuoteNotification(ctx context.Context, n AdminQuoteNotification) error
	SendQuoteConfirmation(ctx context.Context, n QuoteConfirmationNotification) error
}
