package interfaces

import (
	"context"
	"rental_quotes/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The lifecycle relies on single-record atomic updates only:
//   - GetByID returns a zero Quote (empty ID) when the record does not exist
//   - Update applies a partial update and returns the stored record, or a zero
//     Quote when the record does not exist
//   - last write wins; there is no version check

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, id string, u entities.QuoteUpdate) (entities.Quote, error)
	List(ctx context.Context, f entities.QuoteFilter) (entities.QuotePage, error)
	ListByClientEmail(ctx context.Context, email string) ([]entities.Quote, error)
}
