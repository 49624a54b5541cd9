package interfaces

import (
	"context"
	"rental_quotes/internal/domain/entities"
	"time"
)

// IEmailQueueRepository abstracts DynamoDB persistence for the email outbox.

type IEmailQueueRepository interface {
	Enqueue(ctx context.Context, m entities.EmailMessage) (entities.EmailMessage, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]entities.EmailMessage, error)
	// Claim moves a listed message's next attempt to leaseUntil. It reports
	// false when another drainer changed the message after it was listed.
	Claim(ctx context.Context, id string, listedNext, leaseUntil time.Time) (bool, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
	ScheduleRetry(ctx context.Context, id string, attempts int, nextAttemptAt time.Time, errMsg string) error
	MarkFailed(ctx context.Context, id string, attempts int, errMsg string) error
	CountByStatus(ctx context.Context, status entities.EmailStatus) (int, error)
}
