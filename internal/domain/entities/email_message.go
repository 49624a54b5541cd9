package entities

import (
	"encoding/json"
	"time"
)

// EmailStatus is the delivery state of a queued email.
type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

// EmailPayloadType tells which notification produced a queued email.
type EmailPayloadType string

const (
	EmailPayloadQuoteConfirmation EmailPayloadType = "quote_confirmation"
	EmailPayloadAdminNotification EmailPayloadType = "admin_notification"
	EmailPayloadQuoteReady        EmailPayloadType = "quote_ready"
)

// DefaultEmailMaxAttempts is used when a message is enqueued without its own limit.
const DefaultEmailMaxAttempts = 3

// EmailMessage is an outbox record. State transitions on quotes enqueue these;
// the outbox worker delivers them and records the outcome.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-next_attempt_at-index): status, next_attempt_at
//
// PayloadData keeps the notification input (JSON) for traceability.
type EmailMessage struct {
	ID            string
	To            string
	Subject       string
	HTML          string
	ReplyTo       string
	Status        EmailStatus
	Attempts      int
	MaxAttempts   int
	ErrorMessage  string
	SentAt        *time.Time
	NextAttemptAt time.Time
	PayloadType   EmailPayloadType
	PayloadData   json.RawMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RetryBackoff is the delay before the next attempt once attempts have failed:
// 10, 20, 40 minutes and so on.
func RetryBackoff(attempts int) time.Duration {
	if attempts < 0 {
		attempts = 0
	}
	if attempts > 10 {
		attempts = 10
	}
	return time.Duration(1<<uint(attempts)) * 5 * time.Minute
}

// EmailQueueStats counts queued emails per status.
type EmailQueueStats struct {
	Pending int `json:"pending"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
}

// QueueProcessResult summarizes one outbox batch.
type QueueProcessResult struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
}
