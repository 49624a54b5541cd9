package usecase

import (
	"context"
	"errors"
	"fmt"
	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase/interfaces"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidEmailRecipient = errors.New("email recipient is required")
	ErrInvalidEmailContent   = errors.New("email subject and body are required")
)

const (
	DefaultOutboxBatch = 20
	maxOutboxBatch     = 100
	maxErrorLength     = 1000
	claimLease         = 5 * time.Minute
)

// IEmailOutboxUseCase manages the persisted email queue.
//
// Delivery semantics:
//   - Enqueue stores a pending message due immediately
//   - ProcessDue claims each due pending message before sending it, so
//     overlapping drainers never deliver the same message twice
//   - a failure schedules a retry with exponential backoff until
//     MaxAttempts, then marks failed

type IEmailOutboxUseCase interface {
	Enqueue(ctx context.Context, m entities.EmailMessage) (entities.EmailMessage, error)
	ProcessDue(ctx context.Context, limit int) (entities.QueueProcessResult, error)
	Stats(ctx context.Context) (entities.EmailQueueStats, error)
}

type EmailOutboxUseCase struct {
	repo   interfaces.IEmailQueueRepository
	sender interfaces.IEmailSender
	log    *zap.Logger
	now    func() time.Time
}

var _ IEmailOutboxUseCase = (*EmailOutboxUseCase)(nil)

func NewEmailOutboxUseCase(repo interfaces.IEmailQueueRepository, sender interfaces.IEmailSender, logger *zap.Logger) *EmailOutboxUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailOutboxUseCase{
		repo:   repo,
		sender: sender,
		log:    logger.Named("outbox"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *EmailOutboxUseCase) WithClock(now func() time.Time) *EmailOutboxUseCase {
	u.now = now
	return u
}

func (u *EmailOutboxUseCase) Enqueue(ctx context.Context, m entities.EmailMessage) (entities.EmailMessage, error) {
	m.To = strings.TrimSpace(m.To)
	if m.To == "" {
		return entities.EmailMessage{}, ErrInvalidEmailRecipient
	}
	if strings.TrimSpace(m.Subject) == "" || strings.TrimSpace(m.HTML) == "" {
		return entities.EmailMessage{}, ErrInvalidEmailContent
	}

	now := u.now()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.MaxAttempts <= 0 {
		m.MaxAttempts = entities.DefaultEmailMaxAttempts
	}
	m.Status = entities.EmailStatusPending
	m.Attempts = 0
	m.ErrorMessage = ""
	m.SentAt = nil
	m.NextAttemptAt = now
	m.CreatedAt = now
	m.UpdatedAt = now

	stored, err := u.repo.Enqueue(ctx, m)
	if err != nil {
		return entities.EmailMessage{}, err
	}
	u.log.Debug("email queued",
		zap.String("email_id", stored.ID),
		zap.String("payload_type", string(stored.PayloadType)),
	)
	return stored, nil
}

// ProcessDue delivers up to limit due messages. Bookkeeping errors abort the
// batch; delivery errors are recorded on the message and counted as failed.
func (u *EmailOutboxUseCase) ProcessDue(ctx context.Context, limit int) (entities.QueueProcessResult, error) {
	switch {
	case limit <= 0:
		limit = DefaultOutboxBatch
	case limit > maxOutboxBatch:
		limit = maxOutboxBatch
	}

	var res entities.QueueProcessResult
	due, err := u.repo.ListDue(ctx, u.now(), limit)
	if err != nil {
		return res, err
	}

	for _, m := range due {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		claimed, err := u.repo.Claim(ctx, m.ID, m.NextAttemptAt, u.now().Add(claimLease))
		if err != nil {
			return res, fmt.Errorf("claim email %s: %w", m.ID, err)
		}
		if !claimed {
			u.log.Debug("email claimed by another drainer", zap.String("email_id", m.ID))
			continue
		}
		res.Processed++

		sendErr := u.sender.Send(ctx, interfaces.OutgoingEmail{
			To:      []string{m.To},
			Subject: m.Subject,
			HTML:    m.HTML,
			ReplyTo: m.ReplyTo,
		})
		if sendErr == nil {
			if err := u.repo.MarkSent(ctx, m.ID, u.now()); err != nil {
				return res, fmt.Errorf("mark email %s sent: %w", m.ID, err)
			}
			res.Sent++
			continue
		}

		res.Failed++
		if err := u.recordFailure(ctx, m, sendErr); err != nil {
			return res, err
		}
	}

	if res.Processed > 0 {
		u.log.Info("outbox batch processed",
			zap.Int("processed", res.Processed),
			zap.Int("sent", res.Sent),
			zap.Int("failed", res.Failed),
		)
	}
	return res, nil
}

func (u *EmailOutboxUseCase) recordFailure(ctx context.Context, m entities.EmailMessage, sendErr error) error {
	attempts := m.Attempts + 1
	maxAttempts := m.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = entities.DefaultEmailMaxAttempts
	}
	msg := truncate(sendErr.Error(), maxErrorLength)

	if attempts >= maxAttempts {
		u.log.Warn("email permanently failed",
			zap.String("email_id", m.ID),
			zap.Int("attempts", attempts),
			zap.Error(sendErr),
		)
		if err := u.repo.MarkFailed(ctx, m.ID, attempts, msg); err != nil {
			return fmt.Errorf("mark email %s failed: %w", m.ID, err)
		}
		return nil
	}

	next := u.now().Add(entities.RetryBackoff(attempts))
	u.log.Warn("email delivery failed, retry scheduled",
		zap.String("email_id", m.ID),
		zap.Int("attempts", attempts),
		zap.Time("next_attempt_at", next),
		zap.Error(sendErr),
	)
	if err := u.repo.ScheduleRetry(ctx, m.ID, attempts, next, msg); err != nil {
		return fmt.Errorf("schedule retry for email %s: %w", m.ID, err)
	}
	return nil
}

func (u *EmailOutboxUseCase) Stats(ctx context.Context) (entities.EmailQueueStats, error) {
	var stats entities.EmailQueueStats
	counts := []struct {
		status entities.EmailStatus
		dst    *int
	}{
		{entities.EmailStatusPending, &stats.Pending},
		{entities.EmailStatusSent, &stats.Sent},
		{entities.EmailStatusFailed, &stats.Failed},
	}
	for _, c := range counts {
		n, err := u.repo.CountByStatus(ctx, c.status)
		if err != nil {
			return entities.EmailQueueStats{}, err
		}
		*c.dst = n
	}
	return stats, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
