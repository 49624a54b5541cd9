package worker

import (
	"context"
	"time"

	"rental_quotes/internal/domain/entities"

	"go.uber.org/zap"
)

// OutboxProcessor delivers one batch of due emails.
type OutboxProcessor interface {
	ProcessDue(ctx context.Context, limit int) (entities.QueueProcessResult, error)
}

// OutboxWorker drains the email outbox on a fixed interval.
type OutboxWorker struct {
	outbox   OutboxProcessor
	interval time.Duration
	batch    int
	log      *zap.Logger
}

func NewOutboxWorker(outbox OutboxProcessor, interval time.Duration, batch int, logger *zap.Logger) *OutboxWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &OutboxWorker{
		outbox:   outbox,
		interval: interval,
		batch:    batch,
		log:      logger.Named("outbox_worker"),
	}
}

// Run processes a batch immediately, then once per interval until ctx is done.
// Batch errors are logged; the loop keeps going.
func (w *OutboxWorker) Run(ctx context.Context) error {
	w.log.Info("outbox worker started", zap.Duration("interval", w.interval), zap.Int("batch", w.batch))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.tick(ctx)
		select {
		case <-ctx.Done():
			w.log.Info("outbox worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (w *OutboxWorker) tick(ctx context.Context) {
	res, err := w.outbox.ProcessDue(ctx, w.batch)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error("outbox batch failed", zap.Error(err))
		}
		return
	}
	if res.Processed > 0 {
		w.log.Info("outbox batch processed",
			zap.Int("processed", res.Processed),
			zap.Int("sent", res.Sent),
			zap.Int("failed", res.Failed),
		)
	}
}
