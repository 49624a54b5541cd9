package handlers

import (
	"net/http"
	response "rental_quotes/internal/adapter/http/dto/response"
	"rental_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmailQueueHandler exposes outbox stats to admins and the cron trigger.
type EmailQueueHandler struct {
	usecase usecase.IEmailOutboxUseCase
	batch   int
	log     *zap.Logger
}

func NewEmailQueueHandler(uc usecase.IEmailOutboxUseCase, batch int, logger *zap.Logger) *EmailQueueHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if batch <= 0 {
		batch = usecase.DefaultOutboxBatch
	}
	return &EmailQueueHandler{usecase: uc, batch: batch, log: logger.Named("email_queue_handler")}
}

func (h *EmailQueueHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(stats))
}

// ProcessQueue runs one outbox batch. CronAuth guards the route.
func (h *EmailQueueHandler) ProcessQueue(c *gin.Context) {
	res, err := h.usecase.ProcessDue(c.Request.Context(), h.batch)
	if err != nil {
		h.log.Error("email queue processing failed", zap.Error(err))
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(res))
}
