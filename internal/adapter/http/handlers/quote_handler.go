package handlers

import (
	"errors"
	"net/http"
	request "rental_quotes/internal/adapter/http/dto/request"
	response "rental_quotes/internal/adapter/http/dto/response"
	"rental_quotes/internal/adapter/http/middleware"
	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase"
	"rental_quotes/pkg"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves the public, token-gated quote routes and the client's own list.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, logger *zap.Logger) *QuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteHandler{usecase: uc, log: logger.Named("quote_handler")}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.CreateQuote(c.Request.Context(), middleware.CallerFromContext(c), payload.ToInput())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromCreatedQuote(created)))
}

// GetQuote is the magic-link read. Every failure to match looks like a 404.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuoteByToken(c.Request.Context(), c.Param("id"), c.Query("token"))
	if err != nil {
		writeError(c, mapPublicQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPublicQuote(q, h.usecase.DocumentLinks(c.Request.Context(), q))))
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	var form request.AcceptQuoteForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, errQuoteNotFound)
		return
	}

	signature, closeFn, err := formDocument(c, "signature", maxSignatureSize, isImage)
	defer closeFn()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_SIGNATURE", err.Error(), http.StatusBadRequest))
		return
	}

	q, err := h.usecase.AcceptQuote(c.Request.Context(), c.Param("id"), form.Token, signature)
	if err != nil {
		writeError(c, mapPublicQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPublicQuote(q, h.usecase.DocumentLinks(c.Request.Context(), q))))
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	var payload request.RejectQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errQuoteNotFound)
		return
	}

	q, err := h.usecase.RejectQuote(c.Request.Context(), c.Param("id"), payload.Token, payload.Reason)
	if err != nil {
		writeError(c, mapPublicQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPublicQuote(q, h.usecase.DocumentLinks(c.Request.Context(), q))))
}

func (h *QuoteHandler) ListMine(c *gin.Context) {
	quotes, err := h.usecase.ListMine(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromClientQuotes(quotes)))
}

// mapPublicQuoteError never reveals whether a quote exists for a bad token.
func mapPublicQuoteError(err error) *pkg.AppError {
	if errors.Is(err, entities.ErrQuoteNotFound) || errors.Is(err, usecase.ErrInvalidQuoteID) {
		return errQuoteNotFound
	}
	return mapQuoteError(err)
}

// AdminQuoteHandler serves the back-office quote routes. RequireAdmin guards the
// group; the use case checks the caller again.
type AdminQuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     *zap.Logger
	now     func() time.Time
}

func NewAdminQuoteHandler(uc usecase.IQuoteUseCase, logger *zap.Logger) *AdminQuoteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminQuoteHandler{
		usecase: uc,
		log:     logger.Named("admin_quote_handler"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (h *AdminQuoteHandler) ListQuotes(c *gin.Context) {
	var query request.ListQuotesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	page, err := h.usecase.List(c.Request.Context(), middleware.CallerFromContext(c), filter)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromQuotePage(page)))
}

func (h *AdminQuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	h.respond(c, q)
}

func (h *AdminQuoteHandler) FinalizeQuote(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxQuotePDFSize+(1<<20))
	var form request.FinalizeQuoteForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "A price is required", http.StatusBadRequest))
		return
	}

	doc, closeFn, err := formDocument(c, "file", maxQuotePDFSize, isPDF)
	defer closeFn()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_DOCUMENT", err.Error(), http.StatusBadRequest))
		return
	}

	q, err := h.usecase.FinalizeQuote(c.Request.Context(), middleware.CallerFromContext(c), usecase.FinalizeQuoteInput{
		ID:       c.Param("id"),
		Price:    form.Price,
		Document: doc,
		Lock:     form.Lock,
		Notify:   form.ShouldNotify(),
	})
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	h.respond(c, q)
}

func (h *AdminQuoteHandler) LockQuote(c *gin.Context) {
	q, err := h.usecase.LockQuote(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	h.respond(c, q)
}

func (h *AdminQuoteHandler) UnlockQuote(c *gin.Context) {
	q, err := h.usecase.UnlockQuote(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	h.respond(c, q)
}

func (h *AdminQuoteHandler) ConfirmQuote(c *gin.Context) {
	var payload request.AdminConfirmRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	q, err := h.usecase.AdminConfirmQuote(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"), payload.Note)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	h.respond(c, q)
}

func (h *AdminQuoteHandler) RejectQuote(c *gin.Context) {
	var payload request.AdminRejectRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	q, err := h.usecase.AdminRejectQuote(c.Request.Context(), middleware.CallerFromContext(c), c.Param("id"), payload.Reason)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	h.respond(c, q)
}

func (h *AdminQuoteHandler) respond(c *gin.Context, q entities.Quote) {
	links := h.usecase.DocumentLinks(c.Request.Context(), q)
	c.JSON(http.StatusOK, response.OK(response.FromQuote(q, links, h.now())))
}

// bindOptionalJSON accepts an empty body; a malformed one is a 400.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 || !strings.Contains(c.ContentType(), "json") {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, errInvalidPayload)
		return false
	}
	return true
}
