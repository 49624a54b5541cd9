package handlers

import (
	"errors"
	"net/http"
	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase"
	"rental_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errQuoteNotFound  = pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapQuoteError translates use case and domain errors. Lifecycle messages are
// shown as-is; anything unexpected becomes a 500 without details.
func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrQuoteNotFound):
		return errQuoteNotFound
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", err.Error(), http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidQuotePrice),
		errors.Is(err, usecase.ErrInvalidQuoteInput),
		errors.Is(err, entities.ErrUnknownQuoteStatus),
		errors.Is(err, entities.ErrInvalidCursor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrQuoteSignatureMissing):
		return pkg.NewDomainErrorSimple("SIGNATURE_REQUIRED", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrQuoteMissingPrice):
		return pkg.NewDomainErrorSimple("QUOTE_MISSING_PRICE", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrQuoteMissingDocument):
		return pkg.NewDomainErrorSimple("QUOTE_MISSING_DOCUMENT", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrQuoteReadOnly):
		return pkg.NewDomainErrorSimple("QUOTE_READ_ONLY", err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrQuoteAlreadyAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_ACCEPTED", err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrQuoteAlreadyRejected):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_REJECTED", err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrQuoteDecided):
		return pkg.NewDomainErrorSimple("QUOTE_DECIDED", err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrQuoteNotReady):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_READY", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
