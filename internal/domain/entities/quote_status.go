package entities

import (
	"errors"
	"fmt"
	"strings"
)

// QuoteStatus is the lifecycle state of a quote.
//
//	pending -> reviewing -> quoted -> confirmed
//	                          \-> rejected
//
// confirmed and rejected are terminal. Every guard below switches over all five
// values so that adding a status means revisiting each transition.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusReviewing QuoteStatus = "reviewing"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusConfirmed QuoteStatus = "confirmed"
	QuoteStatusRejected  QuoteStatus = "rejected"
)

// Lifecycle errors. Messages are shown to admins and clients as-is.
var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrQuoteMissingPrice     = errors.New("cannot lock quote without a price, set the price first")
	ErrQuoteMissingDocument  = errors.New("cannot lock quote without a PDF document, upload a quote first")
	ErrQuoteDecided          = errors.New("the client has already made a decision")
	ErrQuoteAlreadyAccepted  = errors.New("this quote has already been accepted")
	ErrQuoteAlreadyRejected  = errors.New("this quote has already been rejected")
	ErrQuoteNotReady         = errors.New("this quote has not been sent to the client yet")
	ErrQuoteReadOnly         = errors.New("quote is locked, unlock it before editing")
	ErrQuoteSignatureMissing = errors.New("a signature is required to accept the quote")
	ErrUnknownQuoteStatus    = errors.New("unknown quote status")
)

var allQuoteStatuses = []QuoteStatus{
	QuoteStatusPending,
	QuoteStatusReviewing,
	QuoteStatusQuoted,
	QuoteStatusConfirmed,
	QuoteStatusRejected,
}

// QuoteStatuses lists every status in lifecycle order.
func QuoteStatuses() []QuoteStatus {
	out := make([]QuoteStatus, len(allQuoteStatuses))
	copy(out, allQuoteStatuses)
	return out
}

func ParseQuoteStatus(v string) (QuoteStatus, error) {
	s := QuoteStatus(strings.ToLower(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownQuoteStatus, v)
	}
	return s, nil
}

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusReviewing, QuoteStatusQuoted, QuoteStatusConfirmed, QuoteStatusRejected:
		return true
	}
	return false
}

func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusConfirmed || s == QuoteStatusRejected
}

func (s QuoteStatus) String() string {
	return string(s)
}

// CanFinalize guards price/document edits made by an admin.
func (s QuoteStatus) CanFinalize() error {
	switch s {
	case QuoteStatusPending, QuoteStatusReviewing, QuoteStatusQuoted:
		return nil
	case QuoteStatusConfirmed:
		return ErrQuoteAlreadyAccepted
	case QuoteStatusRejected:
		return ErrQuoteAlreadyRejected
	}
	return unknownStatus(s)
}

// CanLock guards the explicit lock action.
func (s QuoteStatus) CanLock() error {
	switch s {
	case QuoteStatusPending, QuoteStatusReviewing, QuoteStatusQuoted:
		return nil
	case QuoteStatusConfirmed, QuoteStatusRejected:
		return decided("lock", s)
	}
	return unknownStatus(s)
}

// CanUnlock guards the unlock action; the quote moves back to reviewing.
func (s QuoteStatus) CanUnlock() error {
	switch s {
	case QuoteStatusPending, QuoteStatusReviewing, QuoteStatusQuoted:
		return nil
	case QuoteStatusConfirmed, QuoteStatusRejected:
		return decided("unlock", s)
	}
	return unknownStatus(s)
}

// CanClientDecide guards the public accept and reject actions.
func (s QuoteStatus) CanClientDecide() error {
	switch s {
	case QuoteStatusQuoted:
		return nil
	case QuoteStatusConfirmed:
		return ErrQuoteAlreadyAccepted
	case QuoteStatusRejected:
		return ErrQuoteAlreadyRejected
	case QuoteStatusPending, QuoteStatusReviewing:
		return ErrQuoteNotReady
	}
	return unknownStatus(s)
}

// CanAdminConfirm guards the manual confirm override. Only a sent quote can be confirmed.
func (s QuoteStatus) CanAdminConfirm() error {
	switch s {
	case QuoteStatusQuoted:
		return nil
	case QuoteStatusConfirmed:
		return ErrQuoteAlreadyAccepted
	case QuoteStatusRejected:
		return ErrQuoteAlreadyRejected
	case QuoteStatusPending, QuoteStatusReviewing:
		return fmt.Errorf("%w: cannot confirm a %s quote", ErrQuoteNotReady, s)
	}
	return unknownStatus(s)
}

// CanAdminReject guards the manual reject override.
func (s QuoteStatus) CanAdminReject() error {
	switch s {
	case QuoteStatusPending, QuoteStatusReviewing, QuoteStatusQuoted:
		return nil
	case QuoteStatusConfirmed:
		return ErrQuoteAlreadyAccepted
	case QuoteStatusRejected:
		return ErrQuoteAlreadyRejected
	}
	return unknownStatus(s)
}

func decided(action string, s QuoteStatus) error {
	return fmt.Errorf("cannot %s a %s quote, %w", action, s, ErrQuoteDecided)
}

func unknownStatus(s QuoteStatus) error {
	return fmt.Errorf("%w: %q", ErrUnknownQuoteStatus, string(s))
}
