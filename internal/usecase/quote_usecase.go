package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidQuotePrice = errors.New("price must be greater than zero")
	ErrInvalidQuoteInput = errors.New("invalid quote request")
	ErrForbidden         = errors.New("administrator privileges required")
	ErrUnauthenticated   = errors.New("authentication required")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	documentLinkTTL  = 30 * time.Minute
)

// IQuoteUseCase exposes the quote lifecycle.
//
// Admin operations take the Caller resolved by the HTTP layer and refuse
// non-admins. Public operations are gated by the quote access token; a wrong
// token is reported exactly like a missing quote.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, caller entities.Caller, in CreateQuoteInput) (CreatedQuote, error)
	GetByID(ctx context.Context, caller entities.Caller, id string) (entities.Quote, error)
	List(ctx context.Context, caller entities.Caller, f entities.QuoteFilter) (entities.QuotePage, error)
	ListMine(ctx context.Context, caller entities.Caller) ([]entities.Quote, error)

	FinalizeQuote(ctx context.Context, caller entities.Caller, in FinalizeQuoteInput) (entities.Quote, error)
	LockQuote(ctx context.Context, caller entities.Caller, id string) (entities.Quote, error)
	UnlockQuote(ctx context.Context, caller entities.Caller, id string) (entities.Quote, error)
	AdminConfirmQuote(ctx context.Context, caller entities.Caller, id, note string) (entities.Quote, error)
	AdminRejectQuote(ctx context.Context, caller entities.Caller, id, reason string) (entities.Quote, error)

	GetQuoteByToken(ctx context.Context, id, token string) (entities.Quote, error)
	AcceptQuote(ctx context.Context, id, token string, signature *interfaces.Document) (entities.Quote, error)
	RejectQuote(ctx context.Context, id, token, reason string) (entities.Quote, error)

	DocumentLinks(ctx context.Context, q entities.Quote) QuoteDocumentLinks
}

// QuoteDocumentLinks are short-lived download links for a quote's stored files.
type QuoteDocumentLinks struct {
	QuotePDFURL  string
	SignatureURL string
}

// FinalizeQuoteInput is the admin "send to client" form.
// Document is optional when the quote already has one.
type FinalizeQuoteInput struct {
	ID       string
	Price    float64
	Document *interfaces.Document
	Lock     bool
	Notify   bool
}

// QuoteUseCaseConfig carries deployment settings the lifecycle needs.
type QuoteUseCaseConfig struct {
	AdminEmail string
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	docs     interfaces.IDocumentStore
	notifier interfaces.IQuoteNotifier
	cfg      QuoteUseCaseConfig
	log      *zap.Logger
	now      func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	docs interfaces.IDocumentStore,
	notifier interfaces.IQuoteNotifier,
	cfg QuoteUseCaseConfig,
	logger *zap.Logger,
) *QuoteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteUseCase{
		repo:     repo,
		docs:     docs,
		notifier: notifier,
		cfg:      cfg,
		log:      logger.Named("quote"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source. Used by tests around the grace period.
func (u *QuoteUseCase) WithClock(now func() time.Time) *QuoteUseCase {
	u.now = now
	return u
}

func (u *QuoteUseCase) GetByID(ctx context.Context, caller entities.Caller, id string) (entities.Quote, error) {
	if !caller.IsAdmin {
		return entities.Quote{}, ErrForbidden
	}
	return u.load(ctx, id)
}

func (u *QuoteUseCase) List(ctx context.Context, caller entities.Caller, f entities.QuoteFilter) (entities.QuotePage, error) {
	if !caller.IsAdmin {
		return entities.QuotePage{}, ErrForbidden
	}
	if f.Status != nil && !f.Status.Valid() {
		return entities.QuotePage{}, fmt.Errorf("%w: %w", ErrInvalidQuoteInput, entities.ErrUnknownQuoteStatus)
	}
	switch {
	case f.Limit <= 0:
		f.Limit = defaultListLimit
	case f.Limit > maxListLimit:
		f.Limit = maxListLimit
	}
	return u.repo.List(ctx, f)
}

func (u *QuoteUseCase) ListMine(ctx context.Context, caller entities.Caller) ([]entities.Quote, error) {
	if !caller.Authenticated() || strings.TrimSpace(caller.Email) == "" {
		return nil, ErrUnauthenticated
	}
	return u.repo.ListByClientEmail(ctx, strings.ToLower(strings.TrimSpace(caller.Email)))
}

// FinalizeQuote sets the price, stores an optional new document and, when Lock
// is set, sends the quote: status quoted, locked, quotedAt stamped and the
// client notified if Notify is set. Without Lock it is a draft save.
func (u *QuoteUseCase) FinalizeQuote(ctx context.Context, caller entities.Caller, in FinalizeQuoteInput) (entities.Quote, error) {
	if !caller.IsAdmin {
		return entities.Quote{}, ErrForbidden
	}
	if in.Price <= 0 {
		return entities.Quote{}, ErrInvalidQuotePrice
	}

	q, err := u.load(ctx, in.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := q.Status.CanFinalize(); err != nil {
		return entities.Quote{}, err
	}
	now := u.now()
	if !q.Editable(now) {
		return entities.Quote{}, entities.ErrQuoteReadOnly
	}

	hasNewDocument := in.Document != nil && in.Document.Body != nil && in.Document.Size != 0
	if in.Lock && !hasNewDocument && !q.HasDocument() {
		return entities.Quote{}, entities.ErrQuoteMissingDocument
	}

	price := in.Price
	upd := entities.QuoteUpdate{EstimatedPrice: &price}

	if hasNewDocument {
		key, fileName, err := u.storeDocument(ctx, q.ID, "quote", ".pdf", *in.Document, now)
		if err != nil {
			return entities.Quote{}, err
		}
		upd.DocumentKey = &key
		upd.PDFFileName = &fileName
	}

	sending := false
	if in.Lock {
		locked := true
		upd.IsLocked = &locked
		if q.Status != entities.QuoteStatusQuoted {
			status := entities.QuoteStatusQuoted
			upd.Status = &status
			upd.QuotedAt = &now
			sending = true
		}
	}

	updated, err := u.update(ctx, q.ID, upd)
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote finalized",
		zap.String("quote_id", updated.ID),
		zap.String("status", updated.Status.String()),
		zap.Bool("locked", updated.IsLocked),
		zap.Float64("price", price),
		zap.String("by", caller.Label()),
	)

	if sending && in.Notify {
		u.notifyQuoteReady(ctx, updated)
	}
	return updated, nil
}

// LockQuote locks a quote that has both a price and a document. A quote that
// was not sent yet moves to quoted and the client is notified.
func (u *QuoteUseCase) LockQuote(ctx context.Context, caller entities.Caller, id string) (entities.Quote, error) {
	if !caller.IsAdmin {
		return entities.Quote{}, ErrForbidden
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := q.Status.CanLock(); err != nil {
		return entities.Quote{}, err
	}
	if !q.HasPrice() {
		return entities.Quote{}, entities.ErrQuoteMissingPrice
	}
	if !q.HasDocument() {
		return entities.Quote{}, entities.ErrQuoteMissingDocument
	}

	locked := true
	upd := entities.QuoteUpdate{IsLocked: &locked}
	sending := false
	if q.Status != entities.QuoteStatusQuoted {
		now := u.now()
		status := entities.QuoteStatusQuoted
		upd.Status = &status
		upd.QuotedAt = &now
		sending = true
	}

	updated, err := u.update(ctx, q.ID, upd)
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote locked", zap.String("quote_id", updated.ID), zap.String("by", caller.Label()))

	if sending {
		u.notifyQuoteReady(ctx, updated)
	}
	return updated, nil
}

// UnlockQuote reopens a quote for edits and moves it back to reviewing.
func (u *QuoteUseCase) UnlockQuote(ctx context.Context, caller entities.Caller, id string) (entities.Quote, error) {
	if !caller.IsAdmin {
		return entities.Quote{}, ErrForbidden
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := q.Status.CanUnlock(); err != nil {
		return entities.Quote{}, err
	}

	unlocked := false
	status := entities.QuoteStatusReviewing
	updated, err := u.update(ctx, q.ID, entities.QuoteUpdate{IsLocked: &unlocked, Status: &status})
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote unlocked", zap.String("quote_id", updated.ID), zap.String("by", caller.Label()))
	return updated, nil
}

// AdminConfirmQuote records a confirmation obtained outside the magic link.
func (u *QuoteUseCase) AdminConfirmQuote(ctx context.Context, caller entities.Caller, id, note string) (entities.Quote, error) {
	if !caller.IsAdmin {
		return entities.Quote{}, ErrForbidden
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := q.Status.CanAdminConfirm(); err != nil {
		return entities.Quote{}, err
	}

	text := strings.TrimSpace(note)
	if text == "" {
		text = "Confirmed manually by admin."
	}
	notes := appendNote(q.InternalNotes, "ADMIN CONFIRMED by "+caller.Label(), u.now(), text)
	status := entities.QuoteStatusConfirmed
	updated, err := u.update(ctx, q.ID, entities.QuoteUpdate{Status: &status, InternalNotes: &notes})
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote confirmed by admin", zap.String("quote_id", updated.ID), zap.String("by", caller.Label()))
	return updated, nil
}

// AdminRejectQuote closes a quote on the client's behalf.
func (u *QuoteUseCase) AdminRejectQuote(ctx context.Context, caller entities.Caller, id, reason string) (entities.Quote, error) {
	if !caller.IsAdmin {
		return entities.Quote{}, ErrForbidden
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := q.Status.CanAdminReject(); err != nil {
		return entities.Quote{}, err
	}

	text := strings.TrimSpace(reason)
	if text == "" {
		text = "Rejected manually by admin."
	}
	notes := appendNote(q.InternalNotes, "ADMIN REJECTED by "+caller.Label(), u.now(), text)
	status := entities.QuoteStatusRejected
	updated, err := u.update(ctx, q.ID, entities.QuoteUpdate{Status: &status, InternalNotes: &notes})
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote rejected by admin", zap.String("quote_id", updated.ID), zap.String("by", caller.Label()))
	return updated, nil
}

// GetQuoteByToken is the magic-link read. Empty ids, unknown ids and wrong
// tokens all return ErrQuoteNotFound.
func (u *QuoteUseCase) GetQuoteByToken(ctx context.Context, id, token string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" || token == "" {
		return entities.Quote{}, entities.ErrQuoteNotFound
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || !q.TokenMatches(token) {
		return entities.Quote{}, entities.ErrQuoteNotFound
	}
	return q, nil
}

// AcceptQuote confirms a sent quote with the client's signature.
func (u *QuoteUseCase) AcceptQuote(ctx context.Context, id, token string, signature *interfaces.Document) (entities.Quote, error) {
	if signature == nil || signature.Body == nil || signature.Size == 0 {
		return entities.Quote{}, entities.ErrQuoteSignatureMissing
	}
	q, err := u.GetQuoteByToken(ctx, id, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := q.Status.CanClientDecide(); err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	key, _, err := u.storeDocument(ctx, q.ID, "signature", ".png", *signature, now)
	if err != nil {
		return entities.Quote{}, err
	}
	status := entities.QuoteStatusConfirmed
	updated, err := u.update(ctx, q.ID, entities.QuoteUpdate{Status: &status, SignatureKey: &key, SignedAt: &now})
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote accepted by client", zap.String("quote_id", updated.ID))

	u.notifyAdmin(ctx, updated, "Quote Signed! - ", "The client has signed and accepted this quote.")
	return updated, nil
}

// RejectQuote declines a sent quote. The optional reason is appended to the notes.
func (u *QuoteUseCase) RejectQuote(ctx context.Context, id, token, reason string) (entities.Quote, error) {
	q, err := u.GetQuoteByToken(ctx, id, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := q.Status.CanClientDecide(); err != nil {
		return entities.Quote{}, err
	}

	reason = strings.TrimSpace(reason)
	status := entities.QuoteStatusRejected
	upd := entities.QuoteUpdate{Status: &status}
	if reason != "" {
		notes := appendNote(q.InternalNotes, "REJECTION REASON", u.now(), reason)
		upd.InternalNotes = &notes
	}
	updated, err := u.update(ctx, q.ID, upd)
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote rejected by client", zap.String("quote_id", updated.ID), zap.Bool("with_reason", reason != ""))

	summary := "No reason provided."
	if reason != "" {
		summary = "Rejection Reason: " + reason
	}
	u.notifyAdmin(ctx, updated, "Quote Rejected - ", summary)
	return updated, nil
}

// DocumentLinks presigns the stored PDF and signature. Links that cannot be
// produced are left empty.
func (u *QuoteUseCase) DocumentLinks(ctx context.Context, q entities.Quote) QuoteDocumentLinks {
	var links QuoteDocumentLinks
	if u.docs == nil {
		return links
	}
	presign := func(key string) string {
		if key == "" {
			return ""
		}
		url, err := u.docs.PresignGet(ctx, key, documentLinkTTL)
		if err != nil {
			u.log.Warn("document link unavailable", zap.String("quote_id", q.ID), zap.String("key", key), zap.Error(err))
			return ""
		}
		return url
	}
	links.QuotePDFURL = presign(q.DocumentKey)
	links.SignatureURL = presign(q.SignatureKey)
	return links
}

func (u *QuoteUseCase) load(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, entities.ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) update(ctx context.Context, id string, upd entities.QuoteUpdate) (entities.Quote, error) {
	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, entities.ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) storeDocument(ctx context.Context, quoteID, kind, defaultExt string, doc interfaces.Document, now time.Time) (string, string, error) {
	if u.docs == nil {
		return "", "", errors.New("document store not configured")
	}
	fileName := filepath.Base(strings.TrimSpace(doc.FileName))
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = defaultExt
	}
	if fileName == "." || fileName == "/" || fileName == "" {
		fileName = kind + ext
	}
	key := fmt.Sprintf("quotes/%s/%s-%d%s", quoteID, kind, now.UnixMilli(), ext)

	stored, err := u.docs.Put(ctx, key, doc)
	if err != nil {
		return "", "", fmt.Errorf("store %s document: %w", kind, err)
	}
	return stored, fileName, nil
}

// appendNote adds a timestamped entry to the audit trail without touching earlier entries.
func appendNote(existing, label string, at time.Time, text string) string {
	entry := fmt.Sprintf("[%s - %s]:\n%s", label, at.UTC().Format(time.RFC3339), text)
	if strings.TrimSpace(existing) == "" {
		return entry
	}
	return strings.TrimRight(existing, "\n") + "\n\n" + entry
}
