package entities

import (
	"crypto/subtle"
	"errors"
	"math"
	"time"
)

// QuoteGracePeriod is how long a locked quote stays editable after it was sent.
const QuoteGracePeriod = 15 * time.Minute

// QuoteItem is one requested line of a blind quote. Clients never send prices.
type QuoteItem struct {
	ProductID        string              `json:"productId"`
	Name             string              `json:"name"`
	Slug             string              `json:"slug"`
	Quantity         int                 `json:"quantity"`
	ImageURL         string              `json:"imageUrl,omitempty"`
	KitSelections    map[string][]string `json:"kitSelections,omitempty"`
	SelectedVariants map[string]string   `json:"selectedVariants,omitempty"`
}

// Quote is an equipment rental request plus the pricing an admin attaches later.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-created_at-index): status, created_at
//   - GSI2 (client_email-index): client_email
//
// Contact fields are a snapshot taken at submission time. ItemsJSON is opaque
// to the lifecycle and only rendered back to admins.
type Quote struct {
	ID                 string
	ConfirmationNumber string
	AccessToken        string
	UserID             string
	Language           string

	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ClientCompany string

	ItemsJSON       string
	RentalStartDate string
	RentalEndDate   string

	ProjectDescription string
	SpecialRequests    string
	Location           string

	Status         QuoteStatus
	IsLocked       bool
	EstimatedPrice *float64
	PDFFileName    string
	DocumentKey    string
	QuotedAt       *time.Time

	InternalNotes string

	SignatureKey string
	SignedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPrice reports whether an admin has set a usable price.
func (q Quote) HasPrice() bool {
	return q.EstimatedPrice != nil && *q.EstimatedPrice > 0
}

// HasDocument reports whether a quote document has been stored.
func (q Quote) HasDocument() bool {
	return q.DocumentKey != "" || q.PDFFileName != ""
}

// Editable reports whether the admin form accepts price/document edits at now.
// A locked quote that was sent (or accepted) becomes read-only once the grace
// period has elapsed; a missing quotedAt counts as elapsed.
func (q Quote) Editable(now time.Time) bool {
	if !q.IsLocked {
		return true
	}
	if q.Status != QuoteStatusQuoted && q.Status != QuoteStatusConfirmed {
		return true
	}
	if q.QuotedAt == nil {
		return false
	}
	return now.Sub(*q.QuotedAt) < QuoteGracePeriod
}

// GraceMinutesRemaining is display-only; Editable is what gates edits.
func (q Quote) GraceMinutesRemaining(now time.Time) int {
	if q.QuotedAt == nil {
		return 0
	}
	if q.Status != QuoteStatusQuoted && q.Status != QuoteStatusConfirmed {
		return 0
	}
	elapsed := now.Sub(*q.QuotedAt).Minutes()
	remaining := math.Ceil(QuoteGracePeriod.Minutes() - elapsed)
	if remaining < 0 {
		return 0
	}
	return int(remaining)
}

// TokenMatches compares the public access token in constant time.
func (q Quote) TokenMatches(token string) bool {
	return q.AccessToken != "" && subtle.ConstantTimeCompare([]byte(q.AccessToken), []byte(token)) == 1
}

// QuoteUpdate is a partial update of a quote record. Nil fields are left untouched.
type QuoteUpdate struct {
	Status         *QuoteStatus
	IsLocked       *bool
	EstimatedPrice *float64
	PDFFileName    *string
	DocumentKey    *string
	QuotedAt       *time.Time
	InternalNotes  *string
	SignatureKey   *string
	SignedAt       *time.Time
}

// Apply returns a copy of q with the update applied.
func (u QuoteUpdate) Apply(q Quote) Quote {
	if u.Status != nil {
		q.Status = *u.Status
	}
	if u.IsLocked != nil {
		q.IsLocked = *u.IsLocked
	}
	if u.EstimatedPrice != nil {
		price := *u.EstimatedPrice
		q.EstimatedPrice = &price
	}
	if u.PDFFileName != nil {
		q.PDFFileName = *u.PDFFileName
	}
	if u.DocumentKey != nil {
		q.DocumentKey = *u.DocumentKey
	}
	if u.QuotedAt != nil {
		at := *u.QuotedAt
		q.QuotedAt = &at
	}
	if u.InternalNotes != nil {
		q.InternalNotes = *u.InternalNotes
	}
	if u.SignatureKey != nil {
		q.SignatureKey = *u.SignatureKey
	}
	if u.SignedAt != nil {
		at := *u.SignedAt
		q.SignedAt = &at
	}
	return q
}

// Empty reports whether the update carries no field at all.
func (u QuoteUpdate) Empty() bool {
	return u.Status == nil && u.IsLocked == nil && u.EstimatedPrice == nil &&
		u.PDFFileName == nil && u.DocumentKey == nil && u.QuotedAt == nil &&
		u.InternalNotes == nil && u.SignatureKey == nil && u.SignedAt == nil
}

// ErrInvalidCursor is returned for a listing cursor that was not issued by a previous page.
var ErrInvalidCursor = errors.New("invalid page cursor")

// QuoteFilter narrows admin listings.
type QuoteFilter struct {
	Status *QuoteStatus
	Limit  int
	Cursor string
}

// QuotePage is one page of a filtered listing. NextCursor is empty on the last page.
type QuotePage struct {
	Items      []Quote
	NextCursor string
}
