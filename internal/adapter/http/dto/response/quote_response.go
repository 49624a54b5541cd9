package response

import (
	"encoding/json"
	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase"
	"time"
)

// QuoteResponse is the admin view of a quote.
type QuoteResponse struct {
	ID                    string               `json:"id"`
	ConfirmationNumber    string               `json:"confirmationNumber"`
	Status                string               `json:"status"`
	IsLocked              bool                 `json:"isLocked"`
	Editable              bool                 `json:"editable"`
	GraceMinutesRemaining int                  `json:"graceMinutesRemaining"`
	Language              string               `json:"language"`
	UserID                string               `json:"userId,omitempty"`
	ClientName            string               `json:"clientName"`
	ClientEmail           string               `json:"clientEmail"`
	ClientPhone           string               `json:"clientPhone"`
	ClientCompany         string               `json:"clientCompany,omitempty"`
	Items                 []entities.QuoteItem `json:"items"`
	RentalStartDate       string               `json:"rentalStartDate"`
	RentalEndDate         string               `json:"rentalEndDate"`
	ProjectDescription    string               `json:"projectDescription,omitempty"`
	SpecialRequests       string               `json:"specialRequests,omitempty"`
	Location              string               `json:"location,omitempty"`
	EstimatedPrice        *float64             `json:"estimatedPrice"`
	PDFFileName           string               `json:"pdfFileName,omitempty"`
	QuotePDFURL           string               `json:"quotePdfUrl,omitempty"`
	QuotedAt              *time.Time           `json:"quotedAt,omitempty"`
	InternalNotes         string               `json:"internalNotes,omitempty"`
	SignatureURL          string               `json:"signatureUrl,omitempty"`
	SignedAt              *time.Time           `json:"signedAt,omitempty"`
	CreatedAt             time.Time            `json:"createdAt"`
	UpdatedAt             time.Time            `json:"updatedAt"`
}

func FromQuote(q entities.Quote, links usecase.QuoteDocumentLinks, now time.Time) QuoteResponse {
	return QuoteResponse{
		ID:                    q.ID,
		ConfirmationNumber:    q.ConfirmationNumber,
		Status:                string(q.Status),
		IsLocked:              q.IsLocked,
		Editable:              q.Editable(now),
		GraceMinutesRemaining: q.GraceMinutesRemaining(now),
		Language:              q.Language,
		UserID:                q.UserID,
		ClientName:            q.ClientName,
		ClientEmail:           q.ClientEmail,
		ClientPhone:           q.ClientPhone,
		ClientCompany:         q.ClientCompany,
		Items:                 decodeItems(q.ItemsJSON),
		RentalStartDate:       q.RentalStartDate,
		RentalEndDate:         q.RentalEndDate,
		ProjectDescription:    q.ProjectDescription,
		SpecialRequests:       q.SpecialRequests,
		Location:              q.Location,
		EstimatedPrice:        q.EstimatedPrice,
		PDFFileName:           q.PDFFileName,
		QuotePDFURL:           links.QuotePDFURL,
		QuotedAt:              q.QuotedAt,
		InternalNotes:         q.InternalNotes,
		SignatureURL:          links.SignatureURL,
		SignedAt:              q.SignedAt,
		CreatedAt:             q.CreatedAt,
		UpdatedAt:             q.UpdatedAt,
	}
}

// QuoteSummaryResponse is one row of the admin list.
type QuoteSummaryResponse struct {
	ID                 string    `json:"id"`
	ConfirmationNumber string    `json:"confirmationNumber"`
	Status             string    `json:"status"`
	IsLocked           bool      `json:"isLocked"`
	ClientName         string    `json:"clientName"`
	ClientEmail        string    `json:"clientEmail"`
	ClientCompany      string    `json:"clientCompany,omitempty"`
	RentalStartDate    string    `json:"rentalStartDate"`
	RentalEndDate      string    `json:"rentalEndDate"`
	EstimatedPrice     *float64  `json:"estimatedPrice"`
	CreatedAt          time.Time `json:"createdAt"`
}

func FromQuoteSummary(q entities.Quote) QuoteSummaryResponse {
	return QuoteSummaryResponse{
		ID:                 q.ID,
		ConfirmationNumber: q.ConfirmationNumber,
		Status:             string(q.Status),
		IsLocked:           q.IsLocked,
		ClientName:         q.ClientName,
		ClientEmail:        q.ClientEmail,
		ClientCompany:      q.ClientCompany,
		RentalStartDate:    q.RentalStartDate,
		RentalEndDate:      q.RentalEndDate,
		EstimatedPrice:     q.EstimatedPrice,
		CreatedAt:          q.CreatedAt,
	}
}

type QuoteListResponse struct {
	Items      []QuoteSummaryResponse `json:"items"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

func FromQuotePage(p entities.QuotePage) QuoteListResponse {
	items := make([]QuoteSummaryResponse, 0, len(p.Items))
	for _, q := range p.Items {
		items = append(items, FromQuoteSummary(q))
	}
	return QuoteListResponse{Items: items, NextCursor: p.NextCursor}
}

// PublicQuoteResponse is what the magic link shows: no internal notes, no token.
// Price and document only appear once the quote has been sent.
type PublicQuoteResponse struct {
	ID                 string               `json:"id"`
	ConfirmationNumber string               `json:"confirmationNumber"`
	Status             string               `json:"status"`
	Language           string               `json:"language"`
	ClientName         string               `json:"clientName"`
	ClientEmail        string               `json:"clientEmail"`
	ClientCompany      string               `json:"clientCompany,omitempty"`
	Items              []entities.QuoteItem `json:"items"`
	RentalStartDate    string               `json:"rentalStartDate"`
	RentalEndDate      string               `json:"rentalEndDate"`
	ProjectDescription string               `json:"projectDescription,omitempty"`
	SpecialRequests    string               `json:"specialRequests,omitempty"`
	Location           string               `json:"location,omitempty"`
	EstimatedPrice     *float64             `json:"estimatedPrice,omitempty"`
	PDFFileName        string               `json:"pdfFileName,omitempty"`
	QuotePDFURL        string               `json:"quotePdfUrl,omitempty"`
	QuotedAt           *time.Time           `json:"quotedAt,omitempty"`
	SignedAt           *time.Time           `json:"signedAt,omitempty"`
	CanRespond         bool                 `json:"canRespond"`
	CreatedAt          time.Time            `json:"createdAt"`
}

func FromPublicQuote(q entities.Quote, links usecase.QuoteDocumentLinks) PublicQuoteResponse {
	r := PublicQuoteResponse{
		ID:                 q.ID,
		ConfirmationNumber: q.ConfirmationNumber,
		Status:             string(q.Status),
		Language:           q.Language,
		ClientName:         q.ClientName,
		ClientEmail:        q.ClientEmail,
		ClientCompany:      q.ClientCompany,
		Items:              decodeItems(q.ItemsJSON),
		RentalStartDate:    q.RentalStartDate,
		RentalEndDate:      q.RentalEndDate,
		ProjectDescription: q.ProjectDescription,
		SpecialRequests:    q.SpecialRequests,
		Location:           q.Location,
		SignedAt:           q.SignedAt,
		CanRespond:         q.Status.CanClientDecide() == nil,
		CreatedAt:          q.CreatedAt,
	}
	switch q.Status {
	case entities.QuoteStatusQuoted, entities.QuoteStatusConfirmed, entities.QuoteStatusRejected:
		r.EstimatedPrice = q.EstimatedPrice
		r.PDFFileName = q.PDFFileName
		r.QuotePDFURL = links.QuotePDFURL
		r.QuotedAt = q.QuotedAt
	}
	return r
}

// ClientQuoteResponse is one row of "my quotes".
type ClientQuoteResponse struct {
	ID                 string    `json:"id"`
	ConfirmationNumber string    `json:"confirmationNumber"`
	Status             string    `json:"status"`
	RentalStartDate    string    `json:"rentalStartDate"`
	RentalEndDate      string    `json:"rentalEndDate"`
	EstimatedPrice     *float64  `json:"estimatedPrice,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

func FromClientQuotes(quotes []entities.Quote) []ClientQuoteResponse {
	out := make([]ClientQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		r := ClientQuoteResponse{
			ID:                 q.ID,
			ConfirmationNumber: q.ConfirmationNumber,
			Status:             string(q.Status),
			RentalStartDate:    q.RentalStartDate,
			RentalEndDate:      q.RentalEndDate,
			CreatedAt:          q.CreatedAt,
		}
		if q.Status != entities.QuoteStatusPending && q.Status != entities.QuoteStatusReviewing {
			r.EstimatedPrice = q.EstimatedPrice
		}
		out = append(out, r)
	}
	return out
}

type CreatedQuoteResponse struct {
	QuoteID            string `json:"quoteId"`
	ConfirmationNumber string `json:"confirmationNumber"`
	AccessToken        string `json:"accessToken"`
}

func FromCreatedQuote(c usecase.CreatedQuote) CreatedQuoteResponse {
	return CreatedQuoteResponse{
		QuoteID:            c.QuoteID,
		ConfirmationNumber: c.ConfirmationNumber,
		AccessToken:        c.AccessToken,
	}
}

// decodeItems never fails the response; unreadable items render as an empty list.
func decodeItems(raw string) []entities.QuoteItem {
	items := []entities.QuoteItem{}
	if raw == "" {
		return items
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []entities.QuoteItem{}
	}
	return items
}
