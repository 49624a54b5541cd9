package request

import (
	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase"
	"strings"
)

type QuoteItemRequest struct {
	ProductID        string              `json:"productId" binding:"required"`
	Name             string              `json:"name"`
	Slug             string              `json:"slug"`
	Quantity         int                 `json:"quantity" binding:"required,min=1"`
	ImageURL         string              `json:"imageUrl"`
	KitSelections    map[string][]string `json:"kitSelections"`
	SelectedVariants map[string]string   `json:"selectedVariants"`
}

// CreateQuoteRequest is the public rental request form.
type CreateQuoteRequest struct {
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Email              string             `json:"email" binding:"required"`
	Phone              string             `json:"phone" binding:"required"`
	Company            string             `json:"company"`
	Items              []QuoteItemRequest `json:"items" binding:"required,min=1,dive"`
	RentalStartDate    string             `json:"rentalStartDate" binding:"required"`
	RentalEndDate      string             `json:"rentalEndDate" binding:"required"`
	ProjectType        string             `json:"projectType"`
	ProjectDescription string             `json:"projectDescription"`
	Location           string             `json:"location"`
	DeliveryPreference string             `json:"deliveryPreference"`
	Notes              string             `json:"notes"`
	Language           string             `json:"language"`
}

func (r CreateQuoteRequest) ToInput() usecase.CreateQuoteInput {
	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.QuoteItem{
			ProductID:        strings.TrimSpace(it.ProductID),
			Name:             it.Name,
			Slug:             it.Slug,
			Quantity:         it.Quantity,
			ImageURL:         it.ImageURL,
			KitSelections:    it.KitSelections,
			SelectedVariants: it.SelectedVariants,
		})
	}
	return usecase.CreateQuoteInput{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Email:              r.Email,
		Phone:              r.Phone,
		Company:            r.Company,
		Items:              items,
		RentalStartDate:    r.RentalStartDate,
		RentalEndDate:      r.RentalEndDate,
		ProjectType:        r.ProjectType,
		ProjectDescription: r.ProjectDescription,
		Location:           r.Location,
		DeliveryPreference: r.DeliveryPreference,
		Notes:              r.Notes,
		Language:           r.Language,
	}
}

// RejectQuoteRequest is the client's decline. Reason is optional.
type RejectQuoteRequest struct {
	Token  string `json:"token" binding:"required"`
	Reason string `json:"reason"`
}

// AcceptQuoteForm is the multipart accept form; the signature travels as the "signature" file.
type AcceptQuoteForm struct {
	Token string `form:"token" binding:"required"`
}

// FinalizeQuoteForm is the multipart admin form; the PDF travels as the optional "file" part.
type FinalizeQuoteForm struct {
	Price     float64 `form:"price" binding:"required"`
	Lock      bool    `form:"lock"`
	SendEmail *bool   `form:"sendEmail"`
}

// ShouldNotify defaults to true when the flag was not sent.
func (f FinalizeQuoteForm) ShouldNotify() bool {
	return f.SendEmail == nil || *f.SendEmail
}

type AdminConfirmRequest struct {
	Note string `json:"note"`
}

type AdminRejectRequest struct {
	Reason string `json:"reason"`
}

// ListQuotesQuery binds the admin listing query string.
type ListQuotesQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Cursor string `form:"cursor"`
}

func (q ListQuotesQuery) ToFilter() (entities.QuoteFilter, error) {
	f := entities.QuoteFilter{Limit: q.Limit, Cursor: strings.TrimSpace(q.Cursor)}
	if s := strings.TrimSpace(q.Status); s != "" && !strings.EqualFold(s, "all") {
		status, err := entities.ParseQuoteStatus(s)
		if err != nil {
			return entities.QuoteFilter{}, err
		}
		f.Status = &status
	}
	return f, nil
}
