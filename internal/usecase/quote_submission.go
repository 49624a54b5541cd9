package usecase

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/mail"
	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const confirmationAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CreateQuoteInput is a submitted rental request. Items never carry prices.
type CreateQuoteInput struct {
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	Company            string
	Items              []entities.QuoteItem
	RentalStartDate    string
	RentalEndDate      string
	ProjectType        string
	ProjectDescription string
	Location           string
	DeliveryPreference string
	Notes              string
	Language           string
}

// CreatedQuote is what the submitter gets back: enough to open the magic link.
type CreatedQuote struct {
	QuoteID            string
	ConfirmationNumber string
	AccessToken        string
}

// CreateQuote stores a new pending request and queues the client
// acknowledgement and the admin "new quote" notification.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, caller entities.Caller, in CreateQuoteInput) (CreatedQuote, error) {
	if err := validateCreateQuote(&in); err != nil {
		return CreatedQuote{}, err
	}

	itemsJSON, err := json.Marshal(in.Items)
	if err != nil {
		return CreatedQuote{}, fmt.Errorf("encode quote items: %w", err)
	}
	now := u.now()
	number, err := newConfirmationNumber(now)
	if err != nil {
		return CreatedQuote{}, err
	}

	q := entities.Quote{
		ID:                 uuid.NewString(),
		ConfirmationNumber: number,
		AccessToken:        uuid.NewString(),
		UserID:             caller.UserID,
		Language:           in.Language,
		ClientName:         strings.TrimSpace(in.FirstName + " " + in.LastName),
		ClientEmail:        in.Email,
		ClientPhone:        in.Phone,
		ClientCompany:      in.Company,
		ItemsJSON:          string(itemsJSON),
		RentalStartDate:    in.RentalStartDate,
		RentalEndDate:      in.RentalEndDate,
		ProjectDescription: projectDescription(in.ProjectType, in.ProjectDescription),
		SpecialRequests:    specialRequests(in.DeliveryPreference, in.Notes),
		Location:           in.Location,
		Status:             entities.QuoteStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return CreatedQuote{}, err
	}
	u.log.Info("quote submitted",
		zap.String("quote_id", created.ID),
		zap.String("confirmation_number", created.ConfirmationNumber),
		zap.Int("items", len(in.Items)),
	)

	u.notify(ctx, created, "client confirmation", func(ctx context.Context) error {
		return u.notifier.SendQuoteConfirmation(ctx, interfaces.QuoteConfirmationNotification{
			To:                 created.ClientEmail,
			CustomerName:       created.ClientName,
			ConfirmationNumber: created.ConfirmationNumber,
			Items:              in.Items,
			RentalStartDate:    created.RentalStartDate,
			RentalEndDate:      created.RentalEndDate,
			ProjectDescription: created.ProjectDescription,
			SpecialRequests:    created.SpecialRequests,
			QuoteID:            created.ID,
			AccessToken:        created.AccessToken,
			Language:           created.Language,
		})
	})
	u.notifyAdmin(ctx, created, "New Quote Request - ", "")

	return CreatedQuote{
		QuoteID:            created.ID,
		ConfirmationNumber: created.ConfirmationNumber,
		AccessToken:        created.AccessToken,
	}, nil
}

func validateCreateQuote(in *CreateQuoteInput) error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)
	in.Location = strings.TrimSpace(in.Location)

	if in.FirstName == "" && in.LastName == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidQuoteInput)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil || in.Email == "" {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidQuoteInput)
	}
	if in.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidQuoteInput)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidQuoteInput)
	}
	for i, it := range in.Items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity < 1 {
			return fmt.Errorf("%w: item %d needs a product and a quantity of at least 1", ErrInvalidQuoteInput, i+1)
		}
	}

	start, err := parseRentalDate(in.RentalStartDate)
	if err != nil {
		return fmt.Errorf("%w: rental start date: %v", ErrInvalidQuoteInput, err)
	}
	end, err := parseRentalDate(in.RentalEndDate)
	if err != nil {
		return fmt.Errorf("%w: rental end date: %v", ErrInvalidQuoteInput, err)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: rental end date is before the start date", ErrInvalidQuoteInput)
	}
	in.RentalStartDate = start.Format(time.DateOnly)
	in.RentalEndDate = end.Format(time.DateOnly)

	switch strings.ToLower(strings.TrimSpace(in.Language)) {
	case "fr":
		in.Language = "fr"
	default:
		in.Language = "en"
	}
	return nil
}

// parseRentalDate accepts a calendar date or a full timestamp, keeping the date part.
func parseRentalDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("required")
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD")
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func projectDescription(kind, description string) string {
	kind = strings.TrimSpace(kind)
	description = strings.TrimSpace(description)
	if kind == "" {
		return description
	}
	return strings.TrimSpace("[" + kind + "] " + description)
}

func specialRequests(delivery, notes string) string {
	delivery = strings.TrimSpace(delivery)
	notes = strings.TrimSpace(notes)
	if delivery == "" {
		return notes
	}
	return strings.TrimSpace("Delivery: " + delivery + "\n" + notes)
}

// newConfirmationNumber returns TFS-YYMMDD-XXXX.
func newConfirmationNumber(now time.Time) (string, error) {
	suffix := make([]byte, 4)
	max := big.NewInt(int64(len(confirmationAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate confirmation number: %w", err)
		}
		suffix[i] = confirmationAlphabet[n.Int64()]
	}
	return fmt.Sprintf("TFS-%s-%s", now.UTC().Format("060102"), suffix), nil
}

// notify runs a best-effort enqueue. The state change is already stored, so
// failures are logged and dropped.
func (u *QuoteUseCase) notify(ctx context.Context, q entities.Quote, kind string, send func(context.Context) error) {
	if u.notifier == nil {
		return
	}
	if err := send(ctx); err != nil {
		u.log.Warn("quote notification not queued",
			zap.String("quote_id", q.ID),
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
}

func (u *QuoteUseCase) notifyQuoteReady(ctx context.Context, q entities.Quote) {
	u.notify(ctx, q, "quote ready", func(ctx context.Context) error {
		return u.notifier.SendQuoteReadyNotification(ctx, interfaces.QuoteReadyNotification{
			To:                 q.ClientEmail,
			CustomerName:       q.ClientName,
			ConfirmationNumber: q.ConfirmationNumber,
			QuoteID:            q.ID,
			AccessToken:        q.AccessToken,
			EstimatedPrice:     q.EstimatedPrice,
			Language:           q.Language,
		})
	})
}

// notifyAdmin tells the rental desk about q. summary replaces the special
// requests block when set, so the admin sees what just happened.
func (u *QuoteUseCase) notifyAdmin(ctx context.Context, q entities.Quote, subjectPrefix, summary string) {
	if strings.TrimSpace(u.cfg.AdminEmail) == "" {
		return
	}
	var items []entities.QuoteItem
	if q.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(q.ItemsJSON), &items); err != nil {
			u.log.Debug("quote items not decodable", zap.String("quote_id", q.ID), zap.Error(err))
		}
	}
	requests := q.SpecialRequests
	if summary != "" {
		requests = summary
	}
	u.notify(ctx, q, "admin notification", func(ctx context.Context) error {
		return u.notifier.SendAdminQuoteNotification(ctx, interfaces.AdminQuoteNotification{
			To:                 u.cfg.AdminEmail,
			Subject:            subjectPrefix + q.ConfirmationNumber,
			CustomerName:       q.ClientName,
			CustomerEmail:      q.ClientEmail,
			CustomerPhone:      q.ClientPhone,
			CustomerCompany:    q.ClientCompany,
			ConfirmationNumber: q.ConfirmationNumber,
			Items:              items,
			RentalStartDate:    q.RentalStartDate,
			RentalEndDate:      q.RentalEndDate,
			ProjectDescription: q.ProjectDescription,
			SpecialRequests:    requests,
			QuoteID:            q.ID,
		})
	})
}
