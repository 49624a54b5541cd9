package notifications

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"net/url"
	"strings"
	"time"

	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Enqueuer stores a rendered email for later delivery.
type Enqueuer interface {
	Enqueue(ctx context.Context, m entities.EmailMessage) (entities.EmailMessage, error)
}

// Config holds the site settings rendered into emails.
type Config struct {
	SiteURL    string
	SiteName   string
	Currency   string
	AdminEmail string
}

// QuoteNotifier renders quote emails in the client's language and puts them on the outbox.
type QuoteNotifier struct {
	outbox Enqueuer
	cfg    Config
	tmpl   *template.Template
	log    *zap.Logger
	now    func() time.Time
}

var _ interfaces.IQuoteNotifier = (*QuoteNotifier)(nil)

func NewQuoteNotifier(outbox Enqueuer, cfg Config, logger *zap.Logger) (*QuoteNotifier, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	return &QuoteNotifier{
		outbox: outbox,
		cfg:    cfg,
		tmpl:   tmpl,
		log:    logger.Named("notifier"),
		now:    time.Now,
	}, nil
}

type emailView struct {
	Lang       string
	T          map[string]string
	Title      string
	SiteName   string
	Year       int
	FooterNote string
	Link       string

	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	CustomerCompany    string
	ConfirmationNumber string
	Items              []entities.QuoteItem
	RentalStartDate    string
	RentalEndDate      string
	RentalDays         int
	ProjectDescription string
	SpecialRequests    string
	Price              string
}

type payloadRef struct {
	QuoteID            string `json:"quoteId"`
	ConfirmationNumber string `json:"confirmationNumber"`
	Language           string `json:"language,omitempty"`
}

func (n *QuoteNotifier) SendQuoteConfirmation(ctx context.Context, in interfaces.QuoteConfirmationNotification) error {
	lang := normalizeLang(in.Language)
	t := messages[lang]
	subject := in.Subject
	if subject == "" {
		subject = t["confirmationSubject"] + " - " + in.ConfirmationNumber
	}
	replyTo := in.ReplyTo
	if replyTo == "" {
		replyTo = n.cfg.AdminEmail
	}

	view := n.baseView(lang, t["confirmationTitle"])
	view.FooterNote = t["linkNote"]
	view.Link = n.magicLink(lang, in.QuoteID, in.AccessToken)
	view.CustomerName = in.CustomerName
	view.ConfirmationNumber = in.ConfirmationNumber
	view.Items = in.Items
	view.RentalStartDate = in.RentalStartDate
	view.RentalEndDate = in.RentalEndDate
	view.RentalDays = rentalDays(in.RentalStartDate, in.RentalEndDate)
	view.ProjectDescription = in.ProjectDescription
	view.SpecialRequests = in.SpecialRequests

	return n.enqueue(ctx, "quote_confirmation", view, entities.EmailMessage{
		To:          in.To,
		Subject:     subject,
		ReplyTo:     replyTo,
		PayloadType: entities.EmailPayloadQuoteConfirmation,
	}, payloadRef{QuoteID: in.QuoteID, ConfirmationNumber: in.ConfirmationNumber, Language: lang})
}

func (n *QuoteNotifier) SendQuoteReadyNotification(ctx context.Context, in interfaces.QuoteReadyNotification) error {
	lang := normalizeLang(in.Language)
	t := messages[lang]
	subject := in.Subject
	if subject == "" {
		subject = t["readySubject"] + " - " + in.ConfirmationNumber
	}

	view := n.baseView(lang, t["readyTitle"])
	view.FooterNote = t["linkNote"]
	view.Link = n.magicLink(lang, in.QuoteID, in.AccessToken)
	view.CustomerName = in.CustomerName
	view.ConfirmationNumber = in.ConfirmationNumber
	if in.EstimatedPrice != nil {
		view.Price = FormatPrice(*in.EstimatedPrice, n.cfg.Currency, lang)
	}

	return n.enqueue(ctx, "quote_ready", view, entities.EmailMessage{
		To:          in.To,
		Subject:     subject,
		ReplyTo:     n.cfg.AdminEmail,
		PayloadType: entities.EmailPayloadQuoteReady,
	}, payloadRef{QuoteID: in.QuoteID, ConfirmationNumber: in.ConfirmationNumber, Language: lang})
}

// SendAdminQuoteNotification is always rendered in English.
func (n *QuoteNotifier) SendAdminQuoteNotification(ctx context.Context, in interfaces.AdminQuoteNotification) error {
	t := messages["en"]
	subject := in.Subject
	if subject == "" {
		subject = t["adminSubject"] + ": " + in.ConfirmationNumber
	}

	view := n.baseView("en", subject)
	view.Link = n.cfg.SiteURL + "/en/admin/quotes/" + url.PathEscape(in.QuoteID)
	view.CustomerName = in.CustomerName
	view.CustomerEmail = in.CustomerEmail
	view.CustomerPhone = in.CustomerPhone
	view.CustomerCompany = in.CustomerCompany
	view.ConfirmationNumber = in.ConfirmationNumber
	view.Items = in.Items
	view.RentalStartDate = in.RentalStartDate
	view.RentalEndDate = in.RentalEndDate
	view.RentalDays = rentalDays(in.RentalStartDate, in.RentalEndDate)
	view.ProjectDescription = in.ProjectDescription
	view.SpecialRequests = in.SpecialRequests

	return n.enqueue(ctx, "admin_notification", view, entities.EmailMessage{
		To:          in.To,
		Subject:     subject,
		ReplyTo:     in.CustomerEmail,
		PayloadType: entities.EmailPayloadAdminNotification,
	}, payloadRef{QuoteID: in.QuoteID, ConfirmationNumber: in.ConfirmationNumber})
}

func (n *QuoteNotifier) baseView(lang, title string) emailView {
	return emailView{
		Lang:     lang,
		T:        messages[lang],
		Title:    title,
		SiteName: n.cfg.SiteName,
		Year:     n.now().Year(),
	}
}

func (n *QuoteNotifier) magicLink(lang, quoteID, token string) string {
	return fmt.Sprintf("%s/%s/quote/%s?token=%s", n.cfg.SiteURL, lang, url.PathEscape(quoteID), url.QueryEscape(token))
}

func (n *QuoteNotifier) enqueue(ctx context.Context, name string, view emailView, m entities.EmailMessage, ref payloadRef) error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%s: no recipient", name)
	}
	var buf bytes.Buffer
	if err := n.tmpl.ExecuteTemplate(&buf, name, view); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	m.HTML = buf.String()
	if data, err := json.Marshal(ref); err == nil {
		m.PayloadData = data
	}

	stored, err := n.outbox.Enqueue(ctx, m)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", name, err)
	}
	n.log.Debug("notification queued",
		zap.String("template", name),
		zap.String("email_id", stored.ID),
		zap.String("quote_id", ref.QuoteID),
	)
	return nil
}

func normalizeLang(lang string) string {
	if strings.EqualFold(strings.TrimSpace(lang), "fr") {
		return "fr"
	}
	return "en"
}

// rentalDays counts both the first and last day; 0 when the dates are unusable.
func rentalDays(start, end string) int {
	s, err1 := time.Parse(time.DateOnly, start)
	e, err2 := time.Parse(time.DateOnly, end)
	if err1 != nil || err2 != nil || e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// FormatPrice renders an amount with two decimals and grouped thousands:
// "12,500.00 MAD" in English, "12 500,00 MAD" in French, grouped with U+00A0.
func FormatPrice(amount float64, currency, lang string) string {
	cents := int64(math.Round(amount * 100))
	neg := cents < 0
	if neg {
		cents = -cents
	}
	whole := fmt.Sprintf("%d", cents/100)
	frac := fmt.Sprintf("%02d", cents%100)

	thousands, decimal := ",", "."
	if lang == "fr" {
		thousands, decimal = "\u00a0", ","
	}
	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteString(thousands)
		}
		grouped.WriteRune(r)
	}

	out := grouped.String() + decimal + frac
	if neg {
		out = "-" + out
	}
	if currency != "" {
		out += " " + currency
	}
	return out
}
