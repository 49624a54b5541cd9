package interfaces

import "context"

// OutgoingEmail is a rendered message ready for a delivery provider.
type OutgoingEmail struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// IEmailSender abstracts the delivery provider (SMTP, logging, composite).
type IEmailSender interface {
	Send(ctx context.Context, email OutgoingEmail) error
}
