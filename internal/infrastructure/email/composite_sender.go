package email

import (
	"context"
	"errors"
	"fmt"

	"rental_quotes/internal/usecase/interfaces"
)

// CompositeSender delivers every email through all of its senders.
type CompositeSender struct {
	senders []interfaces.IEmailSender
}

var _ interfaces.IEmailSender = (*CompositeSender)(nil)

func NewCompositeSender(senders ...interfaces.IEmailSender) *CompositeSender {
	cs := &CompositeSender{}
	for _, s := range senders {
		cs.AddSender(s)
	}
	return cs
}

func (cs *CompositeSender) AddSender(sender interfaces.IEmailSender) {
	if sender != nil {
		cs.senders = append(cs.senders, sender)
	}
}

// Send fails when any sender fails; the errors are joined.
func (cs *CompositeSender) Send(ctx context.Context, e interfaces.OutgoingEmail) error {
	if len(cs.senders) == 0 {
		return fmt.Errorf("no senders configured in CompositeSender")
	}
	var errs []error
	for _, s := range cs.senders {
		if err := s.Send(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("composite email send failed: %w", errors.Join(errs...))
	}
	return nil
}
