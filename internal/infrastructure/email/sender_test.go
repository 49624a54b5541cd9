package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"rental_quotes/internal/config"
	"rental_quotes/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("quotes@rental.test", interfaces.OutgoingEmail{
		To:      []string{"ada@example.com"},
		Subject: "Votre devis est prêt - TFS-260310-ABCD",
		HTML:    "<p>Bonjour</p>",
		ReplyTo: "desk@rental.test",
	}, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)))

	assert.Contains(t, msg, "From: quotes@rental.test\r\n")
	assert.Contains(t, msg, "Reply-To: desk@rental.test\r\n")
	assert.Contains(t, msg, "Subject: =?utf-8?q?")
	assert.Contains(t, msg, `Content-Type: text/html; charset="UTF-8"`)
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>Bonjour</p>"))
}

func TestNewSender(t *testing.T) {
	s := NewSender(&config.Config{SmtpFromAddress: "x@y.z"}, zap.NewNop())
	_, ok := s.(*LoggingSender)
	assert.True(t, ok, "expected logging sender without SMTP host")

	s = NewSender(&config.Config{SmtpHost: "smtp.test", SmtpPort: 2525}, zap.NewNop())
	smtpSender, ok := s.(*SMTPSender)
	require.True(t, ok)
	assert.Equal(t, "smtp.test:2525", smtpSender.addr)
}

func TestSMTPSender_Send(t *testing.T) {
	var gotAddr string
	var gotTo []string
	s := &SMTPSender{from: "quotes@rental.test", addr: "smtp.test:25", sendMail: func(addr string, _ smtp.Auth, _ string, to []string, _ []byte) error {
		gotAddr, gotTo = addr, to
		return nil
	}}

	require.NoError(t, s.Send(context.Background(), interfaces.OutgoingEmail{To: []string{"a@b.c"}, Subject: "s", HTML: "h"}))
	assert.Equal(t, "smtp.test:25", gotAddr)
	assert.Equal(t, []string{"a@b.c"}, gotTo)

	assert.Error(t, s.Send(context.Background(), interfaces.OutgoingEmail{}))

	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("421 try later") }
	err := s.Send(context.Background(), interfaces.OutgoingEmail{To: []string{"a@b.c"}})
	assert.ErrorContains(t, err, "421 try later")
}

type stubSender struct {
	err   error
	calls int
}

func (s *stubSender) Send(context.Context, interfaces.OutgoingEmail) error {
	s.calls++
	return s.err
}

func TestCompositeSender(t *testing.T) {
	assert.Error(t, NewCompositeSender().Send(context.Background(), interfaces.OutgoingEmail{}))

	ok := &stubSender{}
	bad := &stubSender{err: errors.New("down")}
	cs := NewCompositeSender(ok, nil, bad)

	err := cs.Send(context.Background(), interfaces.OutgoingEmail{To: []string{"a@b.c"}})
	assert.ErrorContains(t, err, "down")
	assert.Equal(t, 1, ok.calls)
	assert.Equal(t, 1, bad.calls)
}
