package email

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"rental_quotes/internal/config"
	"rental_quotes/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// SMTPSender delivers rendered HTML emails through an SMTP relay.
type SMTPSender struct {
	from     string
	addr     string
	auth     smtp.Auth
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ interfaces.IEmailSender = (*SMTPSender)(nil)

// NewSender returns an SMTP sender, or a logging sender when no SMTP host is configured.
func NewSender(cfg *config.Config, logger *zap.Logger) interfaces.IEmailSender {
	if cfg.SmtpHost == "" {
		logger.Info("SMTP host not configured, emails are logged instead of sent")
		return NewLoggingSender(cfg.SmtpFromAddress, logger)
	}
	var auth smtp.Auth
	if cfg.SmtpUsername != "" {
		auth = smtp.PlainAuth("", cfg.SmtpUsername, cfg.SmtpPassword, cfg.SmtpHost)
	}
	return &SMTPSender{
		from:     cfg.SmtpFromAddress,
		addr:     fmt.Sprintf("%s:%d", cfg.SmtpHost, cfg.SmtpPort),
		auth:     auth,
		sendMail: smtp.SendMail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, e interfaces.OutgoingEmail) error {
	if len(e.To) == 0 {
		return fmt.Errorf("smtp error: no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := buildMessage(s.from, e, time.Now())
	if err := s.sendMail(s.addr, s.auth, s.from, e.To, msg); err != nil {
		return fmt.Errorf("smtp error: %w", err)
	}
	return nil
}

// buildMessage renders a single-part HTML message with RFC 2047 encoded subject.
func buildMessage(from string, e interfaces.OutgoingEmail, at time.Time) []byte {
	var b bytes.Buffer
	header := func(k, v string) {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\r\n")
	}
	header("From", from)
	header("To", strings.Join(e.To, ", "))
	if e.ReplyTo != "" {
		header("Reply-To", e.ReplyTo)
	}
	header("Subject", mime.QEncoding.Encode("utf-8", e.Subject))
	header("Date", at.UTC().Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="UTF-8"`)
	header("Content-Transfer-Encoding", "8bit")
	b.WriteString("\r\n")
	b.WriteString(e.HTML)
	return b.Bytes()
}

// LoggingSender only logs emails. Used in development when SMTP is not configured.
type LoggingSender struct {
	from string
	log  *zap.Logger
}

var _ interfaces.IEmailSender = (*LoggingSender)(nil)

func NewLoggingSender(from string, logger *zap.Logger) *LoggingSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingSender{from: from, log: logger.Named("email")}
}

func (s *LoggingSender) Send(_ context.Context, e interfaces.OutgoingEmail) error {
	s.log.Info("email (logged, not sent)",
		zap.Strings("to", e.To),
		zap.String("from", s.from),
		zap.String("subject", e.Subject),
		zap.Int("html_bytes", len(e.HTML)),
	)
	s.log.Debug("email body", zap.String("html", e.HTML))
	return nil
}
