// internal/app/system/mailer/mailer.go

// Package mailer sends FormHub's notification emails over SMTP.
//
// Messages carry both a plain-text and an HTML body. Delivery is a
// single attempt: a failed send is reported to the caller and nothing
// is queued or retried.
package mailer

import (
	"fmt"

	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Email is one outbound message.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string // optional; sent as the alternative part when present
	ReplyTo  string // optional; lets the recipient reply to the submitter directly
	FromName string // optional display name; falls back to the configured one
}

// Config holds SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	User     string // empty means no auth (e.g. Mailpit in development)
	Pass     string
	From     string
	FromName string
}

// Mailer delivers emails through a configured SMTP relay.
type Mailer struct {
	cfg Config
	log *zap.Logger
}

// New creates a Mailer. No connection is made until Send.
func New(cfg Config, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: logger}
}

// Send delivers one email. One attempt, no retry.
func (m *Mailer) Send(e Email) error {
	msg := mail.NewMsg()

	fromName := e.FromName
	if fromName == "" {
		fromName = m.cfg.FromName
	}
	if err := msg.FromFormat(fromName, m.cfg.From); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	if e.ReplyTo != "" {
		if err := msg.ReplyTo(e.ReplyTo); err != nil {
			return fmt.Errorf("set reply-to address: %w", err)
		}
	}

	msg.Subject(e.Subject)
	msg.SetBodyString(mail.TypeTextPlain, e.TextBody)
	if e.HTMLBody != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, e.HTMLBody)
	}

	opts := []mail.Option{mail.WithPort(m.cfg.Port)}
	if m.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.User),
			mail.WithPassword(m.cfg.Pass),
		)
	} else {
		// Local relays like Mailpit speak neither auth nor TLS.
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	m.log.Info("email sent",
		zap.String("to", e.To),
		zap.String("subject", e.Subject))
	return nil
}
