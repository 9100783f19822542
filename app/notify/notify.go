// Package notify sends candidate and recruiter email.
package notify

import (
	"fmt"
	"net/smtp"

	"github.com/Salman-Nadeem/Automate-Hiring-Process/app/config"
	"go.uber.org/zap"
)

// Notifier delivers one message. Implementations may block; callers that
// must not wait wrap the notifier with Async.
type Notifier interface {
	Send(to, subject, body string) error
}

// SMTPNotifier sends plain-text mail through the configured SMTP relay.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

func NewSMTP(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// Async wraps a notifier so delivery is fire-and-forget: Send spawns a
// goroutine, logs failures at warn level, and always reports success to the
// caller. State transitions must never block or fail on mail.
type Async struct {
	inner Notifier
	log   *zap.Logger
}

func NewAsync(inner Notifier, log *zap.Logger) *Async {
	if log == nil {
		log = zap.NewNop()
	}
	return &Async{inner: inner, log: log}
}

func (a *Async) Send(to, subject, body string) error {
	go func() {
		if err := a.inner.Send(to, subject, body); err != nil {
			a.log.Warn("notification delivery failed",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err),
			)
		}
	}()
	return nil
}
