package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer delivers a single message to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SMTPConfig struct {
	Addr string // host:port
	From string
	User string
	Pass string
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(c SMTPConfig) *SMTPMailer {
	m := &SMTPMailer{
		addr: c.Addr,
		from: c.From,
	}

	if c.User != "" {
		host, _, ok := strings.Cut(c.Addr, ":")
		if !ok {
			host = c.Addr
		}
		m.auth = smtp.PlainAuth("", c.User, c.Pass, host)
	}

	return m
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}
