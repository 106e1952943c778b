package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/librarium-dev/librarium/internal/config"
)

// Mailer delivers plain-text notices. Delivery is best effort: callers log
// failures and carry on, they never retry or roll back.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTP sends through a STARTTLS-capable relay.
type SMTP struct {
	host     string
	port     string
	email    string
	password string
	from     string
}

func NewSMTP(cfg config.Config) *SMTP {
	return &SMTP{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		email:    cfg.SMTPEmail,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
	}
}

func (m *SMTP) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, m.email, to, subject, body)

	auth := smtp.PlainAuth("", m.email, m.password, m.host)

	return smtp.SendMail(m.host+":"+m.port, auth, m.email, []string{to}, []byte(msg))
}
