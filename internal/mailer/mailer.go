// Package mailer sends password-reset mail over SMTP. No mail framework is
// pulled in: the only message this app ever sends is a one-line plain-text
// reset link, which net/smtp covers.
package mailer

import (
	"fmt"
	"io"
	"log"
	"net/smtp"
)

type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
	logger   *log.Logger
}

func New(host string, port int, user, password, from string, logger *log.Logger) *Mailer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if from == "" {
		from = user
	}
	return &Mailer{host: host, port: port, user: user, password: password, from: from, logger: logger}
}

// Send delivers a plain-text message. When SMTP credentials are not
// configured the message is logged and dropped, matching local development
// setups without a mail account.
func (m *Mailer) Send(to, subject, body string) error {
	if m.host == "" || m.user == "" {
		m.logger.Printf("mailer: credentials not set, skipping mail to %s: %s", to, subject)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	m.logger.Printf("mailer: sent %q to %s", subject, to)
	return nil
}
