package notifications

import (
	"fmt"

	"github.com/brandpulse/social-monitor/internal/config"
	"gopkg.in/gomail.v2"
)

// EmailSender abstracts SMTP delivery so tests can capture messages.
type EmailSender interface {
	Send(to, subject, textBody, htmlBody string) error
}

type smtpSender struct {
	cfg *config.Config
}

func newSMTPSender(cfg *config.Config) EmailSender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(to, subject, textBody, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SMTPUsername)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUsername, s.cfg.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
