package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/planroom/teamplan-api/internal/config"
)

// SMTPTransport delivers email through an SMTP relay using PLAIN auth.
type SMTPTransport struct {
	addr string
	auth smtp.Auth
	from string
}

var _ Transport = (*SMTPTransport)(nil)

// NewSMTPTransport creates a Transport from mail configuration.
func NewSMTPTransport(cfg config.MailConfig) *SMTPTransport {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}

	return &SMTPTransport{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: auth,
		from: cfg.FromAddress,
	}
}

// Send delivers a single plain-text message. The context is honored only up
// to the point of dialing; net/smtp does not support mid-send cancellation.
func (t *SMTPTransport) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + t.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(t.addr, t.auth, t.from, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
