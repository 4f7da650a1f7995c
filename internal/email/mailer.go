// Package email composes and sends the platform's transactional mail. When
// SMTP credentials are absent every send degrades to a logged no-op so the
// quote workflow keeps working without mail configured.
package email

import (
	"bytes"
	"io"
	"log/slog"

	"gopkg.in/gomail.v2"

	"teklif-api/internal/config"
	"teklif-api/internal/models"
)

type Mailer struct {
	server     string
	port       int
	username   string
	password   string
	from       string
	adminEmail string

	// send is swappable for tests; defaults to a gomail dialer.
	send func(msg *gomail.Message) error
}

func NewMailer(cfg *config.Config) *Mailer {
	m := &Mailer{
		server:     cfg.SMTPServer,
		port:       cfg.SMTPPort,
		username:   cfg.SMTPUsername,
		password:   cfg.SMTPPassword,
		from:       cfg.FromEmail,
		adminEmail: cfg.AdminEmail,
	}
	m.send = func(msg *gomail.Message) error {
		dialer := gomail.NewDialer(m.server, m.port, m.username, m.password)
		return dialer.DialAndSend(msg)
	}
	return m
}

// Configured reports whether SMTP credentials are present.
func (m *Mailer) Configured() bool {
	return m.username != "" && m.password != ""
}

// Send delivers an HTML email with an optional PDF attachment. The first
// return value reports whether the email actually went out; an unconfigured
// mailer returns (false, nil), not an error.
func (m *Mailer) Send(to, subject, htmlBody string, attachment []byte, attachmentName string) (bool, error) {
	if !m.Configured() {
		slog.Warn("email not sent, SMTP credentials not configured", "to", to, "subject", subject)
		return false, nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if len(attachment) > 0 && attachmentName != "" {
		msg.Attach(attachmentName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(attachment))
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
		)
	}

	if err := m.send(msg); err != nil {
		slog.Error("failed to send email", "to", to, "error", err)
		return false, err
	}

	slog.Info("email sent", "to", to, "subject", subject)
	return true, nil
}

// SendNewQuoteNotification alerts the admin inbox about a fresh quote
// request. Best effort: callers log the outcome and move on.
func (m *Mailer) SendNewQuoteNotification(quote *models.Quote, settings *models.CompanySettings) (bool, error) {
	if m.adminEmail == "" {
		slog.Warn("admin notification skipped, no admin email configured", "quote_id", quote.ID)
		return false, nil
	}
	subject, body := BuildAdminNotification(quote, settings)
	return m.Send(m.adminEmail, subject, body, nil, "")
}

// SendQuoteResponse delivers the status notification to the customer with
// the current PDF snapshot attached.
func (m *Mailer) SendQuoteResponse(quote *models.Quote, pdfData []byte, settings *models.CompanySettings) (bool, error) {
	subject, body := BuildStatusEmail(quote, settings)
	name := ""
	if len(pdfData) > 0 {
		name = AttachmentName(quote.ID)
	}
	return m.Send(quote.Email, subject, body, pdfData, name)
}
