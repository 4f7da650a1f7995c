package email

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"teklif-api/internal/config"
	"teklif-api/internal/models"
)

func configuredMailer(capture *[]*gomail.Message) *Mailer {
	m := NewMailer(&config.Config{
		SMTPServer:   "smtp.example.com",
		SMTPPort:     587,
		SMTPUsername: "mailer@example.com",
		SMTPPassword: "secret",
		FromEmail:    "mailer@example.com",
		AdminEmail:   "admin@example.com",
	})
	m.send = func(msg *gomail.Message) error {
		*capture = append(*capture, msg)
		return nil
	}
	return m
}

func TestSendUnconfigured(t *testing.T) {
	m := NewMailer(&config.Config{})

	sent, err := m.Send("user@example.com", "konu", "<p>gövde</p>", nil, "")
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestSendWithAttachment(t *testing.T) {
	var captured []*gomail.Message
	m := configuredMailer(&captured)

	sent, err := m.Send("user@example.com", "konu", "<p>gövde</p>", []byte("%PDF-1.4"), "teklif_abc.pdf")
	require.NoError(t, err)
	assert.True(t, sent)
	require.Len(t, captured, 1)
	assert.Equal(t, []string{"user@example.com"}, captured[0].GetHeader("To"))
	assert.Equal(t, []string{"konu"}, captured[0].GetHeader("Subject"))
}

func TestSendError(t *testing.T) {
	var captured []*gomail.Message
	m := configuredMailer(&captured)
	m.send = func(msg *gomail.Message) error { return errors.New("dial tcp: refused") }

	sent, err := m.Send("user@example.com", "konu", "x", nil, "")
	assert.Error(t, err)
	assert.False(t, sent)
}

func TestSendNewQuoteNotification(t *testing.T) {
	var captured []*gomail.Message
	m := configuredMailer(&captured)

	quote := testQuote(models.StatusBeklemede)
	sent, err := m.SendNewQuoteNotification(quote, nil)
	require.NoError(t, err)
	assert.True(t, sent)
	require.Len(t, captured, 1)
	assert.Equal(t, []string{"admin@example.com"}, captured[0].GetHeader("To"))
}

func TestSendNewQuoteNotificationNoAdminEmail(t *testing.T) {
	var captured []*gomail.Message
	m := configuredMailer(&captured)
	m.adminEmail = ""

	sent, err := m.SendNewQuoteNotification(testQuote(models.StatusBeklemede), nil)
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, captured)
}

func TestSendQuoteResponse(t *testing.T) {
	var captured []*gomail.Message
	m := configuredMailer(&captured)

	quote := testQuote(models.StatusOnaylandi)
	sent, err := m.SendQuoteResponse(quote, []byte("%PDF-1.4 data"), nil)
	require.NoError(t, err)
	assert.True(t, sent)
	require.Len(t, captured, 1)
	assert.Equal(t, []string{"mehmet@example.com"}, captured[0].GetHeader("To"))
}
