package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"teklif-api/internal/models"
)

func testQuote(status models.QuoteStatus) *models.Quote {
	return &models.Quote{
		ID:           "abcdef12-3456-7890-abcd-ef1234567890",
		CustomerName: "Mehmet Demir",
		Company:      "Demir Ltd.",
		Email:        "mehmet@example.com",
		Status:       status,
		Items: []models.QuoteItem{
			{ProductID: "p1", ProductName: "Alüminyum Levha", Quantity: 12},
		},
	}
}

func TestApplyPlaceholders(t *testing.T) {
	out := ApplyPlaceholders("Teklif {quote_id} - Sayın {customer_name}", "abcdef12", "Mehmet")
	assert.Equal(t, "Teklif abcdef12 - Sayın Mehmet", out)

	assert.Equal(t, "sabit metin", ApplyPlaceholders("sabit metin", "x", "y"))
}

func TestBuildAdminNotification(t *testing.T) {
	subject, body := BuildAdminNotification(testQuote(models.StatusBeklemede), nil)

	assert.Equal(t, "Yeni Teklif Talebi - Mehmet Demir", subject)
	assert.Contains(t, body, "Alüminyum Levha - 12 adet")
	assert.Contains(t, body, "mehmet@example.com")
	assert.Contains(t, body, defaultBrandColor)
}

func TestBuildAdminNotificationEscapesHTML(t *testing.T) {
	quote := testQuote(models.StatusBeklemede)
	quote.Message = "<script>alert(1)</script>"

	_, body := BuildAdminNotification(quote, nil)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestBuildStatusEmailSubjects(t *testing.T) {
	cases := []struct {
		status  models.QuoteStatus
		subject string
	}{
		{models.StatusOnaylandi, "Teklifiniz Onaylandı - abcdef12"},
		{models.StatusReddedildi, "Teklifiniz Hakkında - abcdef12"},
		{models.StatusFiyatVerildi, "Teklifiniz İnceleniyor - abcdef12"},
		{models.StatusBeklemede, "Teklifiniz İnceleniyor - abcdef12"},
	}
	for _, tc := range cases {
		subject, _ := BuildStatusEmail(testQuote(tc.status), nil)
		assert.Equal(t, tc.subject, subject, "status %s", tc.status)
	}
}

func TestBuildStatusEmailSettingsOverrides(t *testing.T) {
	settings := &models.CompanySettings{
		CompanyName:          "Örnek Metal",
		EmailHeaderColor:     "#112233",
		QuoteEmailSubject:    "Teklifiniz hazır: {quote_id}",
		QuoteEmailGreeting:   "Merhaba {customer_name}",
		QuoteApprovedMessage: "Siparişiniz onaylandı, teşekkürler.",
	}

	subject, body := BuildStatusEmail(testQuote(models.StatusOnaylandi), settings)
	assert.Equal(t, "Teklifiniz hazır: abcdef12", subject)
	assert.Contains(t, body, "Merhaba Mehmet Demir")
	assert.Contains(t, body, "Siparişiniz onaylandı, teşekkürler.")
	assert.Contains(t, body, "#112233")
	assert.Contains(t, body, "Örnek Metal")
}

func TestBuildStatusEmailAdminNote(t *testing.T) {
	quote := testQuote(models.StatusFiyatVerildi)
	quote.AdminNote = "Kargo bedeli dahildir"

	_, body := BuildStatusEmail(quote, nil)
	assert.Contains(t, body, "Kargo bedeli dahildir")
}

func TestWrapBrandedFooter(t *testing.T) {
	settings := &models.CompanySettings{EmailFooterText: "Bu e-posta otomatik gönderilmiştir."}

	out := wrapBranded("<p>içerik</p>", settings)
	assert.True(t, strings.HasPrefix(out, "<html>"))
	assert.Contains(t, out, "Bu e-posta otomatik gönderilmiştir.")
}

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, "teklif_abcdef12.pdf", AttachmentName("abcdef12-3456-7890-abcd-ef1234567890"))
	assert.Equal(t, "teklif_short.pdf", AttachmentName("short"))
}
