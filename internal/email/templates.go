package email

import (
	"fmt"
	"html"
	"strings"

	"teklif-api/internal/models"
)

const defaultBrandColor = "#3BB77E"

// ApplyPlaceholders substitutes the {quote_id} and {customer_name} template
// placeholders used by the configurable subject and greeting strings.
func ApplyPlaceholders(template, quoteID, customerName string) string {
	out := strings.ReplaceAll(template, "{quote_id}", quoteID)
	return strings.ReplaceAll(out, "{customer_name}", customerName)
}

func brandColor(settings *models.CompanySettings) string {
	if settings != nil && settings.EmailHeaderColor != "" {
		return settings.EmailHeaderColor
	}
	return defaultBrandColor
}

// wrapBranded surrounds the body with the configurable header and footer:
// logo, company name, colors.
func wrapBranded(body string, settings *models.CompanySettings) string {
	color := brandColor(settings)

	header := ""
	footer := ""
	if settings != nil {
		logo := settings.EmailLogoURL
		if logo == "" {
			logo = settings.LogoURL
		}
		if logo != "" {
			header += fmt.Sprintf(`<img src="%s" alt="" style="max-height: 48px; margin-bottom: 8px;">`, html.EscapeString(logo))
		}
		if settings.CompanyName != "" {
			header += fmt.Sprintf(`<p style="color: %s; font-weight: bold; margin: 0;">%s</p>`, color, html.EscapeString(settings.CompanyName))
		}
		if settings.EmailFooterText != "" {
			footer = fmt.Sprintf(`<hr><p style="color: #9CA3AF; font-size: 12px;">%s</p>`, html.EscapeString(settings.EmailFooterText))
		}
	}

	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif;">
%s
%s
%s
</body>
</html>`, header, body, footer)
}

// BuildAdminNotification composes the new-quote alert for the admin inbox.
func BuildAdminNotification(quote *models.Quote, settings *models.CompanySettings) (subject, htmlBody string) {
	subject = fmt.Sprintf("Yeni Teklif Talebi - %s", quote.CustomerName)

	var items strings.Builder
	items.WriteString("<ul>")
	for _, item := range quote.Items {
		items.WriteString(fmt.Sprintf("<li>%s - %d adet</li>", html.EscapeString(item.ProductName), item.Quantity))
	}
	items.WriteString("</ul>")

	message := ""
	if quote.Message != "" {
		message = fmt.Sprintf("<p><strong>Mesaj:</strong> %s</p>", html.EscapeString(quote.Message))
	}

	body := fmt.Sprintf(`<h2 style="color: %s;">Yeni Teklif Talebi</h2>
<p><strong>Müşteri:</strong> %s</p>
<p><strong>Firma:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Telefon:</strong> %s</p>
<hr>
<h3>Talep Edilen Ürünler:</h3>
%s
%s
<hr>
<p>Admin panelinden teklife fiyat verebilir ve müşteriye gönderebilirsiniz.</p>`,
		brandColor(settings),
		html.EscapeString(quote.CustomerName),
		html.EscapeString(dashWhenEmpty(quote.Company)),
		html.EscapeString(quote.Email),
		html.EscapeString(dashWhenEmpty(quote.Phone)),
		items.String(),
		message,
	)

	return subject, wrapBranded(body, settings)
}

// BuildStatusEmail composes the customer-facing status notification with a
// status-dependent headline.
func BuildStatusEmail(quote *models.Quote, settings *models.CompanySettings) (subject, htmlBody string) {
	ref := models.QuoteRef(quote.ID)

	var approvedMsg, rejectedMsg, reviewingMsg string
	if settings != nil {
		approvedMsg = settings.QuoteApprovedMessage
		rejectedMsg = settings.QuoteRejectedMessage
		reviewingMsg = settings.QuoteReviewingMessage
	}

	var statusMessage string
	switch quote.Status {
	case models.StatusOnaylandi:
		subject = fmt.Sprintf("Teklifiniz Onaylandı - %s", ref)
		statusMessage = statusLine(approvedMsg,
			`<p style="color: #3BB77E; font-weight: bold;">Teklifiniz onaylanmıştır.</p>`)
	case models.StatusReddedildi:
		subject = fmt.Sprintf("Teklifiniz Hakkında - %s", ref)
		statusMessage = statusLine(rejectedMsg,
			`<p style="color: #FF6B6B;">Maalesef teklifiniz bu aşamada değerlendirilememiştir.</p>`)
	default:
		subject = fmt.Sprintf("Teklifiniz İnceleniyor - %s", ref)
		statusMessage = statusLine(reviewingMsg,
			`<p>Teklifiniz incelenmektedir. En kısa sürede size dönüş yapacağız.</p>`)
	}

	if settings != nil && settings.QuoteEmailSubject != "" {
		subject = ApplyPlaceholders(settings.QuoteEmailSubject, ref, quote.CustomerName)
	}

	greeting := fmt.Sprintf("Sayın %s,", html.EscapeString(quote.CustomerName))
	if settings != nil && settings.QuoteEmailGreeting != "" {
		greeting = ApplyPlaceholders(settings.QuoteEmailGreeting, ref, quote.CustomerName)
	}

	adminNote := ""
	if quote.AdminNote != "" {
		adminNote = fmt.Sprintf("<p><strong>Not:</strong> %s</p>", html.EscapeString(quote.AdminNote))
	}

	body := fmt.Sprintf(`<h2 style="color: %s;">Teklif Talebiniz Hakkında</h2>
<p>%s</p>
%s
%s
<hr>
<p>Detaylı bilgi için ekteki PDF'i inceleyebilirsiniz.</p>
<p>Sorularınız için bizimle iletişime geçebilirsiniz.</p>
<br>
<p>İyi günler dileriz.</p>`,
		brandColor(settings), greeting, statusMessage, adminNote)

	return subject, wrapBranded(body, settings)
}

// AttachmentName is the filename of the PDF attached to a status email.
func AttachmentName(quoteID string) string {
	return fmt.Sprintf("teklif_%s.pdf", models.QuoteRef(quoteID))
}

func statusLine(configured, fallback string) string {
	if configured != "" {
		return fmt.Sprintf("<p>%s</p>", html.EscapeString(configured))
	}
	return fallback
}

func dashWhenEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
