package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/email"
	"teklif-api/internal/models"
	"teklif-api/internal/pdf"
	"teklif-api/internal/repository"
)

type QuoteHandler struct {
	quotes   *repository.QuoteRepository
	settings *repository.SettingsRepository
	mailer   *email.Mailer
	pdf      *pdf.Builder
}

func NewQuoteHandler(quotes *repository.QuoteRepository, settings *repository.SettingsRepository, mailer *email.Mailer, builder *pdf.Builder) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, settings: settings, mailer: mailer, pdf: builder}
}

// Create accepts a public quote request and notifies the admin inbox in the
// background. A notification failure never surfaces to the caller.
func (h *QuoteHandler) Create(c *gin.Context) {
	var create models.QuoteCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		badRequest(c, err)
		return
	}

	quote, err := h.quotes.Create(c.Request.Context(), &create)
	if err != nil {
		repoError(c, err, "")
		return
	}

	go h.notifyAdmin(quote)

	c.JSON(http.StatusCreated, quote)
}

func (h *QuoteHandler) notifyAdmin(quote *models.Quote) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	settings, err := h.settings.Get(ctx)
	if err != nil {
		settings = nil
	}
	if _, err := h.mailer.SendNewQuoteNotification(quote, settings); err != nil {
		slog.Error("admin quote notification failed", "quote_id", quote.ID, "error", err)
	}
}

func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.quotes.FindAll(c.Request.Context(), c.Query("status_filter"))
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (h *QuoteHandler) Get(c *gin.Context) {
	quote, err := h.quotes.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repoError(c, err, "Teklif bulunamadı")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Update partially merges status, admin note and pricing. Pricing lines are
// stored as supplied; totals are never recomputed server-side.
func (h *QuoteHandler) Update(c *gin.Context) {
	var update models.QuoteUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	quote, err := h.quotes.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		repoError(c, err, "Teklif bulunamadı")
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	if err := h.quotes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		repoError(c, err, "Teklif bulunamadı")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Teklif silindi"})
}

// PDF renders the current document snapshot on demand; nothing is cached or
// persisted.
func (h *QuoteHandler) PDF(c *gin.Context) {
	quote, err := h.quotes.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repoError(c, err, "Teklif bulunamadı")
		return
	}

	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		settings = nil
	}

	data, err := h.pdf.QuotePDF(quote, nil, settings)
	if err != nil {
		slog.Error("quote pdf generation failed", "quote_id", quote.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("PDF oluşturulamadı: %s", err)})
		return
	}

	filename := fmt.Sprintf("teklif_%s.pdf", models.QuoteRef(quote.ID))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// SendEmail mails the customer the status notification with the current PDF
// attached. An unconfigured SMTP setup is a successful response with
// email_sent=false, not a failure.
func (h *QuoteHandler) SendEmail(c *gin.Context) {
	quote, err := h.quotes.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repoError(c, err, "Teklif bulunamadı")
		return
	}

	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		settings = nil
	}

	pdfData, err := h.pdf.QuotePDF(quote, nil, settings)
	if err != nil {
		slog.Error("quote pdf generation failed", "quote_id", quote.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("PDF oluşturulamadı: %s", err)})
		return
	}

	sent, err := h.mailer.SendQuoteResponse(quote, pdfData, settings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("E-posta gönderilemedi: %s", err)})
		return
	}

	if !sent {
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"email_sent": false,
			"message":    "E-posta gönderilmedi - SMTP yapılandırılmamış",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "email_sent": true, "message": "E-posta gönderildi"})
}
