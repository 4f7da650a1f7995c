// Package pdf renders the printable quote document. The layout is a pure
// function of the quote, its pricing lines and the company settings:
// identical inputs produce an identical document structure.
package pdf

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-pdf/fpdf"

	"teklif-api/internal/models"
)

const (
	pageLeftMargin  = 18.0
	pageTopMargin   = 20.0
	contentWidth    = 174.0 // A4 width minus both margins
	dejaVuSansPath  = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	dejaVuBoldPath  = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
	defaultCurrency = "TL"
)

var defaultTerms = []string{
	"Bu teklif, düzenlenme tarihinden itibaren 30 gün geçerlidir.",
	"Stok ve piyasa koşullarına bağlı olarak fiyatlarda değişiklik yapılabilir.",
	"Teslimat ve ödeme koşulları, sipariş onayı sırasında netleştirilecektir.",
}

// Builder renders quote documents. It is safe for concurrent use; each call
// builds its own document.
type Builder struct {
	fontPath     string
	fontBoldPath string
	unicode      bool
}

// NewBuilder probes for the DejaVu system fonts so Turkish glyphs render
// natively. Without them the builder falls back to the Helvetica core font
// and transliterates.
func NewBuilder() *Builder {
	b := &Builder{fontPath: dejaVuSansPath, fontBoldPath: dejaVuBoldPath}
	if fileExists(b.fontPath) && fileExists(b.fontBoldPath) {
		b.unicode = true
	} else {
		slog.Warn("DejaVu fonts not found, falling back to Helvetica with transliteration")
	}
	return b
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

type rgb struct{ r, g, b int }

func hexRGB(hex string) rgb {
	var c rgb
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &c.r, &c.g, &c.b)
	}
	return c
}

// statusColors is the fixed five-way badge mapping: background, foreground.
func statusColors(status models.QuoteStatus) (rgb, rgb) {
	switch status {
	case models.StatusOnaylandi:
		return hexRGB("#DCFCE7"), hexRGB("#15803D")
	case models.StatusFiyatVerildi:
		return hexRGB("#DBEAFE"), hexRGB("#1D4ED8")
	case models.StatusInceleniyor:
		return hexRGB("#FEF9C3"), hexRGB("#CA8A04")
	case models.StatusReddedildi:
		return hexRGB("#FEE2E2"), hexRGB("#B91C1C")
	default:
		return hexRGB("#E5E7EB"), hexRGB("#374151")
	}
}

// PricingFor finds the pricing line matching an item's product id.
func PricingFor(pricing []models.QuotePricing, productID string) *models.QuotePricing {
	for i := range pricing {
		if pricing[i].ProductID == productID {
			return &pricing[i]
		}
	}
	return nil
}

// ComputeTotal sums unit price times quantity over the items that have a
// matching pricing line, returning the total and the number of priced lines.
// Nothing beyond this display echo is computed.
func ComputeTotal(items []models.QuoteItem, pricing []models.QuotePricing) (float64, int) {
	var total float64
	priced := 0
	for _, item := range items {
		if p := PricingFor(pricing, item.ProductID); p != nil {
			total += p.UnitPrice * float64(item.Quantity)
			priced++
		}
	}
	return total, priced
}

// QuotePDF renders the complete document and returns its bytes. Pricing
// overrides, when given, replace the quote's stored pricing list.
func (b *Builder) QuotePDF(quote *models.Quote, pricing []models.QuotePricing, settings *models.CompanySettings) ([]byte, error) {
	if pricing == nil {
		pricing = quote.Pricing
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageLeftMargin, pageTopMargin, pageLeftMargin)
	doc.SetAutoPageBreak(true, pageTopMargin)

	family := "Helvetica"
	if b.unicode {
		family = "DejaVu"
		doc.AddUTF8Font(family, "", b.fontPath)
		doc.AddUTF8Font(family, "B", b.fontBoldPath)
	}
	doc.AddPage()

	r := &renderer{doc: doc, family: family, unicode: b.unicode}

	r.title()
	r.quoteMeta(quote)
	r.customerBlock(quote)
	r.itemsTable(quote, pricing)
	r.noteSection("MÜŞTERİ MESAJI", quote.Message)
	r.noteSection("YÖNETİCİ NOTU", quote.AdminNote)
	r.terms(settings)
	r.signatures(settings)
	r.footer(settings)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	return buf.Bytes(), nil
}

type renderer struct {
	doc     *fpdf.Fpdf
	family  string
	unicode bool
}

func (r *renderer) text(s string) string {
	if r.unicode {
		return s
	}
	return Transliterate(s)
}

func (r *renderer) font(style string, size float64) {
	r.doc.SetFont(r.family, style, size)
}

func (r *renderer) color(c rgb) {
	r.doc.SetTextColor(c.r, c.g, c.b)
}

func (r *renderer) fill(c rgb) {
	r.doc.SetFillColor(c.r, c.g, c.b)
}

func (r *renderer) title() {
	r.font("B", 24)
	r.color(hexRGB("#0EA5E9"))
	r.doc.CellFormat(contentWidth, 12, r.text("TEKLİF FORMU"), "", 1, "C", false, 0, "")
	r.doc.Ln(6)
}

func (r *renderer) heading(label string) {
	r.doc.Ln(4)
	r.font("B", 13)
	r.color(hexRGB("#253D4E"))
	r.doc.CellFormat(contentWidth, 7, r.text(label), "", 1, "L", false, 0, "")
	r.doc.Ln(1)
}

func (r *renderer) labelValueRow(label, value string) {
	r.font("B", 9.5)
	r.color(hexRGB("#6B7280"))
	r.doc.CellFormat(35, 6, r.text(label), "", 0, "L", false, 0, "")
	r.font("", 9.5)
	r.color(hexRGB("#1E293B"))
	r.doc.CellFormat(120, 6, r.text(value), "", 1, "L", false, 0, "")
}

func (r *renderer) quoteMeta(quote *models.Quote) {
	r.labelValueRow("Teklif No:", upperTurkish(models.QuoteRef(quote.ID)))
	r.labelValueRow("Tarih:", quote.CreatedAt.Format("02.01.2006"))

	// Status rendered as a colored badge cell.
	bg, fg := statusColors(quote.Status)
	r.font("B", 9.5)
	r.color(hexRGB("#6B7280"))
	r.doc.CellFormat(35, 6, r.text("Durum:"), "", 0, "L", false, 0, "")
	r.fill(bg)
	r.color(fg)
	r.doc.SetDrawColor(bg.r, bg.g, bg.b)
	r.doc.CellFormat(40, 6, r.text(quote.Status.Text()), "1", 1, "C", true, 0, "")
	r.doc.Ln(3)
}

func (r *renderer) customerBlock(quote *models.Quote) {
	r.heading("MÜŞTERİ BİLGİLERİ")
	r.labelValueRow("Ad Soyad:", quote.CustomerName)
	r.labelValueRow("Firma:", dashWhenEmpty(quote.Company))
	r.labelValueRow("E-posta:", quote.Email)
	r.labelValueRow("Telefon:", dashWhenEmpty(quote.Phone))
}

func (r *renderer) itemsTable(quote *models.Quote, pricing []models.QuotePricing) {
	r.heading("TALEP EDİLEN ÜRÜNLER")

	colWidths := [4]float64{79, 25, 35, 35}

	// Header row
	r.fill(hexRGB("#3BB77E"))
	r.doc.SetTextColor(245, 245, 245)
	r.doc.SetDrawColor(229, 231, 235)
	r.doc.SetLineWidth(0.2)
	r.font("B", 10.5)
	headers := [4]string{"Ürün Adı", "Miktar", "Birim Fiyat", "Toplam"}
	for i, h := range headers {
		r.doc.CellFormat(colWidths[i], 8, r.text(h), "1", 0, "L", true, 0, "")
	}
	r.doc.Ln(-1)

	total, priced := ComputeTotal(quote.Items, pricing)

	r.font("", 9.5)
	for i, item := range quote.Items {
		unitPrice := "-"
		lineTotal := "-"
		if p := PricingFor(pricing, item.ProductID); p != nil {
			unitPrice = formatMoney(p.UnitPrice)
			lineTotal = formatMoney(p.UnitPrice * float64(item.Quantity))
		}

		rowFill := i%2 == 1
		if rowFill {
			r.fill(hexRGB("#F9FAFB"))
		} else {
			r.fill(hexRGB("#FFFFFF"))
		}
		r.color(hexRGB("#1E293B"))
		r.doc.CellFormat(colWidths[0], 7, r.text(item.ProductName), "1", 0, "L", true, 0, "")
		r.doc.CellFormat(colWidths[1], 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", true, 0, "")
		r.doc.CellFormat(colWidths[2], 7, unitPrice, "1", 0, "R", true, 0, "")
		r.doc.CellFormat(colWidths[3], 7, lineTotal, "1", 1, "R", true, 0, "")
	}

	// Total row appears only when at least one line is priced.
	if priced > 0 && total > 0 {
		r.fill(hexRGB("#FEF3C7"))
		r.color(hexRGB("#1E293B"))
		r.font("B", 11)
		r.doc.CellFormat(colWidths[0], 8, "", "1", 0, "L", true, 0, "")
		r.doc.CellFormat(colWidths[1], 8, "", "1", 0, "L", true, 0, "")
		r.doc.CellFormat(colWidths[2], 8, "TOPLAM:", "1", 0, "R", true, 0, "")
		r.doc.CellFormat(colWidths[3], 8, formatMoney(total), "1", 1, "R", true, 0, "")
	}
}

func (r *renderer) noteSection(label, body string) {
	if body == "" {
		return
	}
	r.heading(label)
	r.font("", 10)
	r.color(hexRGB("#1E293B"))
	r.doc.MultiCell(contentWidth, 5.5, r.text(body), "", "L", false)
}

func (r *renderer) terms(settings *models.CompanySettings) {
	r.doc.Ln(4)
	r.heading("ŞARTLAR VE KOŞULLAR")

	terms := defaultTerms
	if settings != nil && len(settings.Terms) > 0 {
		terms = settings.Terms
	}

	r.font("", 8.5)
	r.color(hexRGB("#64748B"))
	for i, term := range terms {
		r.doc.MultiCell(contentWidth, 4.5, r.text(fmt.Sprintf("%d. %s", i+1, term)), "", "L", false)
	}
	r.doc.Ln(8)
}

func (r *renderer) signatures(settings *models.CompanySettings) {
	r.font("B", 8.5)
	r.color(hexRGB("#9CA3AF"))
	r.doc.CellFormat(contentWidth, 5, r.text(upperTurkish("Onay & İmza")), "", 1, "L", false, 0, "")
	r.doc.Ln(2)

	companyName := "Teklifi Hazırlayan"
	if settings != nil && settings.CompanyName != "" {
		companyName = settings.CompanyName
	}

	half := contentWidth / 2

	r.font("B", 9)
	r.color(hexRGB("#111827"))
	r.doc.CellFormat(half, 5, r.text(companyName), "", 0, "C", false, 0, "")
	r.doc.CellFormat(half, 5, r.text("Müşteri Onayı"), "", 1, "C", false, 0, "")

	r.font("", 8)
	r.color(hexRGB("#6B7280"))
	hint := r.text("İsim / Kaşe / İmza")
	r.doc.CellFormat(half, 4, hint, "", 0, "C", false, 0, "")
	r.doc.CellFormat(half, 4, hint, "", 1, "C", false, 0, "")

	line := "_______________________________"
	r.doc.CellFormat(half, 6, line, "", 0, "C", false, 0, "")
	r.doc.CellFormat(half, 6, line, "", 1, "C", false, 0, "")
	r.doc.Ln(6)
}

func (r *renderer) footer(settings *models.CompanySettings) {
	r.font("", 8)
	r.color(hexRGB("#9CA3AF"))
	r.doc.CellFormat(contentWidth, 4,
		r.text("Bu doküman, bilgi amaçlı hazırlanmış olup elektronik ortamda oluşturulmuştur."),
		"", 1, "C", false, 0, "")

	if settings == nil {
		return
	}
	var bits []string
	if settings.Phone != "" {
		bits = append(bits, "Tel: "+settings.Phone)
	}
	if settings.Email != "" {
		bits = append(bits, "E-posta: "+settings.Email)
	}
	if settings.Website != "" {
		bits = append(bits, settings.Website)
	}
	if len(bits) > 0 {
		r.doc.CellFormat(contentWidth, 4, r.text(joinPipe(bits)), "", 1, "C", false, 0, "")
	}
}

func joinPipe(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " | "
		}
		out += p
	}
	return out
}

func dashWhenEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f %s", v, defaultCurrency)
}
