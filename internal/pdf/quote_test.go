package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teklif-api/internal/models"
)

func sampleQuote() *models.Quote {
	return &models.Quote{
		ID:           "3f2b9a7c-1d4e-4f6a-8b2c-9e0d1a2b3c4d",
		CustomerName: "Ayşe Yılmaz",
		Company:      "Yılmaz İnşaat",
		Email:        "ayse@example.com",
		Phone:        "+90 532 111 2233",
		Message:      "Acil teslimat gerekiyor",
		Status:       models.StatusFiyatVerildi,
		CreatedAt:    time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		Items: []models.QuoteItem{
			{ProductID: "p1", ProductName: "Çelik Profil", Quantity: 10},
			{ProductID: "p2", ProductName: "Galvaniz Sac", Quantity: 4},
		},
		Pricing: []models.QuotePricing{
			{ProductID: "p1", UnitPrice: 120.50},
		},
	}
}

func TestPricingFor(t *testing.T) {
	pricing := []models.QuotePricing{
		{ProductID: "p1", UnitPrice: 10},
		{ProductID: "p2", UnitPrice: 20},
	}

	p := PricingFor(pricing, "p2")
	require.NotNil(t, p)
	assert.Equal(t, 20.0, p.UnitPrice)

	assert.Nil(t, PricingFor(pricing, "p9"))
	assert.Nil(t, PricingFor(nil, "p1"))
}

func TestComputeTotal(t *testing.T) {
	items := []models.QuoteItem{
		{ProductID: "p1", Quantity: 10},
		{ProductID: "p2", Quantity: 4},
		{ProductID: "p3", Quantity: 2},
	}
	pricing := []models.QuotePricing{
		{ProductID: "p1", UnitPrice: 120.50},
		{ProductID: "p2", UnitPrice: 80},
	}

	total, priced := ComputeTotal(items, pricing)
	assert.InDelta(t, 120.50*10+80*4, total, 0.001)
	assert.Equal(t, 2, priced)
}

func TestComputeTotalNoPricing(t *testing.T) {
	items := []models.QuoteItem{{ProductID: "p1", Quantity: 3}}

	total, priced := ComputeTotal(items, nil)
	assert.Zero(t, total)
	assert.Zero(t, priced)
}

func TestQuotePDFOutput(t *testing.T) {
	b := NewBuilder()

	data, err := b.QuotePDF(sampleQuote(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestQuotePDFWithSettings(t *testing.T) {
	b := NewBuilder()
	settings := &models.CompanySettings{
		CompanyName: "Örnek Metal A.Ş.",
		Phone:       "+90 212 000 0000",
		Email:       "info@example.com",
		Website:     "www.example.com",
		Terms:       []string{"Fiyatlara KDV dahil değildir."},
	}

	data, err := b.QuotePDF(sampleQuote(), nil, settings)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestQuotePDFPricingOverride(t *testing.T) {
	b := NewBuilder()
	quote := sampleQuote()
	override := []models.QuotePricing{
		{ProductID: "p1", UnitPrice: 99},
		{ProductID: "p2", UnitPrice: 45},
	}

	data, err := b.QuotePDF(quote, override, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// stored pricing on the quote must stay untouched
	assert.Len(t, quote.Pricing, 1)
}

func TestStatusColorsDistinct(t *testing.T) {
	statuses := []models.QuoteStatus{
		models.StatusBeklemede,
		models.StatusInceleniyor,
		models.StatusFiyatVerildi,
		models.StatusOnaylandi,
		models.StatusReddedildi,
	}
	seen := map[rgb]bool{}
	for _, s := range statuses {
		bg, _ := statusColors(s)
		assert.False(t, seen[bg], "duplicate badge background for %s", s)
		seen[bg] = true
	}
}

func TestHexRGB(t *testing.T) {
	c := hexRGB("#3BB77E")
	assert.Equal(t, rgb{0x3B, 0xB7, 0x7E}, c)

	assert.Equal(t, rgb{}, hexRGB("3BB77E"))
	assert.Equal(t, rgb{}, hexRGB(""))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1205.00 TL", formatMoney(1205))
	assert.Equal(t, "99.90 TL", formatMoney(99.9))
}
