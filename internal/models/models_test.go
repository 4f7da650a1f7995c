package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		name string
		qty  *int
		min  int
		want bool
	}{
		{"empty shelf below minimum", intPtr(0), 5, true},
		{"quantity below minimum", intPtr(3), 5, true},
		{"quantity at minimum", intPtr(5), 5, true},
		{"quantity above minimum", intPtr(10), 5, false},
		{"untracked quantity", nil, 5, false},
		{"no minimum configured", intPtr(0), 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{StockQuantity: tc.qty, MinimumStock: tc.min}
			assert.Equal(t, tc.want, p.IsLowStock())
		})
	}
}

func TestStockStatus(t *testing.T) {
	critical := Product{StockQuantity: intPtr(0), MinimumStock: 5}
	assert.Equal(t, "critical", critical.StockStatus())

	low := Product{StockQuantity: intPtr(3), MinimumStock: 5}
	assert.Equal(t, "low", low.StockStatus())

	healthy := Product{StockQuantity: intPtr(20), MinimumStock: 5}
	assert.Equal(t, "", healthy.StockStatus())
}

func TestQuoteStatusText(t *testing.T) {
	assert.Equal(t, "Beklemede", StatusBeklemede.Text())
	assert.Equal(t, "İnceleniyor", StatusInceleniyor.Text())
	assert.Equal(t, "Fiyat Verildi", StatusFiyatVerildi.Text())
	assert.Equal(t, "Onaylandı", StatusOnaylandi.Text())
	assert.Equal(t, "Reddedildi", StatusReddedildi.Text())
	assert.Equal(t, "Beklemede", QuoteStatus("bilinmeyen").Text())
}

func TestQuoteRef(t *testing.T) {
	assert.Equal(t, "abcdef12", QuoteRef("abcdef12-3456-7890"))
	assert.Equal(t, "kisa", QuoteRef("kisa"))
	assert.Equal(t, "", QuoteRef(""))
}

func TestCampaignLive(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	c := Campaign{
		IsActive:  true,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 1),
	}
	assert.True(t, c.Live(now))

	c.IsActive = false
	assert.False(t, c.Live(now))

	c.IsActive = true
	assert.False(t, c.Live(now.AddDate(0, 0, -5)), "before window")
	assert.False(t, c.Live(now.AddDate(0, 0, 5)), "after window")

	assert.True(t, c.Live(c.StartDate), "inclusive start")
	assert.True(t, c.Live(c.EndDate), "inclusive end")
}
