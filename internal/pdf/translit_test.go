package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"TEKLİF FORMU", "TEKLIF FORMU"},
		{"Müşteri Bilgileri", "Musteri Bilgileri"},
		{"çğıöşü ÇĞİÖŞÜ", "cgiosu CGIOSU"},
		{"plain ascii", "plain ascii"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Transliterate(tc.in))
	}
}

func TestUpperTurkish(t *testing.T) {
	assert.Equal(t, "TEKLİF", upperTurkish("teklif"))
	assert.Equal(t, "IŞIK", upperTurkish("ışık"))
	assert.Equal(t, "ABC123", upperTurkish("abc123"))
}
