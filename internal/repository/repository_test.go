package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"mehmet@example.com", "mehmet@example.com"},
		{"Mehmet@Example.com", "mehmet@example.com"},
		{"  AYSE@EXAMPLE.COM  ", "ayse@example.com"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeEmail(tc.in))
	}
}
