package visitor

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent(t *testing.T) {
	cases := []struct {
		name    string
		ua      string
		browser string
		os      string
		device  string
	}{
		{
			name:    "chrome on windows",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			browser: "Chrome", os: "Windows", device: "Desktop",
		},
		{
			name:    "edge wins over chrome",
			ua:      "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 Chrome/120.0 Safari/537.36 Edg/120.0",
			browser: "Edge", os: "Windows", device: "Desktop",
		},
		{
			name:    "firefox on linux",
			ua:      "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			browser: "Firefox", os: "Linux", device: "Desktop",
		},
		{
			name:    "safari on iphone",
			ua:      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1",
			browser: "Safari", os: "MacOS", device: "Mobile",
		},
		{
			name:    "chrome on android",
			ua:      "Mozilla/5.0 (Linux; Android 14) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36",
			browser: "Chrome", os: "Linux", device: "Mobile",
		},
		{
			name:    "empty agent",
			ua:      "",
			browser: "Unknown", os: "Unknown", device: "Desktop",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := ParseUserAgent(tc.ua)
			assert.Equal(t, tc.browser, info.Browser)
			assert.Equal(t, tc.os, info.OS)
			assert.Equal(t, tc.device, info.Device)
		})
	}
}

func TestParseUserAgentTruncation(t *testing.T) {
	long := strings.Repeat("x", 500)
	info := ParseUserAgent(long)
	assert.Len(t, info.UserAgent, maxUserAgentLen)
}

func TestParseUserAgentTruncationRuneBoundary(t *testing.T) {
	long := strings.Repeat("ü", 300)
	info := ParseUserAgent(long)

	assert.True(t, utf8.ValidString(info.UserAgent))
	assert.Equal(t, maxUserAgentLen, utf8.RuneCountInString(info.UserAgent))
}
