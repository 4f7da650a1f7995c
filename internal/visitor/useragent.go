// Package visitor enriches visitor log entries with coarse geolocation and
// user-agent classification. Everything here is best-effort analytics.
package visitor

import "strings"

const maxUserAgentLen = 200

type ClientInfo struct {
	Browser   string
	OS        string
	Device    string
	UserAgent string
}

// ParseUserAgent classifies browser family, operating system and device class
// by ordered substring matching. The rules are deliberately coarse; an
// unknown agent is still a valid log entry.
func ParseUserAgent(userAgent string) ClientInfo {
	ua := strings.ToLower(userAgent)

	browser := "Unknown"
	switch {
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome") && strings.Contains(ua, "safari"):
		browser = "Chrome"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome"):
		browser = "Safari"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr"):
		browser = "Opera"
	}

	os := "Unknown"
	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "mac"):
		os = "MacOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		os = "iOS"
	}

	device := "Desktop"
	switch {
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		device = "Mobile"
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		device = "Tablet"
	}

	truncated := userAgent
	if runes := []rune(truncated); len(runes) > maxUserAgentLen {
		truncated = string(runes[:maxUserAgentLen])
	}

	return ClientInfo{Browser: browser, OS: os, Device: device, UserAgent: truncated}
}
