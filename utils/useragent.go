package utils

import (
	"fmt"
	"strings"

	ua "github.com/mileusna/useragent"
)

// ParseUserAgent extracts useful information from User-Agent string
func ParseUserAgent(userAgent string) (browser, os, device string) {
	if userAgent == "" {
		return "Unknown Browser", "Unknown OS", "Desktop"
	}

	parsedUA := ua.Parse(userAgent)

	browser = "Unknown Browser"
	if parsedUA.Name != "" {
		browser = parsedUA.Name
	}

	os = "Unknown OS"
	if parsedUA.OS != "" {
		os = parsedUA.OS
	}

	device = "Desktop"
	switch {
	case parsedUA.Bot:
		device = "Bot"
	case parsedUA.Mobile:
		device = "Mobile"
	case parsedUA.Tablet:
		device = "Tablet"
	}

	return strings.TrimSpace(browser), strings.TrimSpace(os), device
}

// DescribeClient formats a User-Agent as "Browser on OS (Device)" for logs.
func DescribeClient(userAgent string) string {
	browser, os, device := ParseUserAgent(userAgent)
	return fmt.Sprintf("%s on %s (%s)", browser, os, device)
}
