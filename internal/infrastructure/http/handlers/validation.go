package handlers

import (
	"strings"
)

// SanitizeEmail trims surrounding whitespace. Matching is case-sensitive,
// so the address is stored and compared exactly as given.
func SanitizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// SanitizeName trims surrounding whitespace from a display name.
func SanitizeName(name string) string {
	return strings.TrimSpace(name)
}

// SanitizeTitle trims surrounding whitespace from a task title.
func SanitizeTitle(title string) string {
	return strings.TrimSpace(title)
}
