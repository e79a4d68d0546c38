package handler

import "strings"

const maskedValue = "***"

// MaskToken hides a credential for display, keeping only a short prefix so
// operators can tell tokens apart. Empty tokens stay empty.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return maskedValue
	}
	return token[:4] + strings.Repeat("*", 3)
}
