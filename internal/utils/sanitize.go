package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips every HTML tag from free text typed at the counter before
// it is stored by the backend. Entities are decoded back so "A & B" survives.
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// SanitizePtr is SanitizeText for optional update fields.
func SanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}

	clean := SanitizeText(*s)

	return &clean
}
