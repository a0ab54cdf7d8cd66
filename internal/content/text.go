package content

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText collapses runs of whitespace to single spaces, trims the result
// and normalizes it to NFC.
func CleanText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return norm.NFC.String(s)
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
