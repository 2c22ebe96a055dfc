package fields

import (
	"regexp"
	"strings"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Normalize collapses every run of whitespace (spaces, tabs, newlines) into
// a single space and trims leading/trailing whitespace. Case, punctuation
// and content are preserved. Idempotent; whitespace-only input yields "".
func Normalize(text string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
}
