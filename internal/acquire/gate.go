package acquire

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinTextLength is the stripped-length threshold below which a
// native text layer is considered too sparse to classify.
const DefaultMinTextLength = 100

// NeedsOCR reports whether extracted text is empty, whitespace-only, or too
// short to be informative. Length is measured in runes so multibyte text
// gates the same as ASCII. A cheap sparseness check only; it does not
// inspect content quality.
func NeedsOCR(text string, minLength int) bool {
	if minLength <= 0 {
		minLength = DefaultMinTextLength
	}
	return utf8.RuneCountInString(strings.TrimSpace(text)) < minLength
}
