package fields

import (
	"regexp"
	"strings"
)

// firstMatch returns the first submatch of re in text, trimmed, or nil when
// the pattern misses. Only the first occurrence in the document counts.
func firstMatch(re *regexp.Regexp, text string) *string {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	v := strings.TrimSpace(match[1])
	return &v
}

// firstNonBlankLine returns the first line with non-whitespace content, or
// nil when the text has none.
func firstNonBlankLine(text string) *string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return &trimmed
		}
	}
	return nil
}
