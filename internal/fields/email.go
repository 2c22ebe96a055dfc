package fields

import "regexp"

// Line-anchored header capture on raw text: collapsing whitespace would
// merge the headers into one line and over-capture.
var (
	reEmailFrom    = regexp.MustCompile(`(?im)^From:\s*(.+)$`)
	reEmailTo      = regexp.MustCompile(`(?im)^To:\s*(.+)$`)
	reEmailSubject = regexp.MustCompile(`(?im)^Subject:\s*(.+)$`)
)

// ExtractEmail pulls from, to and subject header lines out of raw text.
func ExtractEmail(text string) *FieldMap {
	m := NewFieldMap()
	m.Set("from", firstMatch(reEmailFrom, text))
	m.Set("to", firstMatch(reEmailTo, text))
	m.Set("subject", firstMatch(reEmailSubject, text))
	return m
}
