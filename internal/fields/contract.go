package fields

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reEffectiveDate = regexp.MustCompile(`(?i)Effective\s*Date\s*[:\-]?\s*([0-9A-Za-z,.\s/-]+)`)
	// parties clause bounded by sentence punctuation, a line break or a
	// double space; an unterminated clause does not capture
	reParties = regexp.MustCompile(`(?i)between\s+(.+?)\s+and\s+(.+?)(?:\n|\.|\s{2,})`)
)

// ExtractContract pulls effective_date and the contracting parties out of
// whitespace-normalized text. Parties are combined into a single "X & Y"
// string.
func ExtractContract(text string) *FieldMap {
	text = Normalize(text)

	m := NewFieldMap()
	m.Set("effective_date", firstMatch(reEffectiveDate, text))

	if match := reParties.FindStringSubmatch(text); match != nil {
		parties := fmt.Sprintf("%s & %s", strings.TrimSpace(match[1]), strings.TrimSpace(match[2]))
		m.Set("parties", &parties)
	} else {
		m.Set("parties", nil)
	}
	return m
}
