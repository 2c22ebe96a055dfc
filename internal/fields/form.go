package fields

import (
	"regexp"
	"strings"
)

// any "Label: value" line becomes a field; label must be alphabetic words
var reFormLine = regexp.MustCompile(`(?m)^([A-Za-z ]+):\s*(.+)$`)

// ExtractForm sweeps the raw text line by line and turns every "Key: Value"
// line into a map entry. Labels are lowercased with spaces replaced by
// underscores. Duplicate keys overwrite earlier values; the sweep is
// deliberately unbounded, unlike the fixed-schema extractors.
func ExtractForm(text string) *FieldMap {
	m := NewFieldMap()
	for _, match := range reFormLine.FindAllStringSubmatch(text, -1) {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(match[1])), " ", "_")
		value := strings.TrimSpace(match[2])
		m.Set(key, &value)
	}
	return m
}
