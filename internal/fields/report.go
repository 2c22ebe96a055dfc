package fields

import "regexp"

var (
	// summary runs from the heading to the next capitalized heading-like
	// line, or end of text; the boundary is heuristic and kept as-is
	reExecSummary = regexp.MustCompile(`(?is)Executive\s+Summary(.*?)(\n[A-Z][^\n]{3,}|$)`)
	reReportDate  = regexp.MustCompile(`(?i)(?:Date|Published)\s*[:\-]?\s*([0-9A-Za-z,./-]+)`)
	reAuthor      = regexp.MustCompile(`(?i)(?:Author|Prepared by)\s*[:\-]?\s*(.+)`)
)

// ExtractReport pulls title, executive_summary, date and author out of raw
// text. The title is the first non-blank line.
func ExtractReport(text string) *FieldMap {
	m := NewFieldMap()
	m.Set("title", firstNonBlankLine(text))
	m.Set("executive_summary", firstMatch(reExecSummary, text))
	m.Set("date", firstMatch(reReportDate, text))
	m.Set("author", firstMatch(reAuthor, text))
	return m
}
