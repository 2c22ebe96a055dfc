package fields

import "regexp"

var (
	reComplianceDate = regexp.MustCompile(`(?i)Effective\s*Date\s*[:\-]?\s*([0-9A-Za-z,./-]+)`)
	reVersion        = regexp.MustCompile(`(?i)Version\s*[:\-]?\s*([0-9.]+)`)
	reRegulation     = regexp.MustCompile(`(?i)(?:Regulation|Standard)\s*[:\-]?\s*(.+)`)
	reAuthority      = regexp.MustCompile(`(?i)(?:Issued by|Authority)\s*[:\-]?\s*(.+)`)
)

// ExtractCompliance pulls document_name, effective_date, version,
// regulatory_reference and issuing_authority out of raw text. The document
// name is the first non-blank line.
func ExtractCompliance(text string) *FieldMap {
	m := NewFieldMap()
	m.Set("document_name", firstNonBlankLine(text))
	m.Set("effective_date", firstMatch(reComplianceDate, text))
	m.Set("version", firstMatch(reVersion, text))
	m.Set("regulatory_reference", firstMatch(reRegulation, text))
	m.Set("issuing_authority", firstMatch(reAuthority, text))
	return m
}
