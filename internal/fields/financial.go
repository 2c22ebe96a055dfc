package fields

import "regexp"

var (
	reTotalAssets      = regexp.MustCompile(`(?i)Total\s*Assets\s*[:\-]?\s*\$?\s*([\d,.]+)`)
	reTotalLiabilities = regexp.MustCompile(`(?i)Total\s*Liabilities\s*[:\-]?\s*\$?\s*([\d,.]+)`)
)

// ExtractFinancial pulls total_assets and total_liabilities out of
// whitespace-normalized text.
func ExtractFinancial(text string) *FieldMap {
	text = Normalize(text)

	m := NewFieldMap()
	m.Set("total_assets", firstMatch(reTotalAssets, text))
	m.Set("total_liabilities", firstMatch(reTotalLiabilities, text))
	return m
}
