package fields

import "regexp"

var (
	reInvoiceNumber = regexp.MustCompile(`(?i)Invoice\s*(?:No|#)?\s*[:\-]?\s*([A-Z0-9-]+)`)
	reInvoiceDate   = regexp.MustCompile(`(?i)(?:Invoice\s*Date|Date)\s*[:\-]?\s*([0-9A-Za-z,./-]+)`)
	// longer label alternatives first: leftmost-first matching would
	// otherwise stop at the bare "Total" and miss the amount after "Due"
	reInvoiceTotal = regexp.MustCompile(`(?i)(?:Total\s*Due|Amount\s*Due|Total)\s*[:\-]?\s*\$?\s*(\d+(?:,\d{3})*\.\d{2})`)
)

// ExtractInvoice pulls invoice_number, date and total_amount out of
// whitespace-normalized text. First match wins per field.
func ExtractInvoice(text string) *FieldMap {
	text = Normalize(text)

	m := NewFieldMap()
	m.Set("invoice_number", firstMatch(reInvoiceNumber, text))
	m.Set("date", firstMatch(reInvoiceDate, text))
	m.Set("total_amount", firstMatch(reInvoiceTotal, text))
	return m
}
