package acquire

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// readPDFText decodes the native text layer of a PDF. Pages without an
// extractable layer contribute nothing; a PDF with no text layer at all
// yields "" and no error, which the OCR-need gate then catches.
func readPDFText(path string) (text string, pages int, err error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	pages = r.NumPage()
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// skip unreadable pages, keep the rest
			continue
		}
		if pageText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pageText)
	}
	return b.String(), pages, nil
}
