package constants

// DocStatus is the terminal outcome for a single processed document.
type DocStatus string

// Stable values (persisted as these exact strings).
const (
	DocStatusOK     DocStatus = "OK"     // classified and extracted
	DocStatusFailed DocStatus = "FAILED" // acquisition or unsupported-type failure
)

// Acquisition method markers recorded on each result.
const (
	MethodPDFText   = "pdf-text"
	MethodPDFOCR    = "pdf-ocr"
	MethodImageOCR  = "image-ocr"
	MethodPlainText = "plain-text"
)
