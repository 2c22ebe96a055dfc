package acquire

import (
	"context"
	"time"
)

// Acquirer is the text-acquisition stage: file -> text.
type Acquirer interface {
	Acquire(ctx context.Context, path string) (Result, error)
}

type Result struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE | constants.TXT
	Method     string // constants.MethodPDFText | MethodPDFOCR | MethodImageOCR | MethodPlainText
	Duration   time.Duration
	Warnings   []string
}
