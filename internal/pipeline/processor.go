package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/adeyemi-oso/doctriage/constants"
	"github.com/adeyemi-oso/doctriage/internal/acquire"
	"github.com/adeyemi-oso/doctriage/internal/classify"
	"github.com/adeyemi-oso/doctriage/internal/fields"
)

// Processor coordinates acquire -> classify -> extract for one document at
// a time. It never lets a failure escape a single document's boundary.
type Processor struct {
	logger     *slog.Logger
	acquirer   acquire.Acquirer
	classifier *classify.Classifier
	keepText   bool
}

func NewProcessor(acquirer acquire.Acquirer, classifier *classify.Classifier, keepText bool, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if classifier == nil {
		classifier = classify.NewClassifier(nil, logger)
	}
	return &Processor{
		logger:     logger,
		acquirer:   acquirer,
		classifier: classifier,
		keepText:   keepText,
	}
}

// Process runs one document through acquire, classify and extract, and
// always returns exactly one result. Failures (including panics from a
// misbehaving acquirer) become error-bearing results, not propagated
// errors.
func (p *Processor) Process(ctx context.Context, path string) (result DocumentResult) {
	result = DocumentResult{
		ID:       uuid.New(),
		FileName: filepath.Base(path),
		Path:     path,
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic while processing document", "path", path, "panic", r)
			result.Status = constants.DocStatusFailed
			result.Category = ""
			result.Fields = nil
			result.Error = fmt.Sprintf("panic: %v", r)
		}
	}()

	ar, err := p.acquirer.Acquire(ctx, path)
	if err != nil {
		p.logger.Error("acquisition failed", "path", path, "error", err)
		result.Status = constants.DocStatusFailed
		result.Error = err.Error()
		return result
	}

	category := p.classifier.Classify(ar.Text)
	fieldMap := fields.Route(category, ar.Text)

	result.Status = constants.DocStatusOK
	result.Category = category
	result.Fields = fieldMap
	result.Method = ar.Method
	if p.keepText {
		result.Text = ar.Text
	}

	p.logger.Info("document processed",
		"file", result.FileName,
		"category", category,
		"fields", fieldMap.Len(),
		"method", ar.Method,
	)
	return result
}

// ProcessBatch runs a strict sequence over paths, one result per input in
// the given order. A failed document does not cancel its siblings.
func (p *Processor) ProcessBatch(ctx context.Context, root string, paths []string) BatchResult {
	start := time.Now()
	batch := BatchResult{
		ID:        uuid.New(),
		Root:      root,
		StartedAt: start.UTC(),
		Documents: make([]DocumentResult, 0, len(paths)),
	}

	for _, path := range paths {
		res := p.Process(ctx, path)
		batch.Documents = append(batch.Documents, res)
		switch {
		case res.Status == constants.DocStatusFailed:
			batch.Stats.Failed++
		case res.Category == constants.Unknown:
			batch.Stats.Unknown++
			batch.Stats.Processed++
		default:
			batch.Stats.Processed++
		}
	}

	batch.DurationMS = time.Since(start).Milliseconds()
	p.logger.Info("batch complete",
		"batch_id", batch.ID,
		"documents", len(batch.Documents),
		"processed", batch.Stats.Processed,
		"failed", batch.Stats.Failed,
		"unknown", batch.Stats.Unknown,
		"duration_ms", batch.DurationMS,
	)
	return batch
}
