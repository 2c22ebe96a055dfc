package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adeyemi-oso/doctriage/internal/pipeline"
)

// BatchStore persists batch results to a database.
type BatchStore interface {
	SaveBatch(ctx context.Context, batch pipeline.BatchResult) error
	Close() error
}

// fieldsJSON serializes a result's field map as ordered JSON, or returns
// ok=false for failed results that carry no fields.
func fieldsJSON(res pipeline.DocumentResult) (string, bool, error) {
	if res.Fields == nil {
		return "", false, nil
	}
	b, err := json.Marshal(res.Fields)
	if err != nil {
		return "", false, fmt.Errorf("marshal fields: %w", err)
	}
	return string(b), true, nil
}
