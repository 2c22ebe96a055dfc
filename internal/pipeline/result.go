package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/adeyemi-oso/doctriage/constants"
	"github.com/adeyemi-oso/doctriage/internal/fields"
)

// DocumentResult is the record for one processed document. Created once,
// appended to its batch, then serialized; never mutated afterwards. Failed
// documents carry an error description and no category or fields.
type DocumentResult struct {
	ID       uuid.UUID           `json:"id"`
	FileName string              `json:"file_name"`
	Path     string              `json:"path"`
	Status   constants.DocStatus `json:"status"`
	Category constants.Category  `json:"category,omitempty"`
	Fields   *fields.FieldMap    `json:"fields,omitempty"`
	Method   string              `json:"method,omitempty"`
	Text     string              `json:"text,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// BatchStats aggregates per-run counters.
type BatchStats struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
	Unknown   int `json:"unknown"`
}

// BatchResult is an ordered sequence of DocumentResult, one per discovered
// input document, preserving discovery order.
type BatchResult struct {
	ID         uuid.UUID        `json:"id"`
	Root       string           `json:"root"`
	StartedAt  time.Time        `json:"started_at"`
	DurationMS int64            `json:"duration_ms"`
	Documents  []DocumentResult `json:"documents"`
	Stats      BatchStats       `json:"stats"`
}
