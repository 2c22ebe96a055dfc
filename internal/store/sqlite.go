package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/adeyemi-oso/doctriage/internal/pipeline"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS batches (
	id          TEXT PRIMARY KEY,
	root        TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	processed   INTEGER NOT NULL,
	failed      INTEGER NOT NULL,
	unknown     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS documents (
	id        TEXT PRIMARY KEY,
	batch_id  TEXT NOT NULL REFERENCES batches(id),
	position  INTEGER NOT NULL,
	file_name TEXT NOT NULL,
	path      TEXT NOT NULL,
	status    TEXT NOT NULL,
	category  TEXT,
	fields    TEXT,
	method    TEXT,
	error     TEXT
);
CREATE INDEX IF NOT EXISTS idx_documents_batch ON documents(batch_id, position);
`

// SQLiteStore persists batch results in a local SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the database at dbPath with WAL mode.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// SaveBatch writes the batch and its documents in one transaction,
// preserving discovery order via the position column.
func (s *SQLiteStore) SaveBatch(ctx context.Context, batch pipeline.BatchResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO batches (id, root, started_at, duration_ms, processed, failed, unknown)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		batch.ID.String(), batch.Root, batch.StartedAt.Format(time.RFC3339),
		batch.DurationMS, batch.Stats.Processed, batch.Stats.Failed, batch.Stats.Unknown,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	for i, doc := range batch.Documents {
		fj, hasFields, err := fieldsJSON(doc)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO documents (id, batch_id, position, file_name, path, status, category, fields, method, error)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			doc.ID.String(), batch.ID.String(), i, doc.FileName, doc.Path, string(doc.Status),
			nullable(string(doc.Category)), sqlNullString(fj, hasFields),
			nullable(doc.Method), nullable(doc.Error),
		)
		if err != nil {
			return fmt.Errorf("insert document %s: %w", doc.FileName, err)
		}
	}

	return tx.Commit()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func sqlNullString(s string, valid bool) sql.NullString {
	return sql.NullString{String: s, Valid: valid}
}
