package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adeyemi-oso/doctriage/internal/pipeline"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS batches (
	id          UUID PRIMARY KEY,
	root        TEXT NOT NULL,
	started_at  TIMESTAMPTZ NOT NULL,
	duration_ms BIGINT NOT NULL,
	processed   INT NOT NULL,
	failed      INT NOT NULL,
	unknown     INT NOT NULL
);
CREATE TABLE IF NOT EXISTS documents (
	id        UUID PRIMARY KEY,
	batch_id  UUID NOT NULL REFERENCES batches(id),
	position  INT NOT NULL,
	file_name TEXT NOT NULL,
	path      TEXT NOT NULL,
	status    TEXT NOT NULL,
	category  TEXT,
	fields    JSONB,
	method    TEXT,
	error     TEXT
);
CREATE INDEX IF NOT EXISTS idx_documents_batch ON documents(batch_id, position);
`

// PostgresStore persists batch results in Postgres via a pgx pool.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresStore connects to dsn, verifies the connection, and ensures
// the result tables exist.
func NewPostgresStore(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "doctriage"

	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(dialCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("connected to postgres result store")
	return &PostgresStore{pool: pool, logger: logger}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// SaveBatch writes the batch and its documents in one transaction.
func (s *PostgresStore) SaveBatch(ctx context.Context, batch pipeline.BatchResult) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO batches (id, root, started_at, duration_ms, processed, failed, unknown)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		batch.ID, batch.Root, batch.StartedAt,
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
		var fieldsArg any
		if hasFields {
			fieldsArg = fj
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO documents (id, batch_id, position, file_name, path, status, category, fields, method, error)
			 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, NULLIF($9, ''), NULLIF($10, ''))`,
			doc.ID, batch.ID, i, doc.FileName, doc.Path, string(doc.Status),
			string(doc.Category), fieldsArg, doc.Method, doc.Error,
		)
		if err != nil {
			return fmt.Errorf("insert document %s: %w", doc.FileName, err)
		}
	}

	return tx.Commit(ctx)
}
