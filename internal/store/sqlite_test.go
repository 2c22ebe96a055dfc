package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_SaveBatch(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "doctriage.db")
	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	batch := sampleBatch()
	require.NoError(t, s.SaveBatch(context.Background(), batch))

	var batches, documents int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM batches").Scan(&batches))
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&documents))
	assert.Equal(t, 1, batches)
	assert.Equal(t, 2, documents)

	// order survives via the position column
	var first string
	require.NoError(t, s.db.QueryRow(
		"SELECT file_name FROM documents WHERE batch_id = ? ORDER BY position LIMIT 1",
		batch.ID.String(),
	).Scan(&first))
	assert.Equal(t, "inv.pdf", first)

	// failed documents store NULL category and fields
	var category, fieldsCol sql.NullString
	require.NoError(t, s.db.QueryRow(
		"SELECT category, fields FROM documents WHERE file_name = ?", "bad.pdf",
	).Scan(&category, &fieldsCol))
	assert.False(t, category.Valid)
	assert.False(t, fieldsCol.Valid)

	// classified documents store the ordered field JSON
	require.NoError(t, s.db.QueryRow(
		"SELECT fields FROM documents WHERE file_name = ?", "inv.pdf",
	).Scan(&fieldsCol))
	require.True(t, fieldsCol.Valid)
	assert.Contains(t, fieldsCol.String, `"invoice_number":"INV-1"`)
}

func TestNewSQLiteStore_SchemaIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "doctriage.db")

	s1, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s1.SaveBatch(context.Background(), sampleBatch()))
	require.NoError(t, s1.Close())

	// reopening an existing database must not clobber rows
	s2, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	var n int
	require.NoError(t, s2.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&n))
	assert.Equal(t, 2, n)
	assert.Equal(t, dbPath, s2.Path())
}
