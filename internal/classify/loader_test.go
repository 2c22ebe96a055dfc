package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeyemi-oso/doctriage/constants"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfiles_ValidFile(t *testing.T) {
	path := writeProfileFile(t, `[
		{"category": "contract", "anchors": ["Master Services Agreement"], "context": ["witnesseth"]},
		{"category": "invoice", "anchors": ["invoice no:"]}
	]`)

	profiles, err := LoadProfiles(path)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	// file order becomes tie-break order
	assert.Equal(t, constants.Contract, profiles[0].Category)
	assert.Equal(t, constants.Invoice, profiles[1].Category)

	// keywords lowercased on load
	assert.Equal(t, []string{"master services agreement"}, profiles[0].Anchors)
}

func TestLoadProfiles_UnknownCategoryRejected(t *testing.T) {
	path := writeProfileFile(t, `[{"category": "memo", "anchors": ["memo to file"]}]`)

	_, err := LoadProfiles(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestLoadProfiles_MissingAnchorsRejected(t *testing.T) {
	path := writeProfileFile(t, `[{"category": "invoice", "context": ["tax"]}]`)

	_, err := LoadProfiles(path)
	require.Error(t, err)
}

func TestLoadProfiles_NotAnArrayRejected(t *testing.T) {
	path := writeProfileFile(t, `{"category": "invoice", "anchors": ["x"]}`)

	_, err := LoadProfiles(path)
	require.Error(t, err)
}

func TestLoadProfiles_MissingFile(t *testing.T) {
	_, err := LoadProfiles(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
