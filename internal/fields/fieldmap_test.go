package fields

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestFieldMap_JSONOrderAndNulls(t *testing.T) {
	m := NewFieldMap()
	m.Set("zulu", strptr("1"))
	m.Set("alpha", nil)
	m.Set("mike", strptr("3"))

	b, err := json.Marshal(m)
	require.NoError(t, err)

	// insertion order, not lexical order, and explicit null for misses
	assert.JSONEq(t, `{"zulu":"1","alpha":null,"mike":"3"}`, string(b))
	assert.Equal(t, `{"zulu":"1","alpha":null,"mike":"3"}`, string(b))
}

func TestFieldMap_OverwriteKeepsPosition(t *testing.T) {
	m := NewFieldMap()
	m.Set("first", strptr("a"))
	m.Set("second", strptr("b"))
	m.Set("first", strptr("c"))

	assert.Equal(t, []string{"first", "second"}, m.Keys())
	v, ok := m.Get("first")
	require.True(t, ok)
	require.NotNil(t, v)
	assert.Equal(t, "c", *v)
}

func TestFieldMap_JSONRoundTrip(t *testing.T) {
	m := NewFieldMap()
	m.Set("a", strptr("x"))
	m.Set("b", nil)

	b, err := json.Marshal(m)
	require.NoError(t, err)

	out := NewFieldMap()
	require.NoError(t, json.Unmarshal(b, out))
	assert.Equal(t, []string{"a", "b"}, out.Keys())
	v, ok := out.Get("b")
	require.True(t, ok)
	assert.Nil(t, v)
}
