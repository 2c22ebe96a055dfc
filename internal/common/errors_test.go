package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewAppError("STORE_WRITE", "saving batch", cause)

	assert.Equal(t, "STORE_WRITE: saving batch: disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewAppError("BAD_INPUT", "empty path", nil)
	assert.Equal(t, "BAD_INPUT: empty path", bare.Error())
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	wrapped := WrapError(ErrAcquisition, "page 3")
	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, ErrAcquisition)
	assert.Equal(t, "page 3: text acquisition failed", wrapped.Error())
}
