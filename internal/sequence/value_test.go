package sequence_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vajrock/erasure-lab/internal/sequence"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "string", sequence.KindString.String())
	assert.Equal(t, "int", sequence.KindInt.String())
	assert.Equal(t, "unknown", sequence.Kind(99).String())
}

func TestValue_Display(t *testing.T) {
	assert.Equal(t, "string value 1", sequence.Str("string value 1").Display())
	assert.Equal(t, "5", sequence.Int(5).Display())
	assert.Equal(t, "-42", sequence.Int(-42).Display())
}

func TestValue_AsString(t *testing.T) {
	s, ok := sequence.Str("hello").AsString()
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	_, ok = sequence.Int(5).AsString()
	assert.False(t, ok)
}

func TestValue_InvokeLengthOnString(t *testing.T) {
	res, err := sequence.Str("hello").Invoke("length")
	require.NoError(t, err)
	assert.Equal(t, sequence.KindInt, res.Kind())
	assert.Equal(t, "5", res.Display())
}

func TestValue_InvokeLengthOnInt(t *testing.T) {
	_, err := sequence.Int(5).Invoke("length")
	require.Error(t, err)

	var invalid *sequence.InvalidOperationError
	require.True(t, errors.As(err, &invalid), "expected *InvalidOperationError, got %T", err)
	assert.Equal(t, "length", invalid.Op)
	assert.Equal(t, "int", invalid.Actual)
	assert.Equal(t, "string", invalid.Expected)
}

func TestValue_InvokeUnknownMethod(t *testing.T) {
	_, err := sequence.Str("hello").Invoke("frobnicate")
	require.Error(t, err)

	var invalid *sequence.InvalidOperationError
	require.True(t, errors.As(err, &invalid), "expected *InvalidOperationError, got %T", err)
	assert.Equal(t, "frobnicate", invalid.Op)
}
