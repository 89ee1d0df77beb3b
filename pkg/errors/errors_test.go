package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	code, err := NewCode("table.invalid_input")
	require.NoError(t, err)
	assert.Equal(t, "table.invalid_input", code.String())
	assert.Equal(t, "table", code.Package())
}

func TestNewCodeRejectsBadFormat(t *testing.T) {
	for _, s := range []string{"", "table", "Table.bad", "table.Bad", "table.invalid.input", "1table.x"} {
		_, err := NewCode(s)
		assert.Error(t, err, "code %q should be rejected", s)
	}
}

func TestMustNewCodePanics(t *testing.T) {
	assert.Panics(t, func() { MustNewCode("NOT A CODE") })
}

func TestErrorMessage(t *testing.T) {
	e := New(CommonInvalidInput, "bad table")
	assert.Equal(t, "bad table", e.Error())

	wrapped := Wrap(CommonInternal, e, "render failed")
	assert.Equal(t, "render failed: bad table", wrapped.Error())
	assert.True(t, errors.Is(wrapped, e))
}

func TestHasCode(t *testing.T) {
	inner := New(CommonInvalidInput, "bad table")
	outer := fmt.Errorf("while rendering: %w", inner)

	assert.True(t, HasCode(outer, CommonInvalidInput))
	assert.False(t, HasCode(outer, CommonInternal))
	assert.False(t, HasCode(nil, CommonInvalidInput))
}

func TestAddContext(t *testing.T) {
	e := New(CommonValidation, "limit out of range").
		AddContext("limit", "max_rows").
		AddContext("value", "-1")

	assert.Equal(t, "max_rows", e.Context["limit"])
	assert.Equal(t, "-1", e.Context["value"])
}

func TestCodeOf(t *testing.T) {
	e := New(CommonUnsupported, "unknown engine")
	assert.Equal(t, CommonUnsupported, CodeOf(e))
	assert.True(t, CodeOf(errors.New("plain")).IsEmpty())
}
