package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	original := New("unexpected end of input")
	wrapped := Wrap(original, "failed to decode LAD file")

	assert.Contains(t, wrapped.Error(), "failed to decode LAD file")
	assert.Contains(t, wrapped.Error(), "unexpected end of input")
	assert.True(t, Is(wrapped, original))
}

func TestUnknownFormatError(t *testing.T) {
	err := NewUnknownFormatError("cannot infer format from %q", "out.txt")

	assert.True(t, IsUnknownFormatError(err))
	assert.True(t, IsUnknownFormatError(Wrap(err, "write")))
	assert.False(t, IsUnknownFormatError(New("other")))
	assert.False(t, IsUnknownFormatError(nil))
	assert.Contains(t, err.Error(), "out.txt")
}

func TestInvalidVersionError(t *testing.T) {
	err := NewInvalidVersionError("lad.version %q", "v-one")
	assert.True(t, Is(err, ErrInvalidVersion))
	assert.False(t, Is(err, ErrUnknownFormat))
}

func TestOutOfDateWithHint(t *testing.T) {
	err := WithHint(Wrap(ErrOutOfDate, "bindings.lad.json"), "run 'ladgen build' to regenerate")

	require.True(t, IsOutOfDateError(err))
	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "run 'ladgen build' to regenerate", hints[0])
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
}

func ExampleWrap() {
	err := Wrap(ErrNotFound, "open bindings.lad.json")
	fmt.Println(err)
	// Output: open bindings.lad.json: not found
}
