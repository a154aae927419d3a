package execcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines_PreservesLeadingWhitespace(t *testing.T) {
	out := []byte("STATE          STIME    FMRI\n               23:56:24       13 svc.startd\n")

	lines := SplitLines(out)

	assert.Len(t, lines, 2)
	assert.Equal(t, "               23:56:24       13 svc.startd", lines[1])
}

func TestSplitLines_Empty(t *testing.T) {
	assert.Nil(t, SplitLines(nil))
	assert.Nil(t, SplitLines([]byte{}))
}

func TestSplitLines_NoTrailingNewline(t *testing.T) {
	lines := SplitLines([]byte("only line"))

	assert.Equal(t, []string{"only line"}, lines)
}

func TestRunner_MissingBinaryReturnsNil(t *testing.T) {
	r := NewRunner(nil)

	assert.Nil(t, r.Run("definitely-not-a-real-binary-sunstat --flag"))
}

func TestRunner_EmptyCommandReturnsNil(t *testing.T) {
	r := NewRunner(nil)

	assert.Nil(t, r.Run(""))
	assert.Nil(t, r.Run("   "))
}
