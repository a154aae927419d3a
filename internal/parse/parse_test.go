package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_TrailingFieldAbsorbsWhitespace(t *testing.T) {
	fields := Fields("a  b\tc d e with spaces", 4)

	require.Len(t, fields, 4)
	assert.Equal(t, "a", fields[0])
	assert.Equal(t, "b", fields[1])
	assert.Equal(t, "c", fields[2])
	assert.Equal(t, "d e with spaces", fields[3])
}

func TestFields_FewerTokensThanLimit(t *testing.T) {
	fields := Fields("one two", 5)

	assert.Equal(t, []string{"one", "two"}, fields)
}

func TestFields_NoLimit(t *testing.T) {
	fields := Fields("  a   b  c  ", 0)

	assert.Equal(t, []string{"a", "b", "c"}, fields)
}

func TestFields_EmptyLine(t *testing.T) {
	assert.Nil(t, Fields("", 3))
	assert.Nil(t, Fields("   \t  ", 3))
}

func TestFields_LeadingWhitespaceTrimmed(t *testing.T) {
	fields := Fields("   x y", 2)

	assert.Equal(t, []string{"x", "y"}, fields)
}

func TestFieldsExact_Match(t *testing.T) {
	fields := FieldsExact("1 2 3", 3)

	assert.Equal(t, []string{"1", "2", "3"}, fields)
}

func TestFieldsExact_TooFew(t *testing.T) {
	assert.Nil(t, FieldsExact("1 2", 3))
}

func TestIntOrDefault(t *testing.T) {
	assert.Equal(t, 42, IntOrDefault("42", 0))
	assert.Equal(t, 7, IntOrDefault(" 7 ", 0))
	assert.Equal(t, 0, IntOrDefault("junk", 0))
	assert.Equal(t, -1, IntOrDefault("", -1))
}

func TestInt64OrDefault(t *testing.T) {
	assert.Equal(t, int64(9999999999), Int64OrDefault("9999999999", 0))
	assert.Equal(t, int64(0), Int64OrDefault("x", 0))
}
