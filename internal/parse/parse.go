// Package parse provides splitting and conversion helpers for the
// whitespace-delimited tables produced by the enumeration utilities.
package parse

import (
	"strconv"
	"strings"
	"unicode"
)

// Fields splits a line on runs of whitespace into at most limit fields.
// When the line contains more than limit whitespace-separated tokens, the
// final field absorbs everything that remains, whitespace included. This
// keeps a multi-word trailing column (such as a full command line) intact.
// A limit <= 0 means no limit.
func Fields(line string, limit int) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if limit <= 0 {
		return strings.Fields(line)
	}

	fields := make([]string, 0, limit)
	rest := line
	for len(fields) < limit-1 {
		cut := strings.IndexFunc(rest, unicode.IsSpace)
		if cut < 0 {
			break
		}
		fields = append(fields, rest[:cut])
		rest = strings.TrimLeftFunc(rest[cut:], unicode.IsSpace)
	}
	if rest != "" {
		fields = append(fields, rest)
	}
	return fields
}

// FieldsExact splits a line like Fields and returns the result only when it
// contains exactly want fields. Any other shape returns nil; the caller must
// treat the line as unparsable.
func FieldsExact(line string, want int) []string {
	fields := Fields(line, want)
	if len(fields) != want {
		return nil
	}
	return fields
}

// IntOrDefault converts s to an int, returning def when the field does not
// parse. Numeric conversion failing soft keeps a single corrupt column from
// discarding an otherwise usable record.
func IntOrDefault(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// Int64OrDefault converts s to an int64, returning def when the field does
// not parse.
func Int64OrDefault(s string, def int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return def
	}
	return v
}
