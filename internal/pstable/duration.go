package pstable

import (
	"strings"
	"time"

	"github.com/sunstat/sunstat/internal/parse"
)

// parseDHMS parses a ps duration field of the form [[dd-]hh:]mm:ss.
// Malformed input yields 0; a single corrupt time column never invalidates
// its record.
func parseDHMS(s string) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	var days int64
	if dash := strings.IndexByte(s, '-'); dash >= 0 {
		days = parse.Int64OrDefault(s[:dash], 0)
		s = s[dash+1:]
	}

	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return 0
	}
	var hours, minutes, seconds int64
	if len(fields) == 3 {
		hours = parse.Int64OrDefault(fields[0], 0)
		fields = fields[1:]
	}
	minutes = parse.Int64OrDefault(fields[0], 0)
	// The seconds field may carry a fractional part; whole seconds suffice.
	sec := fields[1]
	if dot := strings.IndexByte(sec, '.'); dot >= 0 {
		sec = sec[:dot]
	}
	seconds = parse.Int64OrDefault(sec, 0)

	total := ((days*24+hours)*60+minutes)*60 + seconds
	return time.Duration(total) * time.Second
}
