// Package pstable turns the output of the process listing utility into
// structured process records.
//
// The listing command prints a fixed 15-column table:
//
//	s,pid,ppid,user,uid,group,gid,nlwp,pri,vsz,rss,etime,time,comm,args
//
// The final args column may contain whitespace; the parser's bounded split
// keeps it intact. Rows that do not produce exactly 15 fields are dropped
// from the snapshot without failing the query.
package pstable

import (
	"time"

	"github.com/sunstat/sunstat/internal/parse"
)

// ColumnCount is the number of columns in a process listing row.
const ColumnCount = 15

// Record is one observed process at snapshot time. Records are constructed
// fresh per query and never mutated; a pid may be reused by the OS between
// snapshots.
type Record struct {
	// State is the single-character process status code.
	State string
	// PID is the process id, unique within one snapshot.
	PID int
	// ParentPID is the parent process id.
	ParentPID int
	// User and UID identify the owning user.
	User string
	UID  int
	// Group and GID identify the owning group.
	Group string
	GID   int
	// Threads is the thread (lwp) count.
	Threads int
	// Priority is the scheduling priority.
	Priority int
	// VirtualSizeKB and ResidentSizeKB are memory sizes in kilobytes.
	VirtualSizeKB  int64
	ResidentSizeKB int64
	// ElapsedTime and CPUTime are the raw [[dd-]hh:]mm:ss duration fields.
	ElapsedTime string
	CPUTime     string
	// Command is the short executable name.
	Command string
	// Args is the full command line, whitespace included.
	Args string
}

// newRecord builds a Record from an exact-count field slice. When
// trustedPID is >= 0 it overrides the pid column: a single-pid query already
// knows the pid it asked for, and trusting it defends against a row whose
// pid field shifted under a multi-word argument.
func newRecord(fields []string, trustedPID int) Record {
	pid := trustedPID
	if pid < 0 {
		pid = parse.IntOrDefault(fields[1], 0)
	}
	return Record{
		State:          fields[0],
		PID:            pid,
		ParentPID:      parse.IntOrDefault(fields[2], 0),
		User:           fields[3],
		UID:            parse.IntOrDefault(fields[4], 0),
		Group:          fields[5],
		GID:            parse.IntOrDefault(fields[6], 0),
		Threads:        parse.IntOrDefault(fields[7], 0),
		Priority:       parse.IntOrDefault(fields[8], 0),
		VirtualSizeKB:  parse.Int64OrDefault(fields[9], 0),
		ResidentSizeKB: parse.Int64OrDefault(fields[10], 0),
		ElapsedTime:    fields[11],
		CPUTime:        fields[12],
		Command:        fields[13],
		Args:           fields[14],
	}
}

// Elapsed returns the wall-clock time since the process started, or 0 when
// the etime field does not parse.
func (r Record) Elapsed() time.Duration {
	return parseDHMS(r.ElapsedTime)
}

// CPU returns the accumulated CPU time, or 0 when the time field does not
// parse.
func (r Record) CPU() time.Duration {
	return parseDHMS(r.CPUTime)
}
