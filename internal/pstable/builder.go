package pstable

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sunstat/sunstat/internal/execcmd"
	"github.com/sunstat/sunstat/internal/parse"
)

// Builder runs the process listing utility and parses its output.
type Builder struct {
	src execcmd.Source
	// listAllCommand lists every process.
	listAllCommand string
	// listPIDCommand is the constrained listing; the pid or comma-joined
	// pid list is appended verbatim.
	listPIDCommand string
	log            *zap.Logger
}

// NewBuilder returns a Builder reading from src with the given command
// strings. A nil log disables logging.
func NewBuilder(src execcmd.Source, listAllCommand, listPIDCommand string, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		src:            src,
		listAllCommand: listAllCommand,
		listPIDCommand: listPIDCommand,
		log:            log,
	}
}

// List returns every process in one snapshot, in the order the listing
// utility reported them.
func (b *Builder) List() []Record {
	return b.fromCommand(b.listAllCommand, -1)
}

// ByPID returns the record for a single pid, or nil when no such process
// exists at snapshot time. Absence is a normal outcome, not an error.
func (b *Builder) ByPID(pid int) *Record {
	recs := b.fromCommand(b.listPIDCommand+strconv.Itoa(pid), pid)
	if len(recs) == 0 {
		return nil
	}
	return &recs[0]
}

// ByPIDs returns records for the given pid set via one constrained listing
// query. An empty pid set short-circuits to an empty result without running
// the command.
func (b *Builder) ByPIDs(pids []int) []Record {
	if len(pids) == 0 {
		return nil
	}
	joined := make([]string, len(pids))
	for i, pid := range pids {
		joined[i] = strconv.Itoa(pid)
	}
	return b.fromCommand(b.listPIDCommand+strings.Join(joined, ","), -1)
}

// fromCommand runs a listing command and parses every data row. The first
// line is the column header; fewer than two lines means no processes
// matched. Rows that do not split into exactly ColumnCount fields are
// skipped.
func (b *Builder) fromCommand(command string, trustedPID int) []Record {
	lines := b.src.Run(command)
	if len(lines) < 2 {
		return nil
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := parse.FieldsExact(line, ColumnCount)
		if fields == nil {
			b.log.Debug("skipping malformed process row", zap.String("line", line))
			continue
		}
		records = append(records, newRecord(fields, trustedPID))
	}
	return records
}
