// Package execcmd runs external enumeration utilities and captures their
// standard output as lines of text.
//
// The Source interface is the seam between the inventory engine and the
// operating system: production code uses Runner, tests substitute a fake
// returning canned lines. Failure of any kind (missing binary, non-zero
// exit, unreadable output) surfaces as an empty line sequence, never as an
// error; callers treat an empty result as a normal absence.
package execcmd

import (
	"bufio"
	"bytes"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Source runs a command string and returns its stdout as ordered lines.
type Source interface {
	Run(command string) []string
}

// Runner executes command strings with os/exec.
type Runner struct {
	log *zap.Logger
}

// NewRunner returns a Runner logging through log. A nil log disables logging.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Run executes the given command string and returns its stdout split into
// lines. The command string is split on whitespace; the utilities consumed
// here take no arguments that themselves contain whitespace. Any failure
// returns nil.
func (r *Runner) Run(command string) []string {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil
	}

	out, err := exec.Command(argv[0], argv[1:]...).Output()
	if err != nil {
		r.log.Debug("command failed", zap.String("command", command), zap.Error(err))
		return nil
	}
	return SplitLines(out)
}

// SplitLines splits raw command output into lines, dropping the trailing
// newline but preserving leading whitespace within each line (the service
// listing distinguishes line shapes by their first character).
func SplitLines(out []byte) []string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}
