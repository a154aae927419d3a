// Package filter compiles boolean expressions over process records.
//
// Expressions use the expr language and see one process record at a time
// through named variables, e.g.:
//
//	Command == "httpd" && Threads > 4
//	User != "root" && VirtualSizeKB > 1024*100
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/sunstat/sunstat/internal/pstable"
)

// Predicate is a compiled boolean expression over a process record.
type Predicate struct {
	program *vm.Program
}

// Compile compiles source into a Predicate. Non-boolean expressions are
// rejected at compile time.
func Compile(source string) (*Predicate, error) {
	program, err := expr.Compile(source, expr.Env(recordEnv(pstable.Record{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter %q: %w", source, err)
	}
	return &Predicate{program: program}, nil
}

// Match evaluates the predicate against one record.
func (p *Predicate) Match(rec pstable.Record) (bool, error) {
	out, err := expr.Run(p.program, recordEnv(rec))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("filter returned %T, want bool", out)
	}
	return ok, nil
}

// Apply returns the records matching the predicate, preserving order.
// Records whose evaluation fails are dropped, consistent with the
// malformed-row handling elsewhere in the engine.
func (p *Predicate) Apply(recs []pstable.Record) []pstable.Record {
	var out []pstable.Record
	for _, rec := range recs {
		if ok, err := p.Match(rec); err == nil && ok {
			out = append(out, rec)
		}
	}
	return out
}

// recordEnv exposes a record's fields to the expression environment.
func recordEnv(rec pstable.Record) map[string]interface{} {
	return map[string]interface{}{
		"State":          rec.State,
		"PID":            rec.PID,
		"ParentPID":      rec.ParentPID,
		"User":           rec.User,
		"UID":            rec.UID,
		"Group":          rec.Group,
		"GID":            rec.GID,
		"Threads":        rec.Threads,
		"Priority":       rec.Priority,
		"VirtualSizeKB":  rec.VirtualSizeKB,
		"ResidentSizeKB": rec.ResidentSizeKB,
		"ElapsedTime":    rec.ElapsedTime,
		"CPUTime":        rec.CPUTime,
		"Command":        rec.Command,
		"Args":           rec.Args,
	}
}
