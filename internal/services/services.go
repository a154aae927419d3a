// Package services builds the service inventory by merging the live
// service-manager listing with the legacy init-script directory.
//
// The merge preserves both sources as-is: a service reported by the live
// listing and present as a legacy script yields two records, and the live
// listing's "online" lines classify as STOPPED. Both behaviors are
// observed contracts of the underlying listing, kept deliberately.
package services

import (
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/sunstat/sunstat/internal/execcmd"
	"github.com/sunstat/sunstat/internal/parse"
)

// State classifies a service record.
type State string

// Service states.
const (
	Running State = "RUNNING"
	Stopped State = "STOPPED"
)

// Record is one named service.
type Record struct {
	// Name is the service name: the identifier after the last ":/" of a
	// decorated name, or a legacy script filename.
	Name string
	// PID is the service's process id, 0 when not resolvable.
	PID int
	// State is the RUNNING/STOPPED classification.
	State State
}

// DirLister enumerates filenames directly under a directory. Absence (the
// path missing or unreadable) is reported through ok, not an error.
type DirLister interface {
	List(path string) (names []string, ok bool)
}

// OSDirLister lists directories through the local filesystem.
type OSDirLister struct{}

// List implements DirLister with os.ReadDir.
func (OSDirLister) List(path string) ([]string, bool) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, false
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, true
}

// Inventory builds service records from the live listing and the legacy
// directory.
type Inventory struct {
	src execcmd.Source
	// statusCommand is the service-manager status listing command.
	statusCommand string
	// legacyDir is the historical init-script directory.
	legacyDir string
	lister    DirLister
	log       *zap.Logger
}

// NewInventory returns an Inventory reading the live listing from src and
// legacy scripts from legacyDir. A nil lister defaults to the local
// filesystem; a nil log disables logging.
func NewInventory(src execcmd.Source, statusCommand, legacyDir string, lister DirLister, log *zap.Logger) *Inventory {
	if lister == nil {
		lister = OSDirLister{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Inventory{
		src:           src,
		statusCommand: statusCommand,
		legacyDir:     legacyDir,
		lister:        lister,
		log:           log,
	}
}

// Services returns all service records in encounter order. Records are not
// deduplicated across sources and not sorted.
func (inv *Inventory) Services() []Record {
	legacy, ok := inv.lister.List(inv.legacyDir)
	if !ok {
		inv.log.Debug("legacy service directory unavailable", zap.String("dir", inv.legacyDir))
	}
	return parseStatusLines(inv.src.Run(inv.statusCommand), legacy)
}

// parseStatusLines classifies each status line by its three known shapes;
// lines matching none are ignored.
func parseStatusLines(lines, legacy []string) []Record {
	var records []Record
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "online"):
			if rec, ok := parseOnlineLine(line); ok {
				records = append(records, rec)
			}
		case strings.HasPrefix(line, " "):
			if rec, ok := parseRunningLine(line); ok {
				records = append(records, rec)
			}
		case strings.HasPrefix(line, "legacy_run"):
			if rec, ok := matchLegacyLine(line, legacy); ok {
				records = append(records, rec)
			}
		}
	}
	return records
}

// parseOnlineLine extracts a decorated service name: everything after the
// last ":/", with a trailing ":default" stripped. These lines classify as
// STOPPED.
func parseOnlineLine(line string) (Record, bool) {
	delim := strings.LastIndex(line, ":/")
	if delim <= 0 {
		return Record{}, false
	}
	name := strings.TrimSuffix(line[delim+2:], ":default")
	return Record{Name: name, PID: 0, State: Stopped}, true
}

// parseRunningLine parses an indented "stime pid name" line into a RUNNING
// record. The split is unbounded: a line with more than three tokens is not
// this shape and is ignored, rather than folding the surplus into the name.
func parseRunningLine(line string) (Record, bool) {
	fields := parse.Fields(line, 0)
	if len(fields) != 3 {
		return Record{}, false
	}
	return Record{
		Name:  fields[2],
		PID:   parse.IntOrDefault(fields[1], 0),
		State: Running,
	}, true
}

// matchLegacyLine matches a legacy_run line against the collected legacy
// script names. A line matches at most one name; the first match wins.
func matchLegacyLine(line string, legacy []string) (Record, bool) {
	for _, name := range legacy {
		if strings.HasSuffix(line, name) {
			return Record{Name: name, PID: 0, State: Stopped}, true
		}
	}
	return Record{}, false
}
