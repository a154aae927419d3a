// Package proctree reconstructs parent/child process relationships that the
// flat listing output does not expose directly.
//
// Direct children come from a dedicated process-group query utility;
// descendant closures are computed over a single already-captured snapshot
// so every edge is consistent within that snapshot.
package proctree

import (
	"strconv"
	"strings"

	"github.com/sunstat/sunstat/internal/execcmd"
	"github.com/sunstat/sunstat/internal/pstable"
)

// Index answers relationship queries over the process table.
type Index struct {
	src execcmd.Source
	// childrenCommand queries direct children by parent pid; the pid is
	// appended verbatim.
	childrenCommand string
}

// NewIndex returns an Index using src for child discovery.
func NewIndex(src execcmd.Source, childrenCommand string) *Index {
	return &Index{src: src, childrenCommand: childrenCommand}
}

// Children returns the direct child pids of parentPid. The query utility
// can echo the queried pid back; such lines are excluded. No children is an
// empty set, not an error.
func (ix *Index) Children(parentPid int) []int {
	var pids []int
	seen := make(map[int]bool)
	for _, line := range ix.src.Run(ix.childrenCommand + strconv.Itoa(parentPid)) {
		pid, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || pid == parentPid || seen[pid] {
			continue
		}
		seen[pid] = true
		pids = append(pids, pid)
	}
	return pids
}

// Descendants computes the full descendant closure of parentPid over one
// snapshot. The traversal tracks visited pids, so corrupt data that reports
// a pid as its own ancestor terminates after at most one visit per process.
func Descendants(snapshot []pstable.Record, parentPid int) []int {
	children := make(map[int][]int, len(snapshot))
	for _, rec := range snapshot {
		children[rec.ParentPID] = append(children[rec.ParentPID], rec.PID)
	}

	visited := make(map[int]bool)
	var closure []int
	frontier := append([]int(nil), children[parentPid]...)
	for len(frontier) > 0 {
		pid := frontier[0]
		frontier = frontier[1:]
		if pid == parentPid || visited[pid] {
			continue
		}
		visited[pid] = true
		closure = append(closure, pid)
		frontier = append(frontier, children[pid]...)
	}
	return closure
}
