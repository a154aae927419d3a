package proctree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunstat/sunstat/internal/pstable"
)

const childrenCmd = "pgrep -P "

type fakeSource struct {
	lines map[string][]string
}

func (f *fakeSource) Run(command string) []string {
	return f.lines[command]
}

func proc(pid, ppid int) pstable.Record {
	return pstable.Record{PID: pid, ParentPID: ppid}
}

func TestChildren_ParsesPIDs(t *testing.T) {
	ix := NewIndex(&fakeSource{lines: map[string][]string{
		childrenCmd + "100": {"101", " 102 ", "103"},
	}}, childrenCmd)

	assert.Equal(t, []int{101, 102, 103}, ix.Children(100))
}

func TestChildren_ExcludesEchoedParent(t *testing.T) {
	// Some utilities echo the query argument among the results.
	ix := NewIndex(&fakeSource{lines: map[string][]string{
		childrenCmd + "100": {"100", "101"},
	}}, childrenCmd)

	assert.Equal(t, []int{101}, ix.Children(100))
}

func TestChildren_NoChildren(t *testing.T) {
	ix := NewIndex(&fakeSource{lines: map[string][]string{}}, childrenCmd)

	assert.Empty(t, ix.Children(100))
}

func TestChildren_IgnoresGarbageLines(t *testing.T) {
	ix := NewIndex(&fakeSource{lines: map[string][]string{
		childrenCmd + "1": {"2", "not-a-pid", "", "3"},
	}}, childrenCmd)

	assert.Equal(t, []int{2, 3}, ix.Children(1))
}

func TestDescendants_FullClosure(t *testing.T) {
	snapshot := []pstable.Record{
		proc(1, 0),
		proc(10, 1),  // a
		proc(11, 1),  // b
		proc(20, 10), // c under a
	}

	got := Descendants(snapshot, 1)

	assert.ElementsMatch(t, []int{10, 11, 20}, got)
}

func TestDescendants_OrderIndependent(t *testing.T) {
	// Same tree, rows in the reverse order.
	snapshot := []pstable.Record{
		proc(20, 10),
		proc(11, 1),
		proc(10, 1),
		proc(1, 0),
	}

	got := Descendants(snapshot, 1)

	assert.ElementsMatch(t, []int{10, 11, 20}, got)
}

func TestDescendants_TerminatesOnCycle(t *testing.T) {
	// X reports parent Y and Y reports parent X; the closure must stay
	// finite.
	snapshot := []pstable.Record{
		proc(5, 6),
		proc(6, 5),
	}

	got := Descendants(snapshot, 5)

	assert.Equal(t, []int{6}, got)
}

func TestDescendants_SelfParentExcluded(t *testing.T) {
	snapshot := []pstable.Record{
		proc(7, 7),
		proc(8, 7),
	}

	got := Descendants(snapshot, 7)

	assert.ElementsMatch(t, []int{8}, got)
}

func TestDescendants_NoChildren(t *testing.T) {
	snapshot := []pstable.Record{proc(1, 0)}

	assert.Empty(t, Descendants(snapshot, 1))
}
