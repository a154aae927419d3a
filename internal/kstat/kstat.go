// Package kstat models the kernel statistics chain as an injectable
// collaborator and derives system uptime and boot time from it.
//
// The chain follows open/lookup/read/close semantics: a handle is opened
// immediately before use and released on every exit path. Production code
// uses HostChain; tests substitute a fake chain.
package kstat

// Stat is one named kernel statistic instance as returned by a chain
// lookup.
type Stat struct {
	// SnapTimeNanos is the statistic's snapshot time in nanoseconds since
	// boot.
	SnapTimeNanos int64
	// Data holds the named data fields. Populated by Handle.Read.
	Data map[string]int64
}

// DataLookup returns the named datum, reporting absence through ok.
func (s *Stat) DataLookup(name string) (value int64, ok bool) {
	if s == nil || s.Data == nil {
		return 0, false
	}
	value, ok = s.Data[name]
	return value, ok
}

// Chain opens scoped handles to the kernel statistics chain.
type Chain interface {
	Open() (Handle, error)
}

// Handle is one open view of the statistics chain. Callers must Close it on
// every exit path of the enclosing operation.
type Handle interface {
	// Lookup finds a statistic by module, instance and name, reporting
	// absence through ok.
	Lookup(module string, instance int, name string) (st *Stat, ok bool)
	// Read refreshes the statistic's data fields, reporting success.
	Read(st *Stat) bool
	// Close releases the handle.
	Close()
}
