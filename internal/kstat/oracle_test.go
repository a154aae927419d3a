package kstat

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChain hands out fakeHandles and records how many remain open.
type fakeChain struct {
	openErr   error
	stat      *Stat
	readOK    bool
	openCount int
	open      int
}

type fakeHandle struct {
	chain *fakeChain
}

func (c *fakeChain) Open() (Handle, error) {
	if c.openErr != nil {
		return nil, c.openErr
	}
	c.openCount++
	c.open++
	return &fakeHandle{chain: c}, nil
}

func (h *fakeHandle) Lookup(module string, instance int, name string) (*Stat, bool) {
	if module != ModuleUnix || instance != InstanceSystem || name != NameSystemMisc {
		return nil, false
	}
	if h.chain.stat == nil {
		return nil, false
	}
	return h.chain.stat, true
}

func (h *fakeHandle) Read(st *Stat) bool {
	return h.chain.readOK
}

func (h *fakeHandle) Close() {
	h.chain.open--
}

func fixedNow(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0) }
}

func TestUptimeSeconds_FromSnapTime(t *testing.T) {
	chain := &fakeChain{stat: &Stat{SnapTimeNanos: 12_345_678_901_234}}
	o := NewOracle(chain, fixedNow(0), nil)

	assert.Equal(t, int64(12345), o.UptimeSeconds())
	assert.Zero(t, chain.open, "handle must be released")
}

func TestUptimeSeconds_LookupMiss(t *testing.T) {
	chain := &fakeChain{stat: nil}
	o := NewOracle(chain, fixedNow(0), nil)

	assert.Equal(t, int64(0), o.UptimeSeconds())
	assert.Zero(t, chain.open)
}

func TestUptimeSeconds_OpenFailure(t *testing.T) {
	chain := &fakeChain{openErr: errors.New("chain unavailable")}
	o := NewOracle(chain, fixedNow(0), nil)

	assert.Equal(t, int64(0), o.UptimeSeconds())
}

func TestBootTimeSeconds_FromBootTimeDatum(t *testing.T) {
	chain := &fakeChain{
		stat: &Stat{
			SnapTimeNanos: int64(time.Hour),
			Data:          map[string]int64{DataBootTime: 1_700_000_000},
		},
		readOK: true,
	}
	o := NewOracle(chain, fixedNow(1_700_003_600), nil)

	assert.Equal(t, int64(1_700_000_000), o.BootTimeSeconds())
	assert.Zero(t, chain.open)
}

func TestBootTimeSeconds_FallbackToWallClockMinusUptime(t *testing.T) {
	// Lookup succeeds but the read fails: fall back to now - uptime.
	chain := &fakeChain{
		stat:   &Stat{SnapTimeNanos: 100 * int64(time.Second)},
		readOK: false,
	}
	o := NewOracle(chain, fixedNow(1_000_100), nil)

	assert.Equal(t, int64(1_000_000), o.BootTimeSeconds())
}

func TestBootTimeSeconds_ChainUnavailable(t *testing.T) {
	// No chain at all: uptime is 0, so boot time is wallClock - 0.
	chain := &fakeChain{openErr: errors.New("chain unavailable")}
	o := NewOracle(chain, fixedNow(1_234_567), nil)

	assert.Equal(t, int64(1_234_567), o.BootTimeSeconds())
}

func TestBootTimeSeconds_CachedAcrossCalls(t *testing.T) {
	chain := &fakeChain{
		stat: &Stat{
			SnapTimeNanos: int64(time.Hour),
			Data:          map[string]int64{DataBootTime: 500},
		},
		readOK: true,
	}
	o := NewOracle(chain, fixedNow(0), nil)

	first := o.BootTimeSeconds()
	opensAfterFirst := chain.openCount

	// Change the underlying counter; the cached value must win.
	chain.stat.Data[DataBootTime] = 999

	assert.Equal(t, first, o.BootTimeSeconds())
	assert.Equal(t, opensAfterFirst, chain.openCount,
		"no further chain access after the first computation")
}

func TestStat_DataLookup(t *testing.T) {
	st := &Stat{Data: map[string]int64{"boot_time": 7}}

	v, ok := st.DataLookup("boot_time")
	require.True(t, ok)
	assert.Equal(t, int64(7), v)

	_, ok = st.DataLookup("missing")
	assert.False(t, ok)

	var nilStat *Stat
	_, ok = nilStat.DataLookup("boot_time")
	assert.False(t, ok)
}
