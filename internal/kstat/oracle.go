package kstat

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Oracle answers uptime and boot-time queries over a Chain.
//
// Boot time is computed exactly once per Oracle and cached for its
// lifetime: the underlying counter derives from a fixed event, so
// recomputing could only disagree with itself through counter drift. A
// machine reboot requires a new process instance.
type Oracle struct {
	chain Chain
	now   func() time.Time
	log   *zap.Logger

	bootOnce sync.Once
	bootTime int64
}

// NewOracle returns an Oracle over chain. now supplies wall-clock time for
// the boot-time fallback; nil means time.Now. A nil log disables logging.
func NewOracle(chain Chain, now func() time.Time, log *zap.Logger) *Oracle {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Oracle{chain: chain, now: now, log: log}
}

// UptimeSeconds returns seconds since boot, or 0 when the counter is
// unavailable.
func (o *Oracle) UptimeSeconds() int64 {
	h, err := o.chain.Open()
	if err != nil {
		o.log.Debug("kstat chain open failed", zap.Error(err))
		return 0
	}
	defer h.Close()

	st, ok := h.Lookup(ModuleUnix, InstanceSystem, NameSystemMisc)
	if !ok {
		return 0
	}
	// Snap time is in nanoseconds; divide for seconds.
	return st.SnapTimeNanos / int64(time.Second)
}

// BootTimeSeconds returns the boot instant as Unix-epoch seconds. The first
// call computes the value; every later call returns the cached result.
func (o *Oracle) BootTimeSeconds() int64 {
	o.bootOnce.Do(func() {
		o.bootTime = o.queryBootTime()
	})
	return o.bootTime
}

// queryBootTime reads the boot_time datum from the chain, falling back to
// wall clock minus uptime when the chain cannot answer.
func (o *Oracle) queryBootTime() int64 {
	h, err := o.chain.Open()
	if err == nil {
		defer h.Close()
		if st, ok := h.Lookup(ModuleUnix, InstanceSystem, NameSystemMisc); ok && h.Read(st) {
			if v, ok := st.DataLookup(DataBootTime); ok {
				return v
			}
		}
	} else {
		o.log.Debug("kstat chain open failed", zap.Error(err))
	}
	return o.now().Unix() - o.UptimeSeconds()
}
