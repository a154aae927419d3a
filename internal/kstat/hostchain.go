package kstat

import (
	"github.com/shirou/gopsutil/v3/host"
)

// System-misc statistic identity and the boot time datum it carries.
const (
	ModuleUnix     = "unix"
	InstanceSystem = 0
	NameSystemMisc = "system_misc"
	DataBootTime   = "boot_time"
)

// HostChain is the default Chain, backed by the host statistics gopsutil
// exposes. It presents uptime and boot time through the same
// unix:0:system_misc lookup surface a native kstat chain would, so the
// oracle logic is identical across chain implementations.
type HostChain struct{}

// Open returns a handle over the host statistics. Opening cannot fail here;
// unavailable counters surface as lookup misses.
func (HostChain) Open() (Handle, error) {
	return hostHandle{}, nil
}

type hostHandle struct{}

func (hostHandle) Lookup(module string, instance int, name string) (*Stat, bool) {
	if module != ModuleUnix || instance != InstanceSystem || name != NameSystemMisc {
		return nil, false
	}
	uptime, err := host.Uptime()
	if err != nil {
		return nil, false
	}
	return &Stat{SnapTimeNanos: int64(uptime) * int64(1e9)}, true
}

func (hostHandle) Read(st *Stat) bool {
	if st == nil {
		return false
	}
	boot, err := host.BootTime()
	if err != nil {
		return false
	}
	if st.Data == nil {
		st.Data = make(map[string]int64, 1)
	}
	st.Data[DataBootTime] = int64(boot)
	return true
}

func (hostHandle) Close() {}
