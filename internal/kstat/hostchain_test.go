package kstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostChain_LookupMissesUnknownTriples(t *testing.T) {
	h, err := HostChain{}.Open()
	require.NoError(t, err)
	defer h.Close()

	_, ok := h.Lookup("cpu", 0, "sys")
	assert.False(t, ok)

	_, ok = h.Lookup(ModuleUnix, 1, NameSystemMisc)
	assert.False(t, ok)

	_, ok = h.Lookup(ModuleUnix, InstanceSystem, "vminfo")
	assert.False(t, ok)
}

func TestHostChain_SystemMisc(t *testing.T) {
	h, err := HostChain{}.Open()
	require.NoError(t, err)
	defer h.Close()

	st, ok := h.Lookup(ModuleUnix, InstanceSystem, NameSystemMisc)
	if !ok {
		t.Skip("host statistics unavailable in this environment")
	}
	assert.Positive(t, st.SnapTimeNanos)

	require.True(t, h.Read(st))
	boot, ok := st.DataLookup(DataBootTime)
	require.True(t, ok)
	assert.Positive(t, boot)
}

func TestHostChain_ReadNilStat(t *testing.T) {
	h, err := HostChain{}.Open()
	require.NoError(t, err)
	defer h.Close()

	assert.False(t, h.Read(nil))
}
