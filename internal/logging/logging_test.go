package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunstat/sunstat/internal/config"
)

func TestNew_ConsoleWithBadLevelFallsBack(t *testing.T) {
	log := New(config.LogConfig{Level: "nope", Output: "console"})

	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(-1), "debug must stay disabled after fallback to info")
	assert.True(t, log.Core().Enabled(0), "info must be enabled")
}

func TestNew_FileOutputWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sunstat.log")
	log := New(config.LogConfig{
		Level:      "debug",
		Output:     "file",
		FilePath:   path,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	})

	log.Info("service inventory started")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "service inventory started")
}
