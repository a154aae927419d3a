// Package config holds environment-driven configuration for the inventory
// engine: the enumeration command strings, the legacy service directory and
// logging options.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full engine configuration, parsed from the environment.
// The command defaults match the documented column layouts; overriding them
// changes where the text comes from, not how it is parsed.
type Config struct {
	// ListAllCommand lists every process in the 15-column layout.
	ListAllCommand string `env:"SUNSTAT_PS_ALL_COMMAND" envDefault:"ps -eo s,pid,ppid,user,uid,group,gid,nlwp,pri,vsz,rss,etime,time,comm,args"`
	// ListPIDCommand is the constrained listing; a pid or comma-joined pid
	// list is appended verbatim.
	ListPIDCommand string `env:"SUNSTAT_PS_PID_COMMAND" envDefault:"ps -o s,pid,ppid,user,uid,group,gid,nlwp,pri,vsz,rss,etime,time,comm,args -p "`
	// ChildrenCommand queries direct children by parent pid, appended
	// verbatim.
	ChildrenCommand string `env:"SUNSTAT_CHILDREN_COMMAND" envDefault:"pgrep -P "`
	// ThreadListCommand lists one line per thread plus a header.
	ThreadListCommand string `env:"SUNSTAT_THREAD_LIST_COMMAND" envDefault:"ps -eLo pid"`
	// ServiceStatusCommand is the service-manager status listing.
	ServiceStatusCommand string `env:"SUNSTAT_SERVICE_STATUS_COMMAND" envDefault:"svcs -p"`
	// LegacyServiceDir is the historical init-script directory.
	LegacyServiceDir string `env:"SUNSTAT_LEGACY_SERVICE_DIR" envDefault:"/etc/init.d"`

	Log LogConfig
}

// LogConfig configures the zap logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `env:"SUNSTAT_LOG_LEVEL" envDefault:"info"`
	// Output is one of console, file, both.
	Output string `env:"SUNSTAT_LOG_OUTPUT" envDefault:"console"`
	// FilePath is the log file location for file output.
	FilePath string `env:"SUNSTAT_LOG_FILE" envDefault:"sunstat.log"`
	// MaxSizeMB is the rotation threshold per file.
	MaxSizeMB int `env:"SUNSTAT_LOG_MAX_SIZE_MB" envDefault:"50"`
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `env:"SUNSTAT_LOG_MAX_BACKUPS" envDefault:"3"`
	// MaxAgeDays is the retention period for rotated files.
	MaxAgeDays int `env:"SUNSTAT_LOG_MAX_AGE_DAYS" envDefault:"14"`
}

// Parse reads the configuration from environment variables.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
