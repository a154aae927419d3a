package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sunstat/sunstat/internal/pstable"
	"github.com/sunstat/sunstat/internal/services"
)

// renderProcessTable formats process records as an aligned table in the
// order they were observed.
func renderProcessTable(recs []pstable.Record) string {
	if len(recs) == 0 {
		return "no processes\n"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PID\tPPID\tS\tUSER\tNLWP\tVSZ(KB)\tRSS(KB)\tTIME\tCOMMAND")
	for _, r := range recs {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			r.PID, r.ParentPID, r.State, r.User, r.Threads,
			r.VirtualSizeKB, r.ResidentSizeKB, r.CPUTime, r.Args)
	}
	_ = w.Flush()
	return sb.String()
}

// renderProcessDetail formats every field of one record.
func renderProcessDetail(r pstable.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "pid:       %d\n", r.PID)
	fmt.Fprintf(&sb, "ppid:      %d\n", r.ParentPID)
	fmt.Fprintf(&sb, "state:     %s\n", r.State)
	fmt.Fprintf(&sb, "user:      %s (%d)\n", r.User, r.UID)
	fmt.Fprintf(&sb, "group:     %s (%d)\n", r.Group, r.GID)
	fmt.Fprintf(&sb, "threads:   %d\n", r.Threads)
	fmt.Fprintf(&sb, "priority:  %d\n", r.Priority)
	fmt.Fprintf(&sb, "vsz:       %d KB\n", r.VirtualSizeKB)
	fmt.Fprintf(&sb, "rss:       %d KB\n", r.ResidentSizeKB)
	fmt.Fprintf(&sb, "elapsed:   %s\n", r.ElapsedTime)
	fmt.Fprintf(&sb, "cpu time:  %s\n", r.CPUTime)
	fmt.Fprintf(&sb, "command:   %s\n", r.Command)
	fmt.Fprintf(&sb, "args:      %s\n", r.Args)
	return sb.String()
}

// renderServiceTable formats service records in encounter order.
func renderServiceTable(recs []services.Record) string {
	if len(recs) == 0 {
		return "no services\n"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPID\tSTATE")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%d\t%s\n", r.Name, r.PID, r.State)
	}
	_ = w.Flush()
	return sb.String()
}

// renderUptime formats uptime and boot time; an unavailable boot time of 0
// still renders, per the engine's degrade-to-default behavior.
func renderUptime(uptimeSec, bootSec int64) string {
	up := time.Duration(uptimeSec) * time.Second
	boot := time.Unix(bootSec, 0).UTC()
	return fmt.Sprintf("uptime: %s\nbooted: %s\n", up, boot.Format(time.RFC3339))
}

// renderBootTime formats the boot instant alone, as epoch seconds and
// wall-clock time.
func renderBootTime(bootSec int64) string {
	boot := time.Unix(bootSec, 0).UTC()
	return fmt.Sprintf("booted: %s (%d)\n", boot.Format(time.RFC3339), bootSec)
}
