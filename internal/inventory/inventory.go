// Package inventory is the engine facade: point-in-time process and
// service queries over the injected command source and statistics chain.
//
// Every query is an independent snapshot. Two successive calls observe the
// system at different instants, so a process returned by one call may be
// gone before a dependent call runs; such a follow-up simply returns an
// empty result. The only state shared across queries is the cached boot
// time.
package inventory

import (
	"os"

	"go.uber.org/zap"

	"github.com/sunstat/sunstat/internal/config"
	"github.com/sunstat/sunstat/internal/execcmd"
	"github.com/sunstat/sunstat/internal/kstat"
	"github.com/sunstat/sunstat/internal/proctree"
	"github.com/sunstat/sunstat/internal/pstable"
	"github.com/sunstat/sunstat/internal/services"
)

// Inventory answers process, service and timing queries.
type Inventory struct {
	src               execcmd.Source
	ps                *pstable.Builder
	tree              *proctree.Index
	svcs              *services.Inventory
	oracle            *kstat.Oracle
	threadListCommand string
	log               *zap.Logger
}

// New wires an Inventory from its collaborators. A nil src defaults to
// running real commands, a nil chain to the host statistics chain, and a
// nil log disables logging.
func New(cfg *config.Config, src execcmd.Source, chain kstat.Chain, log *zap.Logger) *Inventory {
	if log == nil {
		log = zap.NewNop()
	}
	if src == nil {
		src = execcmd.NewRunner(log)
	}
	if chain == nil {
		chain = kstat.HostChain{}
	}
	return &Inventory{
		src:               src,
		ps:                pstable.NewBuilder(src, cfg.ListAllCommand, cfg.ListPIDCommand, log),
		tree:              proctree.NewIndex(src, cfg.ChildrenCommand),
		svcs:              services.NewInventory(src, cfg.ServiceStatusCommand, cfg.LegacyServiceDir, nil, log),
		oracle:            kstat.NewOracle(chain, nil, log),
		threadListCommand: cfg.ThreadListCommand,
		log:               log,
	}
}

// Processes returns every process in one snapshot, in listing order.
func (inv *Inventory) Processes() []pstable.Record {
	return inv.ps.List()
}

// Process returns the record for pid, or nil when no such process exists.
func (inv *Inventory) Process(pid int) *pstable.Record {
	return inv.ps.ByPID(pid)
}

// ChildProcesses returns full records for the direct children of
// parentPid. An empty child set short-circuits without a listing query.
func (inv *Inventory) ChildProcesses(parentPid int) []pstable.Record {
	return inv.ps.ByPIDs(inv.tree.Children(parentPid))
}

// DescendantProcesses returns full records for the complete descendant
// closure of parentPid, computed over a single full snapshot.
func (inv *Inventory) DescendantProcesses(parentPid int) []pstable.Record {
	return inv.ps.ByPIDs(proctree.Descendants(inv.ps.List(), parentPid))
}

// Services returns all service records, live and legacy, in encounter
// order.
func (inv *Inventory) Services() []services.Record {
	return inv.svcs.Services()
}

// UptimeSeconds returns seconds since boot, 0 when unavailable.
func (inv *Inventory) UptimeSeconds() int64 {
	return inv.oracle.UptimeSeconds()
}

// BootTimeSeconds returns the boot instant as Unix-epoch seconds, cached
// after the first call.
func (inv *Inventory) BootTimeSeconds() int64 {
	return inv.oracle.BootTimeSeconds()
}

// ProcessCount returns the number of processes in a fresh snapshot.
func (inv *Inventory) ProcessCount() int {
	return len(inv.ps.List())
}

// ThreadCount returns the system thread count from the per-thread listing,
// subtracting the header line. An empty listing falls back to the process
// count.
func (inv *Inventory) ThreadCount() int {
	lines := inv.src.Run(inv.threadListCommand)
	if len(lines) > 0 {
		return len(lines) - 1
	}
	return inv.ProcessCount()
}

// OwnPID returns the calling process's pid.
func (inv *Inventory) OwnPID() int {
	return os.Getpid()
}
