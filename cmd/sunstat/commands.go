package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sunstat/sunstat/internal/filter"
	"github.com/sunstat/sunstat/internal/inventory"
)

// newRootCommand assembles the CLI over one Inventory.
func newRootCommand(inv *inventory.Inventory, tracer trace.Tracer) *cobra.Command {
	root := &cobra.Command{
		Use:          "sunstat",
		Short:        "process and service inventory",
		Long:         "sunstat takes point-in-time snapshots of the host's process table and service registry.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newPSCommand(inv, tracer),
		newProcCommand(inv, tracer),
		newChildrenCommand(inv, tracer),
		newDescendantsCommand(inv, tracer),
		newServicesCommand(inv, tracer),
		newUptimeCommand(inv, tracer),
		newBootCommand(inv, tracer),
		newCountsCommand(inv, tracer),
	)
	return root
}

// traced runs fn inside a span when tracing is configured.
func traced(tracer trace.Tracer, name string, attrs []attribute.KeyValue, fn func() error) error {
	if tracer == nil {
		return fn()
	}
	_, span := tracer.Start(context.Background(), name, trace.WithAttributes(attrs...))
	defer span.End()

	if err := fn(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func newPSCommand(inv *inventory.Inventory, tracer trace.Tracer) *cobra.Command {
	var filterExpr string

	cmd := &cobra.Command{
		Use:   "ps",
		Short: "list all processes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return traced(tracer, "sunstat.ps", nil, func() error {
				recs := inv.Processes()
				if filterExpr != "" {
					pred, err := filter.Compile(filterExpr)
					if err != nil {
						return err
					}
					recs = pred.Apply(recs)
				}
				cmd.Print(renderProcessTable(recs))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&filterExpr, "filter", "",
		`boolean expression over process fields, e.g. 'Command == "httpd" && Threads > 4'`)
	return cmd
}

func newProcCommand(inv *inventory.Inventory, tracer trace.Tracer) *cobra.Command {
	return &cobra.Command{
		Use:   "proc <pid>",
		Short: "show one process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}
			return traced(tracer, "sunstat.proc", pidAttrs(pid), func() error {
				rec := inv.Process(pid)
				if rec == nil {
					cmd.Printf("no process with pid %d\n", pid)
					return nil
				}
				cmd.Print(renderProcessDetail(*rec))
				return nil
			})
		},
	}
}

func newChildrenCommand(inv *inventory.Inventory, tracer trace.Tracer) *cobra.Command {
	return &cobra.Command{
		Use:   "children <pid>",
		Short: "list direct children of a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}
			return traced(tracer, "sunstat.children", pidAttrs(pid), func() error {
				cmd.Print(renderProcessTable(inv.ChildProcesses(pid)))
				return nil
			})
		},
	}
}

func newDescendantsCommand(inv *inventory.Inventory, tracer trace.Tracer) *cobra.Command {
	return &cobra.Command{
		Use:   "descendants <pid>",
		Short: "list the full descendant closure of a process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePID(args[0])
			if err != nil {
				return err
			}
			return traced(tracer, "sunstat.descendants", pidAttrs(pid), func() error {
				cmd.Print(renderProcessTable(inv.DescendantProcesses(pid)))
				return nil
			})
		},
	}
}

func newServicesCommand(inv *inventory.Inventory, tracer trace.Tracer) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "list services from the live and legacy registries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return traced(tracer, "sunstat.services", nil, func() error {
				cmd.Print(renderServiceTable(inv.Services()))
				return nil
			})
		},
	}
}

func newUptimeCommand(inv *inventory.Inventory, tracer trace.Tracer) *cobra.Command {
	return &cobra.Command{
		Use:   "uptime",
		Short: "show system uptime and boot time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return traced(tracer, "sunstat.uptime", nil, func() error {
				cmd.Print(renderUptime(inv.UptimeSeconds(), inv.BootTimeSeconds()))
				return nil
			})
		},
	}
}

func newBootCommand(inv *inventory.Inventory, tracer trace.Tracer) *cobra.Command {
	return &cobra.Command{
		Use:   "boot",
		Short: "show the system boot time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return traced(tracer, "sunstat.boot", nil, func() error {
				cmd.Print(renderBootTime(inv.BootTimeSeconds()))
				return nil
			})
		},
	}
}

func newCountsCommand(inv *inventory.Inventory, tracer trace.Tracer) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "show process and thread counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return traced(tracer, "sunstat.counts", nil, func() error {
				cmd.Printf("processes: %d\nthreads:   %d\n", inv.ProcessCount(), inv.ThreadCount())
				return nil
			})
		},
	}
}

func parsePID(s string) (int, error) {
	pid, err := strconv.Atoi(s)
	if err != nil || pid < 0 {
		return 0, fmt.Errorf("invalid pid %q", s)
	}
	return pid, nil
}

func pidAttrs(pid int) []attribute.KeyValue {
	return []attribute.KeyValue{attribute.Int("process.pid", pid)}
}
