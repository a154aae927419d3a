// sunstat inspects the live process table and service registry of a
// Unix-like host: process snapshots, parent/child trees, service
// classification and boot/uptime reporting.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/sunstat/sunstat/internal/config"
	"github.com/sunstat/sunstat/internal/inventory"
	"github.com/sunstat/sunstat/internal/logging"
	"github.com/sunstat/sunstat/internal/otel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	log := logging.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	tracer, cleanup, err := setupTracing(log)
	if err != nil {
		return err
	}
	defer cleanup()

	inv := inventory.New(cfg, nil, nil, log)
	return newRootCommand(inv, tracer).Execute()
}

// setupTracing initializes the OTLP tracer when an endpoint is configured.
// Without one, queries run untraced.
func setupTracing(log *zap.Logger) (trace.Tracer, func(), error) {
	otelCfg, err := config.ParseOTELConfig()
	if err != nil {
		return nil, nil, err
	}
	if !otelCfg.Enabled() {
		return nil, func() {}, nil
	}

	tp, err := otel.InitProvider(otelCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otel.ShutdownProvider(ctx, tp); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}
	return tp.Tracer("sunstat"), cleanup, nil
}
