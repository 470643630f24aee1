// Command db2itx-probe opens transactions through the adapter and reports whether begin/commit works.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/n-r-w/db2itx"
	"github.com/n-r-w/db2itx/adapter"
	"github.com/n-r-w/db2itx/adapter/telemetry"
	"github.com/n-r-w/db2itx/native"
	"github.com/n-r-w/db2itx/native/pgxnative"
	"github.com/n-r-w/db2itx/native/sqlnative"
	"github.com/n-r-w/db2itx/txmgr"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "db2itx-probe.yaml", "Probe configuration file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger, err := db2itx.NewSlogLogger(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), cfg.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "probe failed: %v", err)
		os.Exit(1)
	}
}

func newDriver(cfg Config) native.IDriver {
	if cfg.Driver == driverSQL {
		opts := []sqlnative.Option{sqlnative.WithMaxIdleConns(0)}
		if cfg.SQLDriverName != "" {
			opts = append(opts, sqlnative.WithDriverName(cfg.SQLDriverName))
		}
		return sqlnative.New(opts...)
	}

	return pgxnative.New()
}

func run(ctx context.Context, cfg Config, logger db2itx.ILogger) (err error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	a := adapter.New(newDriver(cfg),
		adapter.WithName(cfg.Name),
		adapter.WithConnString(cfg.DSN),
		adapter.WithLogger(logger),
	)

	svc := telemetry.New(a, telemetry.NewOtelPrometheus(otel.Tracer(cfg.Name), prometheus.DefaultRegisterer))

	if err = svc.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if errStop := svc.Stop(context.WithoutCancel(ctx)); errStop != nil && err == nil {
			err = errStop
		}
	}()

	return probe(ctx, svc, cfg.Level(), cfg.Probes, logger)
}

// probe runs n concurrent begin/commit cycles.
func probe(ctx context.Context, a adapter.ITransactionAdapter, level txmgr.TransactionLevel, n int,
	logger db2itx.ILogger,
) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := range n {
		g.Go(func() error {
			tx, err := a.BeginTransaction(ctx, level)
			if err != nil {
				if tx != nil {
					release(ctx, a, tx, logger)
				}
				return fmt.Errorf("probe %d: %w", i, err)
			}

			if err = a.Commit(ctx, tx); err != nil {
				if db2itx.IsCommitError(err) {
					release(ctx, a, tx, logger)
				}
				return fmt.Errorf("probe %d: %w", i, err)
			}

			logger.Infof(ctx, "probe %d: %s transaction committed", i, level)
			return nil
		})
	}

	return g.Wait()
}

func release(ctx context.Context, a adapter.ITransactionAdapter, tx *adapter.Tx, logger db2itx.ILogger) {
	if err := a.Release(ctx, tx); err != nil {
		logger.Warningf(ctx, "release connection: %v", err)
	}
}
