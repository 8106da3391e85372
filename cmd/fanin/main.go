// Package main runs the producer/consumer demo: four producers (by default)
// send a random tagged value every second and a single consumer prints
//
//	Consumer: Msg { idx: <n>, value: <n> }
//
// to stdout until the process receives SIGINT or SIGTERM. There are no flags;
// MATFAN_* environment variables tune producers, interval, logging and an
// optional Prometheus listener (see internal/config).
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/matfan/fanin"
	"github.com/katalvlaran/matfan/internal/config"
	"github.com/katalvlaran/matfan/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		logging.NewDefault().Error("Failed to load config", zap.Error(err))
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		logging.NewDefault().Error("Failed to build logger", zap.Error(err))
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := []fanin.Option{
		fanin.WithProducers(cfg.FanIn.Producers),
		fanin.WithInterval(cfg.FanIn.Interval),
		fanin.WithLogger(logger),
	}
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, fanin.WithRegisterer(reg))
		srv := serveMetrics(cfg.Metrics.Addr, reg, logger)
		defer func() {
			shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
			defer stop()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if err := fanin.Run(ctx, opts...); err != nil {
		logger.Error("Fan-in demo failed", zap.Error(err))
		return err
	}

	return nil
}

// serveMetrics exposes reg on addr/metrics in the background.
func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("Serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", zap.Error(err))
		}
	}()

	return srv
}
