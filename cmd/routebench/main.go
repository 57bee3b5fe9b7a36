// SPDX-License-Identifier: MIT
//
// Command routebench benchmarks A*, Dijkstra, the genetic optimizer, the
// hybrid planner and Yen's K-shortest ranking on one graph and prints a ranked
// report. Settings come from ROUTELAB_* variables (see package config).
//
// With ROUTELAB_METRICS_ADDR set, the process keeps serving /metrics after
// the report until it receives SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/chaithanyamandadi/routelab/benchmark"
	"github.com/chaithanyamandadi/routelab/config"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())
	if cfg.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	g, source, goal, err := loadGraph(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build graph")
	}
	log.Info().
		Str("dataset", cfg.Dataset).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Msg("graph ready")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	harness, err := benchmark.NewHarness(
		strategies(cfg, log.Logger),
		benchmark.WithLogger(log.Logger),
		benchmark.WithMetrics(reg),
		benchmark.WithParallel(cfg.Parallel),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create harness")
	}

	waitGroup, ctx := errgroup.WithContext(ctx)
	if cfg.MetricsAddr != "" {
		runMetricsServer(ctx, waitGroup, cfg.MetricsAddr, reg)
	}

	report, err := harness.Run(ctx, g, source, goal)
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
	if err := report.WriteText(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("cannot write report")
	}

	if cfg.MetricsAddr == "" {
		return
	}
	if err := waitGroup.Wait(); err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// runMetricsServer serves reg on addr until ctx is done.
func runMetricsServer(ctx context.Context, waitGroup *errgroup.Group, addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	waitGroup.Go(func() error {
		log.Info().Str("addr", addr).Msg("start metrics server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed to serve")
			return err
		}
		return nil
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown metrics server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown metrics server")
			return err
		}
		log.Info().Msg("metrics server is stopped")
		return nil
	})
}
