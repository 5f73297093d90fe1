package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/eaobservatory/jcmt-itc-heterodyne/core"
	"github.com/eaobservatory/jcmt-itc-heterodyne/internal/api"
	"github.com/eaobservatory/jcmt-itc-heterodyne/internal/logging"
	"github.com/eaobservatory/jcmt-itc-heterodyne/internal/observability"
	"github.com/eaobservatory/jcmt-itc-heterodyne/registry"
)

func main() {
	addr := flag.String("addr", ":8080", "TCP address the calculation API listens on")
	metricsAddr := flag.String("metrics-addr", ":9090", "HTTP address for Prometheus /metrics")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	cfg := loadConfig(ctx, log, *addr, *metricsAddr)

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}

	collector, err := observability.NewCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}

	metricsSrv := serveMetrics(cfg.MetricsAddr, collector, log)

	reg, err := buildRegistry(cfg)
	if err != nil {
		log.Error(ctx, "failed to load receiver data", logging.String("error", err.Error()))
		os.Exit(1)
	}

	server := api.NewServer(core.New(reg), log, collector)
	apiSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Routes(),
	}

	log.Info(ctx, "starting calculation API server", logging.String("addr", cfg.Addr))
	go func() {
		if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "API server exited", logging.String("error", err.Error()))
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = apiSrv.Shutdown(shutdownCtx)
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)
}

func buildRegistry(cfg serverConfig) (*registry.Registry, error) {
	opts := registry.Options{}

	if cfg.ReceiverFile != "" {
		f, err := os.Open(cfg.ReceiverFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		receivers, err := registry.ReadReceivers(f)
		if err != nil {
			return nil, err
		}
		opts.Receivers = receivers
	}

	if cfg.OpacityFile != "" {
		f, err := os.Open(cfg.OpacityFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		opacity, err := registry.ReadOpacity(f)
		if err != nil {
			return nil, err
		}
		opts.Opacity = opacity
	}

	if opts.Receivers == nil && opts.Opacity == nil {
		return registry.Default()
	}
	return registry.New(opts)
}

func serveMetrics(addr string, collector *observability.Collector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.String("error", err.Error()))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
