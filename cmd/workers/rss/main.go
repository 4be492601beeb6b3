package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/jichangee/ai-chat/internal/client/bark"
	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/metrics"
	"github.com/jichangee/ai-chat/internal/notify"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
	"github.com/jichangee/ai-chat/internal/repository"
	"github.com/jichangee/ai-chat/internal/rss"
)

const shutdownTimeout = 15 * time.Second

// The worker polls feeds on RSS_SCHEDULE and serves /metrics on SERVICE_PORT.
func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Level, cfg.Service.Name+"-rss", cfg.Platform.Env, cfg.Logger.Console)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open store: %v", err))
		os.Exit(1)
	}
	defer store.Close()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	barkClient := bark.New(cfg)
	defer barkClient.Close()

	dispatcher := notify.New(store, barkClient, cfg, m)
	defer dispatcher.Wait()

	poller := rss.NewPoller(store, rss.NewFetcher(cfg), dispatcher, cfg, m)
	scheduler := rss.NewScheduler(ctx, poller, cfg)
	if err := scheduler.Start(); err != nil {
		logger.Error(fmt.Sprintf("failed to start rss scheduler: %v", err))
		os.Exit(1)
	}
	logger.Info(fmt.Sprintf("rss worker scheduled with %q", cfg.RSS.Schedule))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Service.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		scheduler.Stop(shutdownCtx)
		return metricsServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("worker error: %v", err))
	}
}
