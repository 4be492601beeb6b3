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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/jichangee/ai-chat/internal/api"
	"github.com/jichangee/ai-chat/internal/client/bark"
	"github.com/jichangee/ai-chat/internal/client/responder"
	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/fanout"
	"github.com/jichangee/ai-chat/internal/infra"
	"github.com/jichangee/ai-chat/internal/metrics"
	"github.com/jichangee/ai-chat/internal/notify"
	"github.com/jichangee/ai-chat/internal/pkg/jwt"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
	"github.com/jichangee/ai-chat/internal/pkg/tx"
	"github.com/jichangee/ai-chat/internal/pkg/validator"
	"github.com/jichangee/ai-chat/internal/repository"
	"github.com/jichangee/ai-chat/internal/rest"
	"github.com/jichangee/ai-chat/internal/rss"
	"github.com/jichangee/ai-chat/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Level, cfg.Service.Name, cfg.Platform.Env, cfg.Logger.Console)

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
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	responderClient := responder.New(cfg)
	defer responderClient.Close()

	barkClient := bark.New(cfg)
	defer barkClient.Close()

	dispatcher := notify.New(store, barkClient, cfg, m)
	defer dispatcher.Wait()

	orchestrator := fanout.New(store, responderClient, dispatcher, cfg, m)
	chatService := service.New(store, orchestrator, cfg)
	poller := rss.NewPoller(store, rss.NewFetcher(cfg), dispatcher, cfg, m)
	sessions := jwt.New(cfg.Auth.Secret, cfg.Auth.CookieTTL)

	handler := rest.New(store, chatService, responderClient, dispatcher, poller, validator.New(), sessions, cfg)
	router := chi.NewRouter()

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(infra.MetricsHTTP(m))
	router.Use(infra.NewLimiterPool(cfg.Auth.VerifyRPS, cfg.Auth.VerifyBurst).LimitPath("/api/auth/verify"))
	router.Use(infra.AuthHTTP(cfg, sessions))
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(store)(next)
	})

	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: rest.ErrorHandler,
	})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Service.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("http server listening on %s", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	if cfg.RSS.Enabled {
		scheduler := rss.NewScheduler(ctx, poller, cfg)
		if err := scheduler.Start(); err != nil {
			logger.Error(fmt.Sprintf("failed to start rss scheduler: %v", err))
			os.Exit(1)
		}

		g.Go(func() error {
			<-gctx.Done()
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			scheduler.Stop(stopCtx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP shutdown error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
