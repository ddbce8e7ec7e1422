// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service
// packages.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"permitgate/internal/application"
	applicationstore "permitgate/internal/application/store"
	"permitgate/internal/audit"
	"permitgate/internal/platform/config"
	"permitgate/internal/platform/httpserver"
	"permitgate/internal/platform/logger"
	"permitgate/internal/platform/middleware"
	"permitgate/internal/platform/postgres"
	platformredis "permitgate/internal/platform/redis"
	"permitgate/internal/screening"
	"permitgate/internal/screening/adapters"
	screeninghandler "permitgate/internal/screening/handler"
	screeningmetrics "permitgate/internal/screening/metrics"
	"permitgate/internal/watchlist"
	watchlisthandler "permitgate/internal/watchlist/handler"
	watchlistmetrics "permitgate/internal/watchlist/metrics"
	watchliststore "permitgate/internal/watchlist/store"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Audit sink: Kafka when seeds are configured, in-memory otherwise. A
	// worker drains events off a buffered inbox so request handling never
	// waits on the sink.
	var auditSink audit.Store
	if len(cfg.Kafka.Seeds) > 0 {
		kafkaStore, err := audit.NewKafkaStore(ctx, cfg.Kafka)
		if err != nil {
			log.Error("kafka audit store init failed", "error", err)
			os.Exit(1)
		}
		defer kafkaStore.Close()
		auditSink = kafkaStore
	} else {
		log.Warn("kafka not configured, audit events stay in memory")
		auditSink = audit.NewMemoryStore()
	}
	auditInbox := make(chan audit.Event, 256)
	go func() {
		if err := audit.NewWorker(auditSink, auditInbox, log).Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("audit worker stopped", "error", err)
		}
	}()
	auditPub := audit.NewPublisher(audit.NewChannelStore(auditInbox), log)

	// Stores: Postgres by default, in-memory for local development.
	var (
		wlStore  watchlist.Store
		appStore application.Store
	)
	if os.Getenv("STORE_BACKEND") == "memory" {
		wlStore = watchliststore.NewMemory()
		appStore = applicationstore.NewMemory()
	} else {
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			log.Error("postgres init failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		wlStore = watchliststore.NewPostgres(db)
		appStore = applicationstore.NewPostgres(db)
	}

	wlMetrics := watchlistmetrics.New()

	// Watchlist read cache, only when Redis is configured.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		wlStore = watchliststore.NewCached(wlStore, redisClient.Client, cfg.Screening.WatchlistCacheTTL, log, wlMetrics)
	}

	wlService, err := watchlist.NewService(wlStore, auditPub, log, wlMetrics)
	if err != nil {
		log.Error("watchlist service init failed", "error", err)
		os.Exit(1)
	}

	scrService, err := screening.NewService(
		adapters.NewWatchlistAdapter(wlStore),
		adapters.NewApplicationAdapter(appStore),
		cfg.Screening,
		auditPub,
		log,
		screeningmetrics.New(),
	)
	if err != nil {
		log.Error("screening service init failed", "error", err)
		os.Exit(1)
	}

	adminOnly := middleware.AdminAuth(cfg.Server.JWTSigningKey, cfg.Server.AdminAPIKeyHash)

	r := chi.NewRouter()
	r.Use(middleware.Metadata)
	screeninghandler.New(scrService, log).Register(r)
	watchlisthandler.New(wlService, log).Register(r, adminOnly)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Server.Addr, r)

	log.Info("starting permitgate", "addr", cfg.Server.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
