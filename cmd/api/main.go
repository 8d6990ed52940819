// Package main is the entry point for the trip planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/trip-planner/internal/ai"
	"github.com/pkordes/trip-planner/internal/config"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/interest"
	"github.com/pkordes/trip-planner/internal/metrics"
	"github.com/pkordes/trip-planner/internal/middleware"
	"github.com/pkordes/trip-planner/internal/narrative"
	"github.com/pkordes/trip-planner/internal/planner"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
	"github.com/pkordes/trip-planner/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		// goose drives database/sql, so it gets its own short-lived handle.
		sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to open migration connection", "error", err)
			os.Exit(1)
		}
		n, err := migrations.Up(ctx, sqlDB)
		_ = sqlDB.Close()
		if err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations applied", "count", n)
	}

	// --- Catalog ----------------------------------------------------------
	var catalog repo.CatalogRepo = repo.NewCatalogRepo(pool)
	if cfg.CatalogPreload {
		snap, err := repo.Snapshot(ctx, catalog)
		if err != nil {
			slog.Error("failed to preload catalog", "error", err)
			os.Exit(1)
		}
		slog.Info("catalog preloaded", "destinations", snap.Len())
		catalog = snap
	}

	// --- AI collaborators ---------------------------------------------------
	// Left as nil interfaces when no key is set; every consumer then uses its
	// deterministic fallback.
	var (
		fallback    planner.FallbackScorer
		expander    interest.Expander
		writer      narrative.Generator
		resolveOpts []interest.ResolverOption
	)
	if cfg.AI.Enabled() {
		client, err := ai.New(ai.Config{
			APIKey:    cfg.AI.APIKey,
			Model:     cfg.AI.Model,
			BaseURL:   cfg.AI.BaseURL,
			Timeout:   cfg.AI.Timeout,
			RateLimit: cfg.AI.RateLimit,
		}, logger)
		if err != nil {
			slog.Error("failed to create AI client", "error", err)
			os.Exit(1)
		}
		fallback, expander, writer = client, client, client
		// related keywords dilute keyword scores; only the fallback scorer
		// can recover the destinations they push below the strong threshold
		resolveOpts = append(resolveOpts, interest.WithRelatedKeywords())
		slog.Info("AI collaborators enabled", "model", cfg.AI.Model)
	} else {
		slog.Warn("OPENAI_API_KEY not set, using deterministic fallbacks")
	}

	// --- Services -----------------------------------------------------------
	resolver := interest.NewResolver(
		interest.DefaultTable(),
		expander,
		interest.NewCache(cfg.ExtractCache.TTL, cfg.ExtractCache.MaxEntries),
		logger,
		resolveOpts...,
	)
	ranker := planner.NewRanker(catalog, fallback, planner.Thresholds{
		StrongMatch:    cfg.Planner.StrongThreshold,
		FallbackAccept: cfg.Planner.FallbackAccept,
		FinalFloor:     cfg.Planner.FinalFloor,
	}, logger)
	sequencer := planner.NewSequencer(nil)

	plans := service.NewPlanService(catalog, resolver, ranker, sequencer, narrative.NewNarrator(writer, logger), logger)
	browse := service.NewCatalogService(catalog, sequencer.Regions())
	server := handler.NewServer(plans, browse, handler.Status{
		AIPowered: cfg.AI.Enabled(),
		Features:  features(cfg.AI.Enabled()),
	}, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → metrics → CORS → body limit → request deadline.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(chimiddleware.Timeout(45 * time.Second))

	server.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	// --- HTTP Server ------------------------------------------------------
	// WriteTimeout leaves room for a plan that waits on several model calls.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// features lists the capabilities reported by GET /health.
func features(aiEnabled bool) []string {
	out := []string{"Keyword interest matching", "Multi-day city planning", "Geographic sequencing"}
	if aiEnabled {
		out = append(out, "Semantic interest matching", "Activity-level AI matching", "AI day plans")
	}
	return out
}
