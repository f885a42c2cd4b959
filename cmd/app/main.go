package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clanfrenzy/frenzybot/internal/catalog"
	"github.com/clanfrenzy/frenzybot/internal/concurrency"
	"github.com/clanfrenzy/frenzybot/internal/config"
	"github.com/clanfrenzy/frenzybot/internal/database"
	"github.com/clanfrenzy/frenzybot/internal/database/postgres"
	"github.com/clanfrenzy/frenzybot/internal/event"
	"github.com/clanfrenzy/frenzybot/internal/handler"
	"github.com/clanfrenzy/frenzybot/internal/logger"
	"github.com/clanfrenzy/frenzybot/internal/metrics"
	"github.com/clanfrenzy/frenzybot/internal/participant"
	"github.com/clanfrenzy/frenzybot/internal/scheduler"
	"github.com/clanfrenzy/frenzybot/internal/server"
	"github.com/clanfrenzy/frenzybot/internal/submission"
	"github.com/clanfrenzy/frenzybot/internal/worker"
)

const (
	workerCount     = 2
	workerQueueSize = 16
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if err := config.ValidateEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	handler.InitValidator()

	// Database
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	catalogRepo := postgres.NewCatalogRepository(pool)
	participantRepo := postgres.NewParticipantRepository(pool)

	// Event bus with metrics collection
	bus := event.NewMemoryBus()
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		slog.Error("Failed to register event metrics collector", "error", err)
		os.Exit(1)
	}

	// Services. One lock manager across both: acceptances and the periodic
	// recalculation pass serialize per team on the same locks.
	locks := concurrency.NewLockManager()
	catalogService := catalog.NewService(catalogRepo)
	submissionService := submission.NewService(catalogRepo, participantRepo, catalogService, bus, locks)
	participantService := participant.NewService(participantRepo, catalogRepo, catalogService, bus, locks)

	// Periodic recalculation
	workerPool := worker.NewPool(workerCount, workerQueueSize)
	workerPool.Start()
	defer workerPool.Stop()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.RecalcInterval, worker.NewRecalculationJob(participantService))
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool,
		catalogService, submissionService, participantService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		logger.DefaultVersion,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
