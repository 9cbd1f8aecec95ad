// @title VCT Player Cluster Dashboard API
// @version 1.0
// @description Cluster, team and tournament views over clustered VCT player statistics, plus cluster prediction for new players.
// @BasePath /api/v1
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

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/vctstats/cluster-dashboard/docs"
	"github.com/vctstats/cluster-dashboard/internal/config"
	"github.com/vctstats/cluster-dashboard/internal/handlers"
	"github.com/vctstats/cluster-dashboard/internal/inference"
	"github.com/vctstats/cluster-dashboard/internal/logging"
	"github.com/vctstats/cluster-dashboard/internal/logic"
	"github.com/vctstats/cluster-dashboard/internal/session"
	"github.com/vctstats/cluster-dashboard/internal/worker"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Options{
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logging:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Sugar().Errorw("Server stopped", "error", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := session.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer s.Close()

	views := worker.Views{
		Options:    logic.NewOptionsService(s, s.Cache, logger),
		Overview:   logic.NewOverviewService(s, s.Cache, logger, cfg.HistogramBins),
		TeamStats:  logic.NewTeamStatsService(s, s.Cache, logger),
		Tournament: logic.NewTournamentService(s, s.Cache, logger),
	}
	h := handlers.New(handlers.Config{
		Readiness:  s,
		Logger:     logger,
		Options:    views.Options,
		Overview:   views.Overview,
		TeamStats:  views.TeamStats,
		Tournament: views.Tournament,
		Prediction: logic.NewPredictionService(inference.NewPredictor(s.Models), logger),
	})

	if ds, err := s.Dataset(); err == nil && cfg.WarmCache {
		jobs := worker.WarmupJobs(ds, views)
		pool := worker.NewPool(worker.PoolConfig{WorkerCount: cfg.WarmWorkers, QueueSize: len(jobs), Logger: logger})
		pool.Start(ctx)
		defer pool.Stop()

		accepted := worker.Warm(pool, jobs)
		go func() {
			start := time.Now()
			pool.Drain()
			logger.Sugar().Infow("View cache warmed", "jobs", accepted, "duration", time.Since(start))
		}()
	}

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: h.Router(handlers.RouterConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
		}),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Sugar().Infow("Starting HTTP server",
			"addr", srv.Addr,
			"env", cfg.Env,
			"dataset_source", cfg.DatasetSource,
			"model_path", cfg.ModelPath,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Sugar().Infow("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
