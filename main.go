package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/visits"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := projects.NewClient(cfg.APIBaseURL, projects.WithTimeout(cfg.FetchTimeout))

	opts := server.Options{
		Addr:       cfg.Addr(),
		Profile:    profile(cfg.Profile),
		Source:     client,
		AdminToken: cfg.AdminToken,
		Logger:     logger,
	}

	if cfg.TrackVisitors {
		store, hasher, err := initVisitorTracking(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to initialize visitor tracking", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		opts.Visits = store
		opts.Hasher = hasher
	}

	srv, err := server.New(opts)
	if err != nil {
		logger.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	logger.Info("Projects API", "url", client.URL())
	if err := srv.Run(ctx); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// initVisitorTracking opens the visit store and drops visits past retention
func initVisitorTracking(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*visits.Store, *visits.Hasher, error) {
	store, err := visits.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}

	hasher, err := visits.NewRandomHasher()
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	go func() {
		removed, err := store.Cleanup(ctx, time.Now().Add(-cfg.VisitRetention))
		if err != nil {
			logger.Error("Error cleaning up old visitor data", "error", err)
			return
		}
		if removed > 0 {
			logger.Info("Privacy cleanup: removed old visitor records", "count", removed)
		}
	}()

	logger.Info("Privacy: visitor tracking enabled with hashed IP addresses", "db", cfg.DatabasePath)
	return store, hasher, nil
}
