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

	"employee-directory/internal/config"
	"employee-directory/internal/database"
	"employee-directory/internal/handlers"
	"employee-directory/internal/logging"
	"employee-directory/internal/repository"
	"employee-directory/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger, lerr := logging.New("error", "json")
		if lerr != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		logger.Error("employee app stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run loads configuration, opens the pool and serves until ctx is cancelled.
// Configuration errors return before the database is touched or a listener
// is bound.
func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded", zap.String("config", cfg.String()))
	switch {
	case cfg.Theme.BackgroundImageURL == "":
		logger.Warn("no background image configured")
	case !cfg.Theme.BackgroundImageRenderable():
		logger.Warn("background image URL is not an http(s) URL, using static copy",
			zap.String("url", cfg.Theme.BackgroundImageURL),
			zap.String("fallback", config.DefaultBackgroundImage))
	}

	gin.SetMode(cfg.GinMode)

	created, err := utils.EnsureDir(cfg.StaticDir)
	if err != nil {
		return err
	}
	if created {
		logger.Info("created static directory", zap.String("dir", cfg.StaticDir))
	}

	db, err := database.Open(&cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("database connection close failed", zap.Error(err))
		}
	}()

	repo := repository.NewEmployeeRepository(db, logger)
	ping := func(ctx context.Context) error { return database.Ping(ctx, db) }
	router, err := handlers.NewRouter(cfg, handlers.NewHandler(repo, ping, cfg, logger), logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			zap.String("address", cfg.ListenAddr),
			zap.String("color", cfg.Theme.Color))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	logger.Info("graceful shutdown completed")
	return nil
}
