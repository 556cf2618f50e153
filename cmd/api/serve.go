package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "puppy-growth/internal/adapters/storage/postgres"
	"puppy-growth/internal/domain/feeding"
	"puppy-growth/internal/platform/config"
	"puppy-growth/internal/platform/logger"
	"puppy-growth/internal/platform/metrics"
	"puppy-growth/internal/router"

	"github.com/spf13/cobra"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := openDB(ctx, cfg.DB.DSN, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	guides, err := feeding.LoadStaticGuides(cfg.Feeding.GuidesPath)
	if err != nil {
		return fmt.Errorf("load static guides: %w", err)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier:        nil, // sin verifier para modo dev
		DB:                  db,
		Logger:              log,
		Metrics:             metrics.New(),
		StaticGuides:        guides,
		DefaultHorizonWeeks: cfg.Growth.DefaultHorizonWeeks,
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr, "postgres": db != nil})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openDB devuelve nil sin DSN (repos in-memory).
func openDB(ctx context.Context, dsn string, log logger.Logger) (*sql.DB, error) {
	if dsn == "" {
		log.Info("no DB_DSN, using in-memory storage", nil)
		return nil, nil
	}

	db, err := pg.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pg.EnsureSchema(schemaCtx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return db, nil
}
