package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/notes/internal/config"
	"github.com/ferdiebergado/notes/internal/pkg/logging"
	"github.com/ferdiebergado/notes/internal/platform/db"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	envFile       = ".env"
	envProduction = "production"
)

// Options are the command-line overrides applied on top of the environment.
type Options struct {
	LogLevel string
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context, opts Options) error {
	cfg, err := setup(opts)
	if err != nil {
		return err
	}

	pool, err := db.NewPostgresPool(ctx, &cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := bootstrapSchema(ctx, pool, &cfg.DB); err != nil {
		return err
	}

	provider, err := newProvider(cfg, pool)
	if err != nil {
		return err
	}

	api := New(cfg, provider, Middlewares(provider.Metrics))
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// RunSchema creates the notes table and exits.
func RunSchema(ctx context.Context, opts Options) error {
	cfg, err := setup(opts)
	if err != nil {
		return err
	}

	pool, err := db.NewPostgresPool(ctx, &cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool, &cfg.DB); err != nil {
		return err
	}

	return db.BootstrapSchema(ctx, db.NewGateway(pool, cfg.DB.AcquireTimeout))
}

func setup(opts Options) (*config.Config, error) {
	slog.Info("Initializing...")

	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	logging.SetupLogger(cfg.Env, cfg.LogLevel, os.Stdout)

	return cfg, nil
}

// loadEnvFile loads name into the environment outside production. A missing
// file is not an error.
func loadEnvFile(name string) error {
	if os.Getenv("ENV") == envProduction {
		return nil
	}

	if _, err := os.Stat(name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}

	if err := env.Load(name); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// bootstrapSchema ensures the notes table exists. A failure stops startup only
// when fail-fast is configured; otherwise the server starts degraded and
// requests fail until the database is reachable.
func bootstrapSchema(ctx context.Context, pool *pgxpool.Pool, cfg *config.DB) error {
	err := db.Ping(ctx, pool, cfg)
	if err == nil {
		err = db.BootstrapSchema(ctx, db.NewGateway(pool, cfg.AcquireTimeout))
	}
	if err == nil {
		return nil
	}

	if cfg.BootstrapFailFast {
		return fmt.Errorf("initialize database: %w", err)
	}

	slog.Error("Database initialization failed, continuing without it.", "reason", err)
	return nil
}
