package app

import (
	"fmt"

	"github.com/ferdiebergado/notes/internal/config"
	"github.com/ferdiebergado/notes/internal/metrics"
	"github.com/ferdiebergado/notes/internal/platform/db"
	"github.com/ferdiebergado/notes/internal/platform/router"
	"github.com/ferdiebergado/notes/internal/platform/validation"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Provider holds the process-wide dependencies shared by every request.
type Provider struct {
	Executor  db.Executor
	Metrics   *metrics.Collector
	Validator validation.Validator
	Router    router.Router
}

func newProvider(cfg *config.Config, pool *pgxpool.Pool) (*Provider, error) {
	collector := metrics.New()
	if err := collector.Register(metrics.PoolCollectors(pool)...); err != nil {
		return nil, fmt.Errorf("register pool metrics: %w", err)
	}

	provider := &Provider{
		Executor:  db.NewGateway(pool, cfg.DB.AcquireTimeout),
		Metrics:   collector,
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
	}

	return provider, nil
}
