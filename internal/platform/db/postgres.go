package db

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"

	"github.com/ferdiebergado/notes/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DSN builds a PostgreSQL connection URL from cfg. Credentials are escaped.
func DSN(cfg *config.DB) string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

// NewPostgresPool creates the connection pool. Connections are established
// lazily, so an unreachable database does not prevent startup.
func NewPostgresPool(ctx context.Context, cfg *config.DB) (*pgxpool.Pool, error) {
	slog.Info("Creating database connection pool...")

	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	poolCfg.MaxConnIdleTime = cfg.ConnMaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}

	slog.Info("Database connection pool created.", "db", cfg.Name, "host", cfg.Host, "max_conns", cfg.MaxConns)

	return pool, nil
}

// Ping checks that a connection to the database can be made within the
// configured ping timeout.
func Ping(ctx context.Context, pool *pgxpool.Pool, cfg *config.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.", "db", cfg.Name)
	return nil
}
