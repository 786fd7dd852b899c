// Package dbtest starts disposable PostgreSQL servers for integration tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/ferdiebergado/notes/internal/config"
	"github.com/ferdiebergado/notes/internal/platform/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	image    = "docker.io/postgres:16-alpine"
	dbName   = "notesdb"
	user     = "postgres"
	password = "password"
)

// Config starts a PostgreSQL container and returns the settings to reach it.
// The container is terminated when the test ends.
func Config(t *testing.T) *config.DB {
	t.Helper()

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err, "start postgres container")

	host, err := ctr.Host(ctx)
	require.NoError(t, err, "container host")

	port, err := ctr.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err, "container port")

	return &config.DB{
		Host:            host,
		Port:            port.Int(),
		User:            user,
		Password:        password,
		Name:            dbName,
		SSLMode:         "disable",
		MaxConns:        10,
		AcquireTimeout:  5 * time.Second,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
		PingTimeout:     5 * time.Second,
	}
}

// Pool opens a pool on a fresh container using cfg overrides applied by fn.
func Pool(t *testing.T, fn func(cfg *config.DB)) (*pgxpool.Pool, *config.DB) {
	t.Helper()

	cfg := Config(t)
	if fn != nil {
		fn(cfg)
	}

	pool, err := db.NewPostgresPool(context.Background(), cfg)
	require.NoError(t, err, "create pool")
	t.Cleanup(pool.Close)

	require.NoError(t, db.Ping(context.Background(), pool, cfg), "ping database")

	return pool, cfg
}

// Gateway returns a gateway on a fresh container with the notes table in place.
func Gateway(t *testing.T) *db.Gateway {
	t.Helper()

	pool, cfg := Pool(t, nil)
	gw := db.NewGateway(pool, cfg.AcquireTimeout)
	require.NoError(t, db.BootstrapSchema(context.Background(), gw), "bootstrap schema")

	return gw
}
