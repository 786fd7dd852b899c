package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrQueryFailed         = errors.New("db: query failed")
	ErrConstraintViolation = errors.New("db: constraint violation")
	ErrPoolExhausted       = errors.New("db: connection pool exhausted")
)

// SQLSTATE class for integrity constraint violations.
const constraintViolationClass = "23"

// Row is a single result row keyed by column name.
type Row map[string]any

// Executor runs a parameterized statement and returns its result rows.
// Arguments are bound positionally to $1..$n and never interpolated into query.
type Executor interface {
	Execute(ctx context.Context, query string, args ...any) ([]Row, error)
}

// Gateway executes statements on connections borrowed from a bounded pool.
type Gateway struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

var _ Executor = (*Gateway)(nil)

func NewGateway(pool *pgxpool.Pool, acquireTimeout time.Duration) *Gateway {
	return &Gateway{
		pool:           pool,
		acquireTimeout: acquireTimeout,
	}
}

func (g *Gateway) Execute(ctx context.Context, query string, args ...any) ([]Row, error) {
	conn, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, queryError(err)
	}

	result, err := pgx.CollectRows(rows, rowToRow)
	if err != nil {
		return nil, queryError(err)
	}

	return result, nil
}

// acquire waits for a free connection for at most the acquire timeout.
func (g *Gateway) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, g.acquireTimeout)
	defer cancel()

	conn, err := g.pool.Acquire(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, fmt.Errorf("%w: no connection available after %s", ErrPoolExhausted, g.acquireTimeout)
		}
		return nil, fmt.Errorf("%w: acquire connection: %w", ErrQueryFailed, err)
	}

	return conn, nil
}

func rowToRow(row pgx.CollectableRow) (Row, error) {
	m, err := pgx.RowToMap(row)
	if err != nil {
		return nil, err
	}
	return Row(m), nil
}

func queryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == constraintViolationClass {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	return fmt.Errorf("%w: %w", ErrQueryFailed, err)
}
