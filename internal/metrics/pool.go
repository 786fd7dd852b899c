package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	NamePoolTotalConns    = "db_pool_total_conns"
	NamePoolIdleConns     = "db_pool_idle_conns"
	NamePoolAcquiredConns = "db_pool_acquired_conns"
	NamePoolMaxConns      = "db_pool_max_conns"
)

// StatSource is satisfied by *pgxpool.Pool.
type StatSource interface {
	Stat() *pgxpool.Stat
}

// PoolCollectors reports the connection pool state at scrape time.
func PoolCollectors(src StatSource) []prometheus.Collector {
	gauge := func(name, help string, value func(s *pgxpool.Stat) int32) prometheus.Collector {
		return prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{Name: name, Help: help},
			func() float64 { return float64(value(src.Stat())) },
		)
	}

	return []prometheus.Collector{
		gauge(NamePoolTotalConns, "Connections currently open in the pool", (*pgxpool.Stat).TotalConns),
		gauge(NamePoolIdleConns, "Idle connections in the pool", (*pgxpool.Stat).IdleConns),
		gauge(NamePoolAcquiredConns, "Connections currently checked out of the pool", (*pgxpool.Stat).AcquiredConns),
		gauge(NamePoolMaxConns, "Maximum size of the pool", (*pgxpool.Stat).MaxConns),
	}
}
