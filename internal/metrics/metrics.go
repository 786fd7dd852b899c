// Package metrics counts completed HTTP requests and exposes the counters,
// together with Go runtime and process metrics, in the Prometheus text format.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	NameHTTPRequestsTotal = "http_requests_total"
	LabelMethod           = "method"
	LabelRoute            = "route"
	LabelStatusCode       = "status_code"
)

// Recorder receives one observation per completed request.
type Recorder interface {
	RecordRequest(method, route string, statusCode int)
}

// Collector owns a private registry. Create one per process and inject it.
type Collector struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

var _ Recorder = (*Collector)(nil)

func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requests := promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: NameHTTPRequestsTotal,
			Help: "Total number of HTTP requests",
		},
		[]string{LabelMethod, LabelRoute, LabelStatusCode},
	)

	return &Collector{
		registry: reg,
		requests: requests,
	}
}

func (c *Collector) RecordRequest(method, route string, statusCode int) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
}

// Register adds extra collectors, such as pool statistics, to the registry.
func (c *Collector) Register(cs ...prometheus.Collector) error {
	for _, col := range cs {
		if err := c.registry.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// Registry exposes the underlying registry for scraping and tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler renders a snapshot of every registered metric.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
