// Package metrics exposes Prometheus instrumentation for the instruction
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Collector records per-instruction outcomes.
type Collector struct {
	processed *prometheus.CounterVec
	duration  prometheus.Histogram
}

// New registers the pipeline collectors on reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		processed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_instructions_total",
			Help: "Processed payment instructions by outcome status and status code.",
		}, []string{"status", "status_code"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "payment_instruction_duration_seconds",
			Help:    "Wall time spent interpreting one instruction.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveInstruction records one terminal pipeline outcome.
func (c *Collector) ObserveInstruction(status, statusCode string, elapsed time.Duration) {
	c.processed.WithLabelValues(status, statusCode).Inc()
	c.duration.Observe(elapsed.Seconds())
}

// Handler serves the registry in Prometheus text format over fasthttp.
func Handler(reg *prometheus.Registry) fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)
}
