package metrics

import (
	"strconv"
	"time"

	"url-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "url_reconciler"

var _ reconcile.Observer = (*Metrics)(nil)

// Metrics holds the collectors for one registry.
type Metrics struct {
	FetchWarnings   *prometheus.CounterVec
	Mismatches      *prometheus.CounterVec
	ArchiveSkips    prometheus.Counter
	Batches         prometheus.Counter
	PairsResolved   prometheus.Counter
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FetchWarnings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_warnings_total",
				Help:      "Total number of failed fetches and non-2xx responses.",
			},
			[]string{"side", "kind"}, // kind: error, non_2xx
		),
		Mismatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mismatches_total",
				Help:      "Total number of mismatching pairs.",
			},
			[]string{"reason"},
		),
		ArchiveSkips: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "archive_skipped_total",
				Help:      "Total number of pairs exempted as archive mirrors.",
			},
		),
		Batches: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "batches_total",
				Help:      "Total number of lockstep batches processed.",
			},
		),
		PairsResolved: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pairs_resolved_total",
				Help:      "Total number of aligned pairs resolved.",
			},
		),
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
			},
			[]string{"method", "path", "status"},
		),
	}
}

// BatchProgress counts the batch and the pairs it resolved.
func (m *Metrics) BatchProgress(p reconcile.BatchProgress) {
	m.Batches.Inc()
	m.PairsResolved.Add(float64(p.Size))
}

// FetchWarning counts a failed fetch or unexpected status.
func (m *Metrics) FetchWarning(w reconcile.FetchWarning) {
	kind := "non_2xx"
	if w.Err != nil {
		kind = "error"
	}
	m.FetchWarnings.WithLabelValues(string(w.Side), kind).Inc()
}

// ArchiveSkipped counts an exempted pair.
func (m *Metrics) ArchiveSkipped(int64, string) {
	m.ArchiveSkips.Inc()
}

// MismatchFound counts a mismatch by reason.
func (m *Metrics) MismatchFound(r reconcile.MismatchRecord) {
	m.Mismatches.WithLabelValues(r.Reason).Inc()
}

// Middleware records request counts and durations by route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		m.RequestsTotal.WithLabelValues(labels...).Inc()
		m.RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the metrics gathered by g.
func (m *Metrics) Handler(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
