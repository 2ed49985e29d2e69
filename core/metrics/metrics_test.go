package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"url-reconciler/core/metrics"
	"url-reconciler/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, c.Write(&out))
	return out.GetCounter().GetValue()
}

func TestMetrics_Observer(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.BatchProgress(reconcile.BatchProgress{Batch: 1, Size: 50, Done: 50, Total: 70})
	m.BatchProgress(reconcile.BatchProgress{Batch: 2, Size: 20, Done: 70, Total: 70})
	m.FetchWarning(reconcile.FetchWarning{Side: reconcile.SideA, Err: errors.New("timeout")})
	m.FetchWarning(reconcile.FetchWarning{Side: reconcile.SideB, StatusCode: 404})
	m.ArchiveSkipped(1, "https://web.archive.org/x")
	m.MismatchFound(reconcile.MismatchRecord{Reason: "Different paths"})
	m.MismatchFound(reconcile.MismatchRecord{Reason: "Different paths"})

	assert.Equal(t, 2.0, counterValue(t, m.Batches))
	assert.Equal(t, 70.0, counterValue(t, m.PairsResolved))
	assert.Equal(t, 1.0, counterValue(t, m.FetchWarnings.WithLabelValues("a", "error")))
	assert.Equal(t, 1.0, counterValue(t, m.FetchWarnings.WithLabelValues("b", "non_2xx")))
	assert.Equal(t, 1.0, counterValue(t, m.ArchiveSkips))
	assert.Equal(t, 2.0, counterValue(t, m.Mismatches.WithLabelValues("Different paths")))
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	app.Get("/metrics", m.Handler(reg))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 1.0, counterValue(t, m.RequestsTotal.WithLabelValues("GET", "/ping", "200")))

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "url_reconciler_http_requests_total"))
}
