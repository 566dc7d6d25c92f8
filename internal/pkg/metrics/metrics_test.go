package metrics_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/pkg/metrics"
)

type publisherFunc func(ctx context.Context, events ...order.Event) error

func (f publisherFunc) Publish(ctx context.Context, events ...order.Event) error {
	return f(ctx, events...)
}

func TestEchoMiddleware_RecordsRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	e := echo.New()
	e.Use(m.EchoMiddleware())
	e.GET("/orders/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad")
	})

	for _, path := range []string{"/orders/1", "/orders/2", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP icecream_http_requests_total Total number of HTTP requests.
# TYPE icecream_http_requests_total counter
icecream_http_requests_total{method="GET",route="/boom",status="400"} 1
icecream_http_requests_total{method="GET",route="/orders/:id",status="200"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "icecream_http_requests_total"))
}

func TestInstrumentPublisher_CountsByResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	events := []order.Event{
		{Type: order.EventOrderCreated},
		{Type: order.EventOrderStatusChanged},
	}

	ok := m.InstrumentPublisher(publisherFunc(func(context.Context, ...order.Event) error { return nil }))
	require.NoError(t, ok.Publish(t.Context(), events...))

	failing := m.InstrumentPublisher(publisherFunc(func(context.Context, ...order.Event) error {
		return errors.New("down")
	}))
	require.Error(t, failing.Publish(t.Context(), events[0]))

	expected := `
# HELP icecream_order_events_published_total Order events handed to publishers, by type and result.
# TYPE icecream_order_events_published_total counter
icecream_order_events_published_total{result="error",type="order.created"} 1
icecream_order_events_published_total{result="ok",type="order.created"} 1
icecream_order_events_published_total{result="ok",type="order.status_changed"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "icecream_order_events_published_total"))
}

func TestSetStalePending(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.SetStalePending(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "icecream_stale_pending_orders 3")
}
