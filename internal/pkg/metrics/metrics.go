// Package metrics exposes Prometheus instrumentation for the service: HTTP
// traffic, order event publication and the stale pending order gauge.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"icecream/internal/core/domain/model/order"
	"icecream/internal/core/ports"
)

const namespace = "icecream"

// Metrics groups the service collectors. Build one per registry with New.
type Metrics struct {
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	events       *prometheus.CounterVec
	stalePending prometheus.Gauge
	gatherer     prometheus.Gatherer
}

// New creates the collectors and registers them with reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_events_published_total",
			Help:      "Order events handed to publishers, by type and result.",
		}, []string{"type", "result"}),
		stalePending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stale_pending_orders",
			Help:      "Orders waiting in PENDING longer than the configured threshold.",
		}),
		gatherer: reg,
	}

	reg.MustRegister(m.requests, m.latency, m.events, m.stalePending)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// SetStalePending records the latest stale pending order count.
func (m *Metrics) SetStalePending(n int) {
	m.stalePending.Set(float64(n))
}

// EchoMiddleware counts requests and observes latency per route template, so
// /orders/1 and /orders/2 share the /orders/:id series.
func (m *Metrics) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := c.Response().Status
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			} else if err != nil && !c.Response().Committed {
				status = http.StatusInternalServerError
			}

			method := c.Request().Method
			m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// InstrumentPublisher counts every event passed through next.
func (m *Metrics) InstrumentPublisher(next ports.EventPublisher) ports.EventPublisher {
	return instrumentedPublisher{next: next, events: m.events}
}

type instrumentedPublisher struct {
	next   ports.EventPublisher
	events *prometheus.CounterVec
}

func (p instrumentedPublisher) Publish(ctx context.Context, events ...order.Event) error {
	err := p.next.Publish(ctx, events...)

	result := "ok"
	if err != nil {
		result = "error"
	}
	for _, e := range events {
		p.events.WithLabelValues(string(e.Type), result).Inc()
	}
	return err
}
