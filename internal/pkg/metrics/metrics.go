// Package metrics holds the prometheus collectors of the service. Collectors
// are registered on the Registerer passed in, so tests can use a private
// prometheus.Registry instead of the global one.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shippingcost"

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	reg.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// ShippingMetrics tracks pricing activity, labelled by strategy kind.
type ShippingMetrics struct {
	Quotes          *prometheus.CounterVec
	StrategyChanges *prometheus.CounterVec
	Orders          *prometheus.GaugeVec
	ShippingRevenue *prometheus.GaugeVec
}

func NewShippingMetrics(reg prometheus.Registerer) *ShippingMetrics {
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "shipping",
		Name:      "quotes_total",
		Help:      "Shipping costs computed, by strategy kind.",
	}, []string{"kind"})
	changes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "shipping",
		Name:      "strategy_changes_total",
		Help:      "Strategies assigned to existing orders, by new strategy kind.",
	}, []string{"kind"})
	orders := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "shipping",
		Name:      "orders",
		Help:      "Stored orders per current strategy kind, as of the last report.",
	}, []string{"kind"})
	revenue := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "shipping",
		Name:      "revenue",
		Help:      "Sum of shipping costs per current strategy kind, as of the last report.",
	}, []string{"kind"})

	reg.MustRegister(quotes, changes, orders, revenue)
	return &ShippingMetrics{
		Quotes:          quotes,
		StrategyChanges: changes,
		Orders:          orders,
		ShippingRevenue: revenue,
	}
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
