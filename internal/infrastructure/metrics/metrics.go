package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "loja"

// Metrics agrupa os coletores da aplicação num registry próprio
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	ordersCreated  prometheus.Counter
	checkoutAmount prometheus.Counter
	checkoutItems  prometheus.Histogram
	authEvents     *prometheus.CounterVec
	rateLimited    prometheus.Counter
}

// New cria e registra todos os coletores
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Total number of orders created by checkout.",
		}),
		checkoutAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "amount_total",
			Help:      "Sum of order totals.",
		}),
		checkoutItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "items_per_order",
			Help:      "Units per order.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "events_total",
			Help:      "Authentication events by kind and outcome.",
		}, []string{"event", "outcome"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-IP rate limit.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.ordersCreated,
		m.checkoutAmount,
		m.checkoutItems,
		m.authEvents,
		m.rateLimited,
	)

	return m
}

// Registry expõe o registry para testes e integrações
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serve a exposição Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RequestStarted incrementa as requisições em andamento e retorna a função de término
func (m *Metrics) RequestStarted() func(method, route string, status int, elapsed time.Duration) {
	m.httpInFlight.Inc()
	return func(method, route string, status int, elapsed time.Duration) {
		m.httpInFlight.Dec()
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	}
}

// ObserveCheckout registra um pedido criado
func (m *Metrics) ObserveCheckout(total decimal.Decimal, units int) {
	m.ordersCreated.Inc()
	m.checkoutAmount.Add(total.InexactFloat64())
	m.checkoutItems.Observe(float64(units))
}

// ObserveAuth registra login, registro ou logout com o resultado
func (m *Metrics) ObserveAuth(event string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.authEvents.WithLabelValues(event, outcome).Inc()
}

// ObserveRateLimited registra uma requisição barrada
func (m *Metrics) ObserveRateLimited() {
	m.rateLimited.Inc()
}
