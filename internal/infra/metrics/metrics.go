// Package metrics exposes sales and HTTP metrics in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/entity"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

const namespace = "sales"

// Recorder implements adapter.MetricsRecorder on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	saleMutations    *prometheus.CounterVec
	commissionQuotes *prometheus.CounterVec
	windowVolume     *prometheus.GaugeVec
	windowCommission *prometheus.GaugeVec
	windowSales      *prometheus.GaugeVec
	windowVPG        *prometheus.GaugeVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

var _ adapter.MetricsRecorder = (*Recorder)(nil)

// NewRecorder creates a recorder with its own registry, including Go runtime collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		saleMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "mutations_total",
			Help:      "Total sale mutations by operation and sale type.",
		}, []string{"operation", "sale_type"}),
		commissionQuotes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "commission",
			Name:      "quotes_total",
			Help:      "Total commission snapshots derived, by tier level (0 below the first tier).",
		}, []string{"tier"}),
		windowVolume: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "window",
			Name:      "volume",
			Help:      "Total active volume of the last aggregated reporting window.",
		}, []string{"range"}),
		windowCommission: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "window",
			Name:      "commission",
			Help:      "Total commission of the last aggregated reporting window.",
		}, []string{"range"}),
		windowSales: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "window",
			Name:      "sales",
			Help:      "Sales in the last aggregated reporting window, by status.",
		}, []string{"range", "status"}),
		windowVPG: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "window",
			Name:      "vpg",
			Help:      "Volume per guest of the last aggregated reporting window.",
		}, []string{"range"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// SaleMutated implements adapter.MetricsRecorder.
func (r *Recorder) SaleMutated(operation string, saleType entity.SaleType) {
	r.saleMutations.WithLabelValues(operation, string(saleType)).Inc()
}

// CommissionQuoted implements adapter.MetricsRecorder.
func (r *Recorder) CommissionQuoted(tierLevel int) {
	r.commissionQuotes.WithLabelValues(strconv.Itoa(tierLevel)).Inc()
}

// TotalsComputed implements adapter.MetricsRecorder.
func (r *Recorder) TotalsComputed(kind valueobject.WindowKind, totals entity.SalesTotals) {
	label := string(kind)
	r.windowVolume.WithLabelValues(label).Set(totals.TotalVolume.InexactFloat64())
	r.windowCommission.WithLabelValues(label).Set(totals.TotalCommission.InexactFloat64())
	r.windowSales.WithLabelValues(label, "active").Set(float64(totals.ActiveSales))
	r.windowSales.WithLabelValues(label, "cancelled").Set(float64(totals.CancelledSales))
	r.windowVPG.WithLabelValues(label).Set(totals.MonthlyVPG.InexactFloat64())
}

// ObserveRequest records one served HTTP request.
func (r *Recorder) ObserveRequest(method, route string, status int, duration time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the Prometheus exposition handler for this recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
