// Package metrics exposes Prometheus instruments for the sync, notification
// and retirement flows.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sync outcomes.
const (
	SyncCreated = "created"
	SyncUpdated = "updated"
	SyncInvalid = "invalid"
	SyncFailed  = "failed"
)

// Notification results.
const (
	NotificationQueued  = "queued"
	NotificationSkipped = "skipped"
	NotificationFailed  = "failed"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Metrics holds the service instruments. A nil *Metrics is valid and records nothing.
type Metrics struct {
	SyncTotal          *prometheus.CounterVec
	SyncDuration       prometheus.Histogram
	RecordsUpdated     prometheus.Counter
	NotificationsTotal *prometheus.CounterVec
	RetirementsTotal   *prometheus.CounterVec
	SweepDuration      prometheus.Histogram
}

// NewRegistry creates the registry served at /metrics, with the Go and process collectors attached.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return reg
}

// New creates the instruments and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SyncTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "addresssync_sync_requests_total",
			Help: "Vendor address sync requests by outcome",
		}, []string{"outcome"}),
		SyncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "addresssync_sync_duration_seconds",
			Help:    "Duration of SyncAddress operations",
			Buckets: durationBuckets,
		}),
		RecordsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "addresssync_records_updated_total",
			Help: "Address records updated through a shared vendor token",
		}),
		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "addresssync_notifications_total",
			Help: "Notification intents by enqueue result",
		}, []string{"result"}),
		RetirementsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "addresssync_retirements_total",
			Help: "Retirement descriptors by repair result",
		}, []string{"result"}),
		SweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "addresssync_sweep_duration_seconds",
			Help:    "Duration of retirement sweeps",
			Buckets: durationBuckets,
		}),
	}
}

// ObserveSync records one sync outcome and its duration.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSync(outcome string, updated int, start time.Time) {
	if m == nil {
		return
	}
	m.SyncTotal.WithLabelValues(outcome).Inc()
	m.SyncDuration.Observe(time.Since(start).Seconds())
	if updated > 0 {
		m.RecordsUpdated.Add(float64(updated))
	}
}

// IncNotification records one notification intent result.
func (m *Metrics) IncNotification(result string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(result).Inc()
}

// IncRetirement records one retirement descriptor result.
func (m *Metrics) IncRetirement(result string) {
	if m == nil {
		return
	}
	m.RetirementsTotal.WithLabelValues(result).Inc()
}

// ObserveSweep records the duration of a sweep.
func (m *Metrics) ObserveSweep(start time.Time) {
	if m == nil {
		return
	}
	m.SweepDuration.Observe(time.Since(start).Seconds())
}
