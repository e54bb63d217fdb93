// Package metrics holds the Prometheus instrumentation of the deficiency
// lifecycle, the change-event worker and the counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "homecheck"

// Metrics groups every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	DeficiencyMutations  *prometheus.CounterVec   // op: create, update, delete
	ChangesDetected      prometheus.Counter       // change descriptions produced
	EventsPublished      *prometheus.CounterVec   // status: ok, error
	EventsProcessed      *prometheus.CounterVec   // status: ok, retry, dropped
	EventDuration        prometheus.Histogram     // worker handling latency
	AuditRowsWritten     prometheus.Counter       // new deficiency_update_logs rows
	NotificationsWritten prometheus.Counter       // new deficiency_notifications rows
	CounterClamps        *prometheus.CounterVec   // counter: no_of_def, no_of_homes
	CounterReconciled    *prometheus.CounterVec   // counter: no_of_def, no_of_homes
	EmailsSent           *prometheus.CounterVec   // kind, status

	registry *prometheus.Registry
}

// New creates the collectors and registers them on registry.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		DeficiencyMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deficiency_mutations_total",
			Help:      "Committed deficiency mutations by operation.",
		}, []string{"op"}),
		ChangesDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deficiency_changes_detected_total",
			Help:      "Change descriptions produced by deficiency updates.",
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_events_published_total",
			Help:      "Change events handed to the queue by status.",
		}, []string{"status"}),
		EventsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "change_events_processed_total",
			Help:      "Change events handled by the worker by outcome.",
		}, []string{"status"}),
		EventDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "change_event_duration_seconds",
			Help:      "Time spent handling one change event.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		AuditRowsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_rows_written_total",
			Help:      "Deficiency update log rows inserted.",
		}),
		NotificationsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_written_total",
			Help:      "Deficiency notification rows inserted.",
		}),
		CounterClamps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "counter_clamps_total",
			Help:      "Decrements that would have driven a denormalized counter below zero.",
		}, []string{"counter"}),
		CounterReconciled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "counter_reconciled_rows_total",
			Help:      "Rows whose denormalized counter was corrected by reconciliation.",
		}, []string{"counter"}),
		EmailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "Outgoing e-mails by kind and status.",
		}, []string{"kind", "status"}),
	}

	registry.MustRegister(
		m.DeficiencyMutations, m.ChangesDetected, m.EventsPublished, m.EventsProcessed,
		m.EventDuration, m.AuditRowsWritten, m.NotificationsWritten, m.CounterClamps,
		m.CounterReconciled, m.EmailsSent,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Mutation counts a committed deficiency mutation with its detected changes.
func (m *Metrics) Mutation(op string, changes int) {
	if m == nil {
		return
	}
	m.DeficiencyMutations.WithLabelValues(op).Inc()
	m.ChangesDetected.Add(float64(changes))
}

// Published counts a queue hand-off.
func (m *Metrics) Published(err error) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(status(err)).Inc()
}

// Processed counts a handled change event.
func (m *Metrics) Processed(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.EventsProcessed.WithLabelValues(outcome).Inc()
	m.EventDuration.Observe(seconds)
}

// AuditWritten counts inserted audit rows.
func (m *Metrics) AuditWritten(n int64) {
	if m == nil {
		return
	}
	m.AuditRowsWritten.Add(float64(n))
}

// NotificationsCreated counts inserted notification rows.
func (m *Metrics) NotificationsCreated(n int64) {
	if m == nil {
		return
	}
	m.NotificationsWritten.Add(float64(n))
}

// Clamped counts a counter decrement floored at zero.
func (m *Metrics) Clamped(counter string) {
	if m == nil {
		return
	}
	m.CounterClamps.WithLabelValues(counter).Inc()
}

// Reconciled counts rows corrected by reconciliation.
func (m *Metrics) Reconciled(counter string, rows int64) {
	if m == nil {
		return
	}
	m.CounterReconciled.WithLabelValues(counter).Add(float64(rows))
}

// Email counts a sent or failed e-mail.
func (m *Metrics) Email(kind string, err error) {
	if m == nil {
		return
	}
	m.EmailsSent.WithLabelValues(kind, status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
