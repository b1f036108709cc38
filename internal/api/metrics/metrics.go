// Package metrics defines the custom Prometheus metrics of the blog. It is
// the single source of truth for metric names, labels and help strings.
//
// Build a Metrics with New against the registry served on /metrics. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultError   = "error"
)

// Post operation label values.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

type Metrics struct {
	// LoginsTotal counts login attempts.
	// Label:
	//   - result: "success", "failure" (bad credentials) or "error"
	LoginsTotal *prometheus.CounterVec

	// RegistrationsTotal counts registration attempts.
	// Label:
	//   - result: "success", "failure" (validation or duplicate) or "error"
	RegistrationsTotal *prometheus.CounterVec

	// PostsWrittenTotal counts successful post mutations.
	// Label:
	//   - op: "create", "update" or "delete"
	PostsWrittenTotal *prometheus.CounterVec
}

// New registers the blog metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LoginsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Total number of login attempts, by result.",
			},
			[]string{"result"},
		),
		RegistrationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "registrations_total",
				Help:      "Total number of registration attempts, by result.",
			},
			[]string{"result"},
		),
		PostsWrittenTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "posts_written_total",
				Help:      "Total number of posts created, updated or deleted.",
			},
			[]string{"op"},
		),
	}
}

func (m *Metrics) Login(result string) {
	if m == nil {
		return
	}
	m.LoginsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) Registration(result string) {
	if m == nil {
		return
	}
	m.RegistrationsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) PostWritten(op string) {
	if m == nil {
		return
	}
	m.PostsWrittenTotal.WithLabelValues(op).Inc()
}
