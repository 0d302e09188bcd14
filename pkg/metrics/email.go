package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// EmailMetrics records delivery outcomes for transactional email.
type EmailMetrics struct {
	sent   *prometheus.CounterVec
	failed *prometheus.CounterVec
}

// NewEmailMetrics registers the email metrics on the provided registerer.
func NewEmailMetrics(reg prometheus.Registerer) *EmailMetrics {
	if reg == nil {
		return &EmailMetrics{}
	}
	sent := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "email_sent_total",
		Help: "Transactional emails delivered to the provider.",
	}, []string{"kind"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "email_failed_total",
		Help: "Transactional emails the provider rejected or that errored.",
	}, []string{"kind"})
	reg.MustRegister(sent, failed)
	return &EmailMetrics{
		sent:   sent,
		failed: failed,
	}
}

// IncSent increments the delivered counter for the named email kind.
func (e *EmailMetrics) IncSent(kind string) {
	if e == nil || e.sent == nil {
		return
	}
	e.sent.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncFailed increments the failure counter for the named email kind.
func (e *EmailMetrics) IncFailed(kind string) {
	if e == nil || e.failed == nil {
		return
	}
	e.failed.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(kind string) string {
	if kind == "" {
		return "unknown"
	}
	return kind
}
