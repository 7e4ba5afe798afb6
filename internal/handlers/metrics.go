package handlers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/synth"
)

type SearchMetrics struct {
	Requests          *prometheus.CounterVec
	Results           *prometheus.CounterVec
	SynthesisDuration *prometheus.HistogramVec
}

func (m *SearchMetrics) IncRequest(endpoint, status string) {
	if m == nil || m.Requests == nil {
		return
	}

	m.Requests.WithLabelValues(endpoint, status).Inc()
}

func (m *SearchMetrics) ObserveOutcome(outcome synth.Outcome, elapsed time.Duration) {
	if m == nil {
		return
	}

	category := outcome.Category.String()
	if m.Results != nil {
		m.Results.WithLabelValues(category).Add(float64(len(outcome.Envelope.Results)))
	}
	if m.SynthesisDuration != nil {
		m.SynthesisDuration.WithLabelValues(category).Observe(elapsed.Seconds())
	}
}
