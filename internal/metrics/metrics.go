// Package metrics counts practice activity with Prometheus collectors.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the tutor's collectors on a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ProblemsGenerated *prometheus.CounterVec
	AnswersGraded     *prometheus.CounterVec
	HintsServed       *prometheus.CounterVec
	AnswerDuration    *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ProblemsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "p2tutor_problems_generated_total",
				Help: "Total number of problems generated",
			},
			[]string{"topic"},
		),
		AnswersGraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "p2tutor_answers_graded_total",
				Help: "Total number of submitted answers by grading outcome",
			},
			[]string{"outcome"},
		),
		HintsServed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "p2tutor_hints_served_total",
				Help: "Total number of hints shown",
			},
			[]string{"topic"},
		),
		AnswerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "p2tutor_answer_duration_seconds",
				Help:    "Time from showing a problem to grading its answer",
				Buckets: []float64{5, 15, 30, 60, 120, 300},
			},
			[]string{"topic"},
		),
	}
	m.registry.MustRegister(m.ProblemsGenerated, m.AnswersGraded, m.HintsServed, m.AnswerDuration)
	return m
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ProblemGenerated(topic string) {
	if m == nil {
		return
	}
	m.ProblemsGenerated.WithLabelValues(topic).Inc()
}

func (m *Metrics) AnswerGraded(topic, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.AnswersGraded.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		m.AnswerDuration.WithLabelValues(topic).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) HintServed(topic string) {
	if m == nil {
		return
	}
	m.HintsServed.WithLabelValues(topic).Inc()
}

// WriteTextfile dumps the registry in the Prometheus text format, suitable
// for the node exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
