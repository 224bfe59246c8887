package observability

import (
	"context"
	"errors"

	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/geom"
	"github.com/aretw0/extrude/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
)

// Failure reasons used as the "reason" label of extrude_generate_failures_total.
const (
	ReasonInfeasible  = "infeasible"
	ReasonUnsupported = "unsupported"
	ReasonValidation  = "validation"
	ReasonUnknownUnit = "unknown_unit"
	ReasonOther       = "other"
)

// Metrics holds the Prometheus collectors fed by engine events.
type Metrics struct {
	Runs     *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	InFlight prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg registers nothing.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extrude_generate_total",
				Help: "Total number of unit runs",
			},
			[]string{"unit"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extrude_generate_failures_total",
				Help: "Total number of failed unit runs",
			},
			[]string{"unit", "reason"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "extrude_generate_duration_seconds",
				Help:    "Duration of unit runs, publication included",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"unit"},
		),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "extrude_generate_in_flight",
			Help: "Unit runs currently executing",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.Failures, m.Duration, m.InFlight)
	}
	return m
}

// Hooks returns lifecycle hooks that record every run.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGenerateStart: func(_ context.Context, e *domain.GenerateEvent) {
			m.InFlight.Inc()
			m.Runs.WithLabelValues(e.Unit).Inc()
		},
		OnGenerateFinish: func(_ context.Context, e *domain.GenerateEvent) {
			m.InFlight.Dec()
			m.Duration.WithLabelValues(e.Unit).Observe(e.Duration.Seconds())
			if e.Err != nil {
				m.Failures.WithLabelValues(e.Unit, Reason(e.Err)).Inc()
			}
		},
	}
}

// Reason classifies a run error into a low-cardinality label.
func Reason(err error) string {
	switch {
	case errors.Is(err, geom.ErrInfeasible):
		return ReasonInfeasible
	case errors.Is(err, geom.ErrUnsupported):
		return ReasonUnsupported
	case schema.IsValidation(err):
		return ReasonValidation
	case errors.Is(err, domain.ErrUnknownUnit):
		return ReasonUnknownUnit
	default:
		return ReasonOther
	}
}
