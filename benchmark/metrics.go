// SPDX-License-Identifier: MIT
//
// metrics.go - Prometheus instrumentation for harness runs.

package benchmark

import (
	"errors"
	"math"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the harness collectors. A nil *metrics records nothing.
type metrics struct {
	duration *prometheus.HistogramVec
	distance *prometheus.GaugeVec
	failures *prometheus.CounterVec
}

// newMetrics registers the harness collectors on reg. Collectors already
// registered by an earlier harness on the same registry are reused.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "routelab_strategy_duration_seconds",
				Help:    "Wall-clock time of one strategy run.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"strategy"},
		),
		distance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "routelab_strategy_distance",
				Help: "Route distance from the latest run; +Inf when the strategy failed.",
			},
			[]string{"strategy"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "routelab_strategy_failures_total",
				Help: "Strategy runs that returned an error or an invalid route.",
			},
			[]string{"strategy"},
		),
	}

	var err error
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.distance, err = register(reg, m.distance); err != nil {
		return nil, err
	}
	if m.failures, err = register(reg, m.failures); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, returning the existing collector on conflict.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// observe records one strategy result.
func (m *metrics) observe(r Result) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(r.Strategy).Observe(r.Elapsed.Seconds())
	m.distance.WithLabelValues(r.Strategy).Set(r.Distance)
	if r.Err != nil || math.IsInf(r.Distance, 1) {
		m.failures.WithLabelValues(r.Strategy).Inc()
	}
}
