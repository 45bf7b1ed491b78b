// SPDX-License-Identifier: MIT
// Package: masseyramanujan/metrics
//
// recorder.go — counters and gauges for domain enumeration.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/domain"
)

const namespace = "polydomain"

// Recorder counts examined and accepted candidates per primary family.
// Safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry
	examined *prometheus.CounterVec
	accepted *prometheus.CounterVec
	size     *prometheus.GaugeVec
}

var _ domain.Observer = (*Recorder)(nil)

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		examined: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_examined_total",
			Help:      "Coefficient pairs tested against the convergence predicate.",
		}, []string{"primary"}),
		accepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_accepted_total",
			Help:      "Coefficient pairs that passed the convergence predicate.",
		}, []string{"primary"}),
		size: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "domain_size",
			Help:      "Pre-filter grid size per axis (a, b) and in total.",
		}, []string{"axis"}),
	}
	r.registry.MustRegister(r.examined, r.accepted, r.size)

	return r
}

// Observe implements domain.Observer.
func (r *Recorder) Observe(primary domain.Primary, accepted bool) {
	r.examined.WithLabelValues(string(primary)).Inc()
	if accepted {
		r.accepted.WithLabelValues(string(primary)).Inc()
	}
}

// SetDomainSize publishes the grid sizes.
func (r *Recorder) SetDomainSize(s domain.Sizes) {
	r.size.WithLabelValues("a").Set(float64(s.A))
	r.size.WithLabelValues("b").Set(float64(s.B))
	r.size.WithLabelValues("total").Set(float64(s.Total))
}

// Registry exposes the underlying registry, e.g. for testutil or pushing.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
