// Package metrics records simulation activity in Prometheus
// collectors and serves them over HTTP.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts simulation requests and observes compute time.
type Recorder struct {
	simulations *prometheus.CounterVec
	compute     prometheus.Histogram
}

// NewRecorder registers the simulation metrics on the provided
// Prometheus registerer. If reg is nil, the default registerer is used.
// If the collectors are already registered, the existing ones are
// reused.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	simulations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "biodigest_simulations_total",
		Help: "Total number of simulation requests",
	}, []string{"ratio", "outcome"})
	compute := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "biodigest_compute_seconds",
		Help:    "Time spent evaluating the Gompertz grid",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(simulations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			simulations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(compute); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			compute = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &Recorder{simulations: simulations, compute: compute}, nil
}

// RecordSimulation increments the request counter for a ratio.
func (r *Recorder) RecordSimulation(ratio, outcome string) {
	r.simulations.WithLabelValues(ratio, outcome).Inc()
}

// RecordComputeTime observes how long one grid evaluation took.
func (r *Recorder) RecordComputeTime(d time.Duration) {
	r.compute.Observe(d.Seconds())
}
