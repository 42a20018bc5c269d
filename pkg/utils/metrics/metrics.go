// Package metrics holds the Prometheus collectors of sitecloner. They are
// registered with the default registry and exposed on /metrics by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitecloner"

var (
	CloneTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clone_total",
			Help:      "Number of clone attempts by result.",
		}, []string{"result"})

	CloneDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "clone_duration_seconds",
			Help:      "Wall time of a clone attempt, settle delay included.",
			Buckets:   []float64{1, 2, 5, 10, 20, 30, 60},
		})

	StepTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "step_total",
			Help:      "Outcomes of provisioning steps.",
		}, []string{"step", "status"})

	RegistrySites = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_sites",
			Help:      "Number of sites in the registry document when last read.",
		})
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

func init() {
	prometheus.MustRegister(
		CloneTotal,
		CloneDuration,
		StepTotal,
		RegistrySites,
	)
}
