// Package metrics records solver activity in a private Prometheus registry. A nil *Recorder is
// valid and records nothing, so library callers that do not care about metrics pass nil.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "advect1d"

type Recorder struct {
	Registry       *prometheus.Registry
	steps          *prometheus.CounterVec
	solves         *prometheus.CounterVec
	solveDuration  *prometheus.HistogramVec
	totalVariation *prometheus.GaugeVec
	courant        *prometheus.GaugeVec
}

func NewRecorder() (r *Recorder) {
	r = &Recorder{
		Registry: prometheus.NewRegistry(),
		// Labels: scheme
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "march",
			Name:      "steps_total",
			Help:      "Time steps advanced",
		}, []string{"scheme"}),
		// Labels: scheme, status (ok, error)
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "march",
			Name:      "solves_total",
			Help:      "Completed or failed solves",
		}, []string{"scheme", "status"}),
		solveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "march",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a full solve",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"scheme"}),
		totalVariation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "solution",
			Name:      "total_variation",
			Help:      "Total variation of the last time level",
		}, []string{"scheme"}),
		courant: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "grid",
			Name:      "courant_number",
			Help:      "Courant number a*dt/dx of the run",
		}, []string{"scheme"}),
	}
	r.Registry.MustRegister(r.steps, r.solves, r.solveDuration, r.totalVariation, r.courant)
	return
}

func (r *Recorder) ObserveStep(scheme string) {
	if r == nil {
		return
	}
	r.steps.WithLabelValues(scheme).Inc()
}

func (r *Recorder) ObserveSolve(scheme string, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.solves.WithLabelValues(scheme, status).Inc()
	r.solveDuration.WithLabelValues(scheme).Observe(elapsed.Seconds())
}

func (r *Recorder) SetTotalVariation(scheme string, tv float64) {
	if r == nil {
		return
	}
	r.totalVariation.WithLabelValues(scheme).Set(tv)
}

func (r *Recorder) SetCourant(scheme string, c float64) {
	if r == nil {
		return
	}
	r.courant.WithLabelValues(scheme).Set(c)
}

// WriteFile writes the registry in the Prometheus text format, for the node exporter's textfile collector
func (r *Recorder) WriteFile(filename string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(filename, r.Registry)
}
