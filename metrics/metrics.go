// Package metrics exports optimizer progress as Prometheus metrics.
//
// A Recorder observes genetic.GenerationStats through genetic.Options.Observer
// and the final genetic.Result through ObserveResult. Short-lived CLI runs can
// persist the registry with WriteTextfile for the node_exporter textfile
// collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/fctp/genetic"
)

// Namespace prefixes every metric name.
const Namespace = "fctp"

// Recorder holds the collectors of one optimizer process.
type Recorder struct {
	generations prometheus.Counter
	best        prometheus.Gauge
	mean        prometheus.Gauge
	stdDev      prometheus.Gauge
	worst       prometheus.Gauge

	runs        prometheus.Counter
	mutations   prometheus.Counter
	runSeconds  prometheus.Histogram
	bestFitness prometheus.Gauge
	routes      prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace, Name: "generations_evaluated_total",
			Help: "Populations evaluated, including each run's seeded population.",
		}),
		best: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace, Subsystem: "population", Name: "best_cost",
			Help: "Lowest cost in the most recently evaluated population.",
		}),
		mean: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace, Subsystem: "population", Name: "mean_cost",
			Help: "Mean cost of the most recently evaluated population.",
		}),
		stdDev: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace, Subsystem: "population", Name: "cost_stddev",
			Help: "Sample standard deviation of costs in the most recently evaluated population.",
		}),
		worst: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace, Subsystem: "population", Name: "worst_cost",
			Help: "Highest cost in the most recently evaluated population.",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace, Name: "runs_total",
			Help: "Completed optimizer runs.",
		}),
		mutations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace, Name: "mutations_total",
			Help: "Mutation attempts that moved units.",
		}),
		runSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace, Name: "run_duration_seconds",
			Help:    "Wall-clock duration of completed runs.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		bestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace, Name: "best_fitness",
			Help: "Total cost of the plan returned by the last completed run.",
		}),
		routes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace, Name: "routes_used",
			Help: "Routes carrying units in the plan returned by the last completed run.",
		}),
	}

	for _, c := range []prometheus.Collector{
		r.generations, r.best, r.mean, r.stdDev, r.worst,
		r.runs, r.mutations, r.runSeconds, r.bestFitness, r.routes,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Observe records one generation. Its signature matches genetic.Observer.
func (r *Recorder) Observe(st genetic.GenerationStats) {
	r.generations.Inc()
	r.best.Set(st.Best)
	r.mean.Set(st.Mean)
	r.stdDev.Set(st.StdDev)
	r.worst.Set(st.Worst)
}

// ObserveResult records a completed run.
func (r *Recorder) ObserveResult(res genetic.Result) {
	r.runs.Inc()
	r.mutations.Add(float64(res.Mutations))
	r.runSeconds.Observe(res.ElapsedSeconds())
	r.bestFitness.Set(res.BestFitness)
	r.routes.Set(float64(len(res.Routes)))
}

// WriteTextfile writes every metric of g to path in the text exposition
// format, atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
