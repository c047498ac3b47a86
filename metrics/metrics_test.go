package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fctp/genetic"
	"github.com/katalvlaran/fctp/metrics"
	"github.com/katalvlaran/fctp/transport"
)

func TestRecorder_ObservesRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	p, err := transport.NewProblem([]int{20, 30}, []int{25, 25},
		[][]float64{{2, 3}, {4, 1}}, [][]float64{{0, 0}, {0, 0}})
	require.NoError(t, err)

	res, err := genetic.Solve(context.Background(), p, genetic.NewOptions(
		genetic.WithGenerations(5),
		genetic.WithPopulationSize(4),
		genetic.WithMutationRate(0),
		genetic.WithObserver(rec.Observe),
	))
	require.NoError(t, err)
	rec.ObserveResult(res)

	require.Equal(t, 6.0, value(t, reg, "fctp_generations_evaluated_total"))
	require.Equal(t, 1.0, value(t, reg, "fctp_runs_total"))
	require.Equal(t, 85.0, value(t, reg, "fctp_best_fitness"))
	require.Equal(t, 85.0, value(t, reg, "fctp_population_best_cost"))
	require.Equal(t, 3.0, value(t, reg, "fctp_routes_used"))

	count, err := testutil.GatherAndCount(reg, "fctp_run_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestRecorder_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder(reg)
	var already prometheus.AlreadyRegisteredError
	require.ErrorAs(t, err, &already)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	rec.Observe(genetic.GenerationStats{Generation: 0, Best: 10, Mean: 12, Worst: 14, StdDev: 2})

	path := filepath.Join(t.TempDir(), "fctp.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "fctp_population_worst_cost 14")
	require.Contains(t, string(raw), "# TYPE fctp_generations_evaluated_total counter")
}

// value gathers reg and returns the single counter or gauge sample named name.
func value(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		if m.GetCounter() != nil {
			return m.GetCounter().GetValue()
		}
		return m.GetGauge().GetValue()
	}
	t.Fatalf("metric %s not registered", name)

	return 0
}
