package engine

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/yaricom/evocore/gene"
)

// History is an accumulated sequence of per-generation snapshots, built
// by the caller appending the result of each Engine.Step or Run
// iteration; WriteNPZ consumes it to produce a run archive.
type History[G gene.Gene[A], A, T any] []Snapshot[G, A, T]

// WriteNPZ dumps a run's history to an NPZ archive, one column per
// generation per series (run_epoch_best_fitnesses, run_epoch_mean_fitnesses,
// run_epoch_diversity, and one metric_<name> column per recorded metric).
func (h History[G, A, T]) WriteNPZ(w io.Writer) error {
	n := len(h)
	bestScores := make([]float64, n)
	meanScores := make([]float64, n)
	speciesCounts := make([]float64, n)

	for i, snap := range h {
		if snap.HasBest && len(snap.BestScore) > 0 {
			bestScores[i] = snap.BestScore[0]
		}
		meanScores[i] = meanPopulationScore(snap)
		speciesCounts[i] = float64(len(snap.Species))
	}

	out := npz.NewWriter(w)
	if err := out.Write("run_epoch_best_fitnesses", bestScores); err != nil {
		return errors.Wrap(err, "write run_epoch_best_fitnesses")
	}
	if err := out.Write("run_epoch_mean_fitnesses", meanScores); err != nil {
		return errors.Wrap(err, "write run_epoch_mean_fitnesses")
	}
	if err := out.Write("run_epoch_diversity", speciesCounts); err != nil {
		return errors.Wrap(err, "write run_epoch_diversity")
	}

	summary := mat.NewDense(1, 2, []float64{stat.Mean(bestScores, nil), stat.Variance(bestScores, nil)})
	if err := out.Write("run_fitness_summary", summary); err != nil {
		return errors.Wrap(err, "write run_fitness_summary")
	}

	for name, dist := range metricColumns(h) {
		if err := out.Write(fmt.Sprintf("metric_%s", name), dist); err != nil {
			return errors.Wrapf(err, "write metric %s", name)
		}
	}

	return out.Close()
}

func meanPopulationScore[G gene.Gene[A], A, T any](snap Snapshot[G, A, T]) float64 {
	if snap.Population == nil || snap.Population.Len() == 0 {
		return 0
	}
	var sum float64
	count := 0
	for _, ph := range snap.Population.Members() {
		if s := ph.Score(); s != nil && len(*s) > 0 {
			sum += (*s)[0]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// metricColumns reads the final generation's MetricSet and exports each
// named distribution's full sample history as a flat column, since the
// MetricSet itself (not the snapshot loop) accumulates samples across the
// run.
func metricColumns[G gene.Gene[A], A, T any](h History[G, A, T]) map[string][]float64 {
	if len(h) == 0 || h[len(h)-1].Metrics == nil {
		return nil
	}
	ms := h[len(h)-1].Metrics
	out := make(map[string][]float64)
	for _, name := range ms.Names() {
		if d := ms.Distribution(name); d != nil {
			out[name] = d.Values()
		}
	}
	return out
}
