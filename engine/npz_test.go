package engine_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaricom/evocore/engine"
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/metrics"
)

func snapshotWithBest(index int, best float64, ms *metrics.MetricSet) engine.Snapshot[gene.Float64Gene, float64, []float64] {
	ch, err := genome.NewChromosome[gene.Float64Gene, float64]([]gene.Float64Gene{gene.NewFloat64Gene(best, -100, 100)})
	if err != nil {
		panic(err)
	}
	pop := genome.NewPopulation(genome.NewPhenotype[gene.Float64Gene, float64](genome.NewGenotype(ch), index))
	pop.At(0).SetScore(genome.Score{best})

	return engine.Snapshot[gene.Float64Gene, float64, []float64]{
		Index:      index,
		BestScore:  genome.Score{best},
		BestValue:  []float64{best},
		HasBest:    true,
		Metrics:    ms,
		Population: pop,
	}
}

func TestHistory_WriteNPZ_ProducesNonEmptyArchive(t *testing.T) {
	ms := metrics.New()
	ms.Record("age_filter", metrics.TagGeneration, 0)
	ms.Record("age_filter", metrics.TagGeneration, 3)

	var history engine.History[gene.Float64Gene, float64, []float64]
	for i := 0; i < 5; i++ {
		history = append(history, snapshotWithBest(i, float64(10-i), ms))
	}

	var buf bytes.Buffer
	require.NoError(t, history.WriteNPZ(&buf))
	assert.Positive(t, buf.Len())
}

func TestHistory_WriteNPZ_EmptyHistory(t *testing.T) {
	var history engine.History[gene.Float64Gene, float64, []float64]
	var buf bytes.Buffer
	require.NoError(t, history.WriteNPZ(&buf))
	assert.Positive(t, buf.Len())
}
