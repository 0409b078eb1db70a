package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaricom/evocore/config"
	"github.com/yaricom/evocore/engine"
	"github.com/yaricom/evocore/eval"
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/operator"
)

func sumToZeroBuilder(t *testing.T) *engine.Builder[gene.Float64Gene, float64, []float64] {
	t.Helper()
	opts := config.Default()
	opts.PopulationSize = 10
	opts.MaxAge = 15
	opts.Objective = genome.Single(genome.Minimize)

	return engine.NewBuilder[gene.Float64Gene, float64, []float64]().
		Options(opts).
		Problem(sumToZero{}).
		Evaluator(eval.Sequential[gene.Float64Gene, float64, []float64]{}).
		Survivors(operator.NewTournament[gene.Float64Gene, float64](3)).
		Offspring(operator.Roulette[gene.Float64Gene, float64]{}).
		Replacement(operator.EncodeReplacement[gene.Float64Gene, float64, []float64]{})
}

func TestBuilder_BuildProducesRunnableEngine(t *testing.T) {
	eng, err := sumToZeroBuilder(t).Build()
	require.NoError(t, err)
	require.NotNil(t, eng)

	snap, err := eng.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Index)
	assert.True(t, snap.HasBest)
}

func TestBuilder_Build_RejectsMissingProblem(t *testing.T) {
	_, err := engine.NewBuilder[gene.Float64Gene, float64, []float64]().
		Evaluator(eval.Sequential[gene.Float64Gene, float64, []float64]{}).
		Survivors(operator.NewTournament[gene.Float64Gene, float64](3)).
		Offspring(operator.Roulette[gene.Float64Gene, float64]{}).
		Replacement(operator.EncodeReplacement[gene.Float64Gene, float64, []float64]{}).
		Build()
	assert.Error(t, err)
}

func TestBuilder_Build_RejectsMissingSelectors(t *testing.T) {
	_, err := engine.NewBuilder[gene.Float64Gene, float64, []float64]().
		Problem(sumToZero{}).
		Evaluator(eval.Sequential[gene.Float64Gene, float64, []float64]{}).
		Replacement(operator.EncodeReplacement[gene.Float64Gene, float64, []float64]{}).
		Build()
	assert.Error(t, err)
}

func TestBuilder_Build_RejectsInvalidConfiguration(t *testing.T) {
	opts := config.Default()
	opts.PopulationSize = 0

	_, err := sumToZeroBuilder(t).Options(opts).Build()
	assert.Error(t, err)
}

func TestBuilder_Build_DefaultsRngAndExecutorAndPipeline(t *testing.T) {
	eng, err := sumToZeroBuilder(t).Build()
	require.NoError(t, err)

	snap, err := eng.Run(func(s engine.Snapshot[gene.Float64Gene, float64, []float64]) bool {
		return s.Index >= 5
	})
	require.NoError(t, err)
	assert.Equal(t, 5, snap.Index)
	assert.Equal(t, 10, snap.Population.Len())
}

func TestBuilder_Build_InstallsDefaultAuditorWhenNoneConfigured(t *testing.T) {
	eng, err := sumToZeroBuilder(t).Build()
	require.NoError(t, err)

	snap, err := eng.Step()
	require.NoError(t, err)
	assert.NotNil(t, snap.Metrics.Distribution("audit.diversity_ratio"))
}
