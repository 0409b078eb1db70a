package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaricom/evocore/eval"
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/internal/parallel"
	"github.com/yaricom/evocore/xrand"
)

type sumProblem struct{}

func (sumProblem) Encode(rng *xrand.Rng) genome.Genotype[gene.Float64Gene, float64] {
	ch, err := genome.NewChromosome[gene.Float64Gene, float64]([]gene.Float64Gene{gene.NewFloat64Gene(1, -10, 10)})
	if err != nil {
		panic(err)
	}
	return genome.NewGenotype(ch)
}

func (sumProblem) Decode(g genome.Genotype[gene.Float64Gene, float64]) float64 {
	return g.Chromosome(0).Gene(0).Allele()
}

func (sumProblem) Eval(g genome.Genotype[gene.Float64Gene, float64]) genome.Score {
	return genome.Score{g.Chromosome(0).Gene(0).Allele()}
}

func unscoredPopulation(n int) *genome.Population[gene.Float64Gene, float64] {
	members := make([]*genome.Phenotype[gene.Float64Gene, float64], n)
	for i := range members {
		ch, err := genome.NewChromosome[gene.Float64Gene, float64]([]gene.Float64Gene{gene.NewFloat64Gene(float64(i), -100, 100)})
		if err != nil {
			panic(err)
		}
		g := genome.NewGenotype(ch)
		members[i] = genome.NewPhenotype[gene.Float64Gene, float64](g, 0)
	}
	return genome.NewPopulation(members...)
}

func TestSequential_ScoresEveryUnscoredMember(t *testing.T) {
	pop := unscoredPopulation(5)
	seq := eval.Sequential[gene.Float64Gene, float64, float64]{}

	metrics, err := seq.Evaluate(pop, sumProblem{})
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, "eval.count", metrics[0].Name)
	assert.Equal(t, 5.0, metrics[0].Value)

	for i := 0; i < pop.Len(); i++ {
		require.NotNil(t, pop.At(i).Score())
		assert.Equal(t, float64(i), (*pop.At(i).Score())[0])
	}
}

func TestSequential_SkipsAlreadyScored(t *testing.T) {
	pop := unscoredPopulation(2)
	pop.At(0).SetScore(genome.Score{999})

	seq := eval.Sequential[gene.Float64Gene, float64, float64]{}
	metrics, err := seq.Evaluate(pop, sumProblem{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, metrics[0].Value)
	assert.Equal(t, 999.0, (*pop.At(0).Score())[0])
}

func TestParallel_ScoresEveryUnscoredMemberByIndex(t *testing.T) {
	pop := unscoredPopulation(20)
	par := eval.NewParallel[gene.Float64Gene, float64, float64](parallel.NewFixedSizedWorkerPool(4))

	metrics, err := par.Evaluate(pop, sumProblem{})
	require.NoError(t, err)
	assert.Equal(t, 20.0, metrics[0].Value)

	for i := 0; i < pop.Len(); i++ {
		require.NotNil(t, pop.At(i).Score())
		assert.Equal(t, float64(i), (*pop.At(i).Score())[0], "scores must reassemble at the same index regardless of goroutine completion order")
	}
}

func TestParallel_DefaultsExecutorWhenNil(t *testing.T) {
	pop := unscoredPopulation(3)
	par := eval.NewParallel[gene.Float64Gene, float64, float64](nil)

	_, err := par.Evaluate(pop, sumProblem{})
	require.NoError(t, err)
	for i := 0; i < pop.Len(); i++ {
		assert.NotNil(t, pop.At(i).Score())
	}
}
