package problem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/problem"
	"github.com/yaricom/evocore/xrand"
)

type floatCodec struct{}

func (floatCodec) Encode(rng *xrand.Rng) genome.Genotype[gene.Float64Gene, float64] {
	seed := gene.NewFloat64Gene(0, -5, 5)
	ch, err := genome.NewChromosomeOf[gene.Float64Gene, float64](3, seed, rng)
	if err != nil {
		panic(err)
	}
	return genome.NewGenotype(ch)
}

func (floatCodec) Decode(g genome.Genotype[gene.Float64Gene, float64]) []float64 {
	ch := g.Chromosome(0)
	out := make([]float64, ch.Len())
	for i := range out {
		out[i] = ch.Gene(i).Allele()
	}
	return out
}

func TestFromCodec_EvalComposesFitness(t *testing.T) {
	fitness := func(values []float64) genome.Score {
		var sum float64
		for _, v := range values {
			sum += v
		}
		return genome.Score{sum}
	}
	prob := problem.FromCodec[gene.Float64Gene, float64, []float64](floatCodec{}, fitness)

	rng := xrand.New(7)
	g := prob.Encode(rng)
	decoded := prob.Decode(g)
	require.Len(t, decoded, 3)

	score := prob.Eval(g)
	require.Len(t, score, 1)

	var want float64
	for _, v := range decoded {
		want += v
	}
	assert.Equal(t, want, score[0])
}

func TestFromCodec_DecodeIsTotalOverEncoded(t *testing.T) {
	prob := problem.FromCodec[gene.Float64Gene, float64, []float64](floatCodec{}, func(v []float64) genome.Score {
		return genome.Score{0}
	})
	rng := xrand.New(3)
	for i := 0; i < 20; i++ {
		g := prob.Encode(rng)
		assert.True(t, g.Valid())
		assert.NotPanics(t, func() { prob.Decode(g) })
	}
}
