package genome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/xrand"
)

func floatChromosome(t *testing.T, values ...float64) genome.Chromosome[gene.Float64Gene, float64] {
	t.Helper()
	genes := make([]gene.Float64Gene, len(values))
	for i, v := range values {
		genes[i] = gene.NewFloat64Gene(v, -10, 10)
	}
	ch, err := genome.NewChromosome[gene.Float64Gene, float64](genes)
	require.NoError(t, err)
	return ch
}

func TestChromosome_EmptyIsError(t *testing.T) {
	_, err := genome.NewChromosome[gene.Float64Gene, float64](nil)
	assert.ErrorIs(t, err, genome.ErrEmptyChromosome)
}

func TestChromosome_CloneIsIndependent(t *testing.T) {
	ch := floatChromosome(t, 1, 2, 3)
	clone := ch.Clone()
	clone.SetGene(0, gene.NewFloat64Gene(99, -10, 10))

	assert.Equal(t, 1.0, ch.Gene(0).Allele())
	assert.Equal(t, 99.0, clone.Gene(0).Allele())
}

func TestChromosome_Valid(t *testing.T) {
	ch := floatChromosome(t, 1, 2, 3)
	assert.True(t, ch.Valid())

	ch.SetGene(0, gene.NewFloat64Gene(100, -10, 10))
	assert.False(t, ch.Valid())
}

func TestGenotype_Valid(t *testing.T) {
	ch := floatChromosome(t, 1, 2)
	g := genome.NewGenotype(ch)
	assert.True(t, g.Valid())
}

func TestGenotype_Clone(t *testing.T) {
	ch := floatChromosome(t, 1, 2)
	g := genome.NewGenotype(ch)
	clone := g.Clone()
	clone.Chromosome(0).SetGene(0, gene.NewFloat64Gene(50, -10, 10))

	assert.Equal(t, 1.0, g.Chromosome(0).Gene(0).Allele())
	assert.Equal(t, 50.0, clone.Chromosome(0).Gene(0).Allele())
}

func TestPhenotype_NoScoreUntilSet(t *testing.T) {
	g := genome.NewGenotype(floatChromosome(t, 1))
	p := genome.NewPhenotype[gene.Float64Gene, float64](g, 0)

	assert.Nil(t, p.Score())
	assert.False(t, p.Evaluated())

	p.SetScore(genome.Score{1.5})
	require.NotNil(t, p.Score())
	assert.True(t, p.Evaluated())
	assert.Equal(t, genome.Score{1.5}, *p.Score())
}

func TestPhenotype_DistinctIDs(t *testing.T) {
	g := genome.NewGenotype(floatChromosome(t, 1))
	p1 := genome.NewPhenotype[gene.Float64Gene, float64](g, 0)
	p2 := genome.NewPhenotype[gene.Float64Gene, float64](g, 0)
	assert.NotEqual(t, p1.ID, p2.ID)
}

func TestPhenotype_Age(t *testing.T) {
	g := genome.NewGenotype(floatChromosome(t, 1))
	p := genome.NewPhenotype[gene.Float64Gene, float64](g, 3)
	assert.Equal(t, 7, p.Age(10))
}

func TestPopulation_SortScoredAheadOfUnscored(t *testing.T) {
	g1 := genome.NewGenotype(floatChromosome(t, 1))
	g2 := genome.NewGenotype(floatChromosome(t, 2))
	p1 := genome.NewPhenotype[gene.Float64Gene, float64](g1, 0)
	p2 := genome.NewPhenotype[gene.Float64Gene, float64](g2, 0)
	p1.SetScore(genome.Score{5})

	pop := genome.NewPopulation(p2, p1)
	pop.Sort(genome.Single(genome.Minimize))

	assert.Equal(t, p1.ID, pop.At(0).ID, "scored member sorts ahead of unscored")
}

func TestPopulation_SortIdempotent(t *testing.T) {
	obj := genome.Single(genome.Minimize)
	members := make([]*genome.Phenotype[gene.Float64Gene, float64], 5)
	for i := range members {
		g := genome.NewGenotype(floatChromosome(t, float64(5-i)))
		members[i] = genome.NewPhenotype[gene.Float64Gene, float64](g, 0)
		members[i].SetScore(genome.Score{float64(5 - i)})
	}
	pop := genome.NewPopulation(members...)
	pop.Sort(obj)
	first := make([]int64, pop.Len())
	for i := 0; i < pop.Len(); i++ {
		first[i] = pop.At(i).ID
	}
	pop.Sort(obj)
	second := make([]int64, pop.Len())
	for i := 0; i < pop.Len(); i++ {
		second[i] = pop.At(i).ID
	}
	assert.Equal(t, first, second)
}

func TestPopulation_Take(t *testing.T) {
	g := genome.NewGenotype(floatChromosome(t, 1))
	p1 := genome.NewPhenotype[gene.Float64Gene, float64](g, 0)
	p2 := genome.NewPhenotype[gene.Float64Gene, float64](g, 5)
	pop := genome.NewPopulation(p1, p2)

	taken := pop.Take(func(p *genome.Phenotype[gene.Float64Gene, float64]) bool {
		return p.Generation == 5
	})

	require.Len(t, taken, 1)
	assert.Equal(t, p2.ID, taken[0].ID)
	assert.Equal(t, 1, pop.Len())
}

func TestScore_Dominates(t *testing.T) {
	obj := genome.Multi(genome.Minimize, genome.Minimize)
	a := genome.Score{1, 2}
	b := genome.Score{2, 3}
	c := genome.Score{1, 3}

	assert.True(t, obj.Dominates(a, b))
	assert.False(t, obj.Dominates(b, a))
	assert.True(t, obj.Dominates(a, c), "a matches c on dim 0 and is strictly better on dim 1")
	assert.False(t, obj.Dominates(c, a))
}

func TestObjective_Better_Maximize(t *testing.T) {
	obj := genome.Single(genome.Maximize)
	assert.True(t, obj.Better(genome.Score{5}, genome.Score{3}))
	assert.False(t, obj.Better(genome.Score{3}, genome.Score{5}))
}

func TestChromosomeOf_GeneratorLength(t *testing.T) {
	rng := xrand.New(1)
	seed := gene.NewFloat64Gene(0, -1, 1)
	ch, err := genome.NewChromosomeOf[gene.Float64Gene, float64](7, seed, rng)
	require.NoError(t, err)
	assert.Equal(t, 7, ch.Len())
}
