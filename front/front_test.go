package front_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaricom/evocore/front"
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
)

func multiPhenotype(scores ...float64) *genome.Phenotype[gene.Float64Gene, float64] {
	ch, err := genome.NewChromosome[gene.Float64Gene, float64]([]gene.Float64Gene{gene.NewFloat64Gene(0, -100, 100)})
	if err != nil {
		panic(err)
	}
	g := genome.NewGenotype(ch)
	p := genome.NewPhenotype[gene.Float64Gene, float64](g, 0)
	p.SetScore(genome.Score(scores))
	return p
}

func TestFront_RejectsDominatedCandidate(t *testing.T) {
	f := front.New[gene.Float64Gene, float64](genome.Multi(genome.Minimize, genome.Minimize), 1, 10)

	good := multiPhenotype(1, 1)
	f.Offer([]*genome.Phenotype[gene.Float64Gene, float64]{good})
	require.Equal(t, 1, f.Len())

	dominated := multiPhenotype(2, 2)
	f.Offer([]*genome.Phenotype[gene.Float64Gene, float64]{dominated})

	assert.Equal(t, 1, f.Len())
	assert.Equal(t, good.ID, f.Members()[0].ID)
}

func TestFront_EvictsDominatedExistingMembers(t *testing.T) {
	f := front.New[gene.Float64Gene, float64](genome.Multi(genome.Minimize, genome.Minimize), 1, 10)

	worse := multiPhenotype(5, 5)
	f.Offer([]*genome.Phenotype[gene.Float64Gene, float64]{worse})
	require.Equal(t, 1, f.Len())

	better := multiPhenotype(1, 1)
	f.Offer([]*genome.Phenotype[gene.Float64Gene, float64]{better})

	require.Equal(t, 1, f.Len())
	assert.Equal(t, better.ID, f.Members()[0].ID)
}

func TestFront_KeepsMutuallyNonDominatedMembers(t *testing.T) {
	f := front.New[gene.Float64Gene, float64](genome.Multi(genome.Minimize, genome.Minimize), 1, 10)

	a := multiPhenotype(1, 5)
	b := multiPhenotype(5, 1)
	f.Offer([]*genome.Phenotype[gene.Float64Gene, float64]{a, b})

	assert.Equal(t, 2, f.Len())
}

func TestFront_TrimsToMaxByCrowdingDistance(t *testing.T) {
	f := front.New[gene.Float64Gene, float64](genome.Multi(genome.Minimize, genome.Minimize), 1, 3)

	candidates := []*genome.Phenotype[gene.Float64Gene, float64]{
		multiPhenotype(0, 10),
		multiPhenotype(2, 8),
		multiPhenotype(4, 6),
		multiPhenotype(6, 4),
		multiPhenotype(8, 2),
		multiPhenotype(10, 0),
	}
	f.Offer(candidates)

	assert.LessOrEqual(t, f.Len(), 3)
	assert.Positive(t, f.Len())
}

func TestFront_IgnoresUnscoredCandidates(t *testing.T) {
	f := front.New[gene.Float64Gene, float64](genome.Multi(genome.Minimize, genome.Minimize), 1, 10)

	ch, err := genome.NewChromosome[gene.Float64Gene, float64]([]gene.Float64Gene{gene.NewFloat64Gene(0, -10, 10)})
	require.NoError(t, err)
	unscored := genome.NewPhenotype[gene.Float64Gene, float64](genome.NewGenotype(ch), 0)

	f.Offer([]*genome.Phenotype[gene.Float64Gene, float64]{unscored})
	assert.Equal(t, 0, f.Len())
}

func TestFront_AntichainInvariant(t *testing.T) {
	f := front.New[gene.Float64Gene, float64](genome.Multi(genome.Minimize, genome.Minimize), 1, 20)

	candidates := []*genome.Phenotype[gene.Float64Gene, float64]{
		multiPhenotype(1, 9), multiPhenotype(2, 2), multiPhenotype(3, 7),
		multiPhenotype(4, 4), multiPhenotype(5, 5), multiPhenotype(9, 1),
	}
	f.Offer(candidates)

	obj := genome.Multi(genome.Minimize, genome.Minimize)
	members := f.Members()
	for i := range members {
		for j := range members {
			if i == j {
				continue
			}
			assert.False(t, obj.Dominates(*members[i].Score(), *members[j].Score()),
				"no surviving member may dominate another")
		}
	}
}
