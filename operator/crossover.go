package operator

import (
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/xrand"
)

// UniformCrossover swaps each gene independently between the two parents
// with 50% probability (rand.Float64() < 0.5), using straight positional
// alignment since chromosomes here are fixed-length and homogeneous.
type UniformCrossover[G gene.Gene[A], A any] struct {
	rate float64
}

// NewUniformCrossover constructs a uniform crossover operator with the
// given application rate.
func NewUniformCrossover[G gene.Gene[A], A any](rate float64) UniformCrossover[G, A] {
	return UniformCrossover[G, A]{rate: rate}
}

func (c UniformCrossover[G, A]) Name() string  { return "uniform-crossover" }
func (c UniformCrossover[G, A]) Rate() float64 { return c.rate }

func (c UniformCrossover[G, A]) Cross(p1, p2 genome.Genotype[G, A], rng *xrand.Rng) (genome.Genotype[G, A], genome.Genotype[G, A]) {
	c1 := p1.Clone()
	c2 := p2.Clone()
	for ci := 0; ci < c1.Len() && ci < c2.Len(); ci++ {
		ch1 := c1.Chromosome(ci)
		ch2 := c2.Chromosome(ci)
		for gi := 0; gi < ch1.Len() && gi < ch2.Len(); gi++ {
			if rng.Float64() < 0.5 {
				g1, g2 := ch1.Gene(gi), ch2.Gene(gi)
				ch1.SetGene(gi, g2)
				ch2.SetGene(gi, g1)
			}
		}
	}
	return c1, c2
}

// MeanCrossover replaces each gene pair with the arithmetic mean of the
// two parents' alleles, via gene.Arithmetic.Mean. Requires G to also
// implement gene.Arithmetic[A].
type MeanCrossover[G interface {
	gene.Gene[A]
	gene.Arithmetic[A]
}, A any] struct {
	rate float64
}

// NewMeanCrossover constructs a mean crossover operator with the given
// application rate.
func NewMeanCrossover[G interface {
	gene.Gene[A]
	gene.Arithmetic[A]
}, A any](rate float64) MeanCrossover[G, A] {
	return MeanCrossover[G, A]{rate: rate}
}

func (c MeanCrossover[G, A]) Name() string  { return "mean-crossover" }
func (c MeanCrossover[G, A]) Rate() float64 { return c.rate }

func (c MeanCrossover[G, A]) Cross(p1, p2 genome.Genotype[G, A], rng *xrand.Rng) (genome.Genotype[G, A], genome.Genotype[G, A]) {
	c1 := p1.Clone()
	c2 := p2.Clone()
	for ci := 0; ci < c1.Len() && ci < c2.Len(); ci++ {
		ch1 := c1.Chromosome(ci)
		ch2 := c2.Chromosome(ci)
		for gi := 0; gi < ch1.Len() && gi < ch2.Len(); gi++ {
			g1, g2 := ch1.Gene(gi), ch2.Gene(gi)
			mean := g1.Mean(g2.Allele())
			merged := g1.WithAllele(mean).(G)
			ch1.SetGene(gi, merged)
			ch2.SetGene(gi, merged)
		}
	}
	return c1, c2
}
