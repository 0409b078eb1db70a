package operator

import (
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/xrand"
)

// ArithmeticMutator perturbs each gene independently with probability
// Rate by a signed, power-scaled random amount (sign * rand.Float64() *
// power), saturating through gene.Bounded so perturbation never escapes
// the gene's own range. Requires G to also implement gene.Arithmetic[A]
// and gene.Bounded[A].
type ArithmeticMutator[G interface {
	gene.Gene[A]
	gene.Arithmetic[A]
	gene.Bounded[A]
}, A any] struct {
	rate  float64
	power float64
}

// NewArithmeticMutator constructs an arithmetic mutator with the given
// per-gene application rate and perturbation power.
func NewArithmeticMutator[G interface {
	gene.Gene[A]
	gene.Arithmetic[A]
	gene.Bounded[A]
}, A any](rate, power float64) ArithmeticMutator[G, A] {
	return ArithmeticMutator[G, A]{rate: rate, power: power}
}

func (m ArithmeticMutator[G, A]) Name() string  { return "arithmetic-mutator" }
func (m ArithmeticMutator[G, A]) Rate() float64 { return m.rate }

func (m ArithmeticMutator[G, A]) Mutate(g genome.Genotype[G, A], rng *xrand.Rng) genome.Genotype[G, A] {
	out := g.Clone()
	for ci := 0; ci < out.Len(); ci++ {
		ch := out.Chromosome(ci)
		for gi := 0; gi < ch.Len(); gi++ {
			if rng.Float64() > m.rate {
				continue
			}
			gn := ch.Gene(gi)
			delta := deltaFor(gn, rng, m.power)
			mutated := gn.Add(delta)
			ch.SetGene(gi, gn.WithAllele(mutated).(G))
		}
	}
	return out
}

// deltaFor computes a signed perturbation sign * Float64() * power in
// absolute allele units; it is not scaled by the gene's span. Bounds are
// enforced afterwards by the gene's saturating Add.
func deltaFor[G interface {
	gene.Gene[A]
	gene.Bounded[A]
}, A any](g G, rng *xrand.Rng, power float64) float64 {
	return rng.Sign() * rng.Float64() * power
}

// UniformMutator replaces each gene independently with probability Rate
// by a freshly sampled allele from the same domain, grounded on the
// engine's own "produce a new instance with a freshly sampled allele"
// gene capability rather than on arithmetic perturbation — preserves
// validity by construction for non-arithmetic gene families (bits,
// permutations, and the like).
type UniformMutator[G gene.Gene[A], A any] struct {
	rate float64
}

// NewUniformMutator constructs a uniform mutator with the given per-gene
// application rate.
func NewUniformMutator[G gene.Gene[A], A any](rate float64) UniformMutator[G, A] {
	return UniformMutator[G, A]{rate: rate}
}

func (m UniformMutator[G, A]) Name() string  { return "uniform-mutator" }
func (m UniformMutator[G, A]) Rate() float64 { return m.rate }

func (m UniformMutator[G, A]) Mutate(g genome.Genotype[G, A], rng *xrand.Rng) genome.Genotype[G, A] {
	out := g.Clone()
	for ci := 0; ci < out.Len(); ci++ {
		ch := out.Chromosome(ci)
		for gi := 0; gi < ch.Len(); gi++ {
			if rng.Float64() > m.rate {
				continue
			}
			gn := ch.Gene(gi)
			ch.SetGene(gi, gn.NewInstance(rng).(G))
		}
	}
	return out
}
