package operator

import (
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/problem"
	"github.com/yaricom/evocore/xrand"
)

// Replacement produces a replacement genotype when a phenotype is
// evicted by the Filter step. The caller installs the replacement at the
// evicted slot with generation-of-birth set to the current index and
// score cleared.
type Replacement[G gene.Gene[A], A, T any] interface {
	Replace(pop *genome.Population[G, A], prob problem.Problem[G, A, T], rng *xrand.Rng) genome.Genotype[G, A]
	Name() string
}

// EncodeReplacement calls the problem's Encode to produce a fresh random
// genotype.
type EncodeReplacement[G gene.Gene[A], A, T any] struct{}

func (EncodeReplacement[G, A, T]) Name() string { return "encode" }

func (EncodeReplacement[G, A, T]) Replace(pop *genome.Population[G, A], prob problem.Problem[G, A, T], rng *xrand.Rng) genome.Genotype[G, A] {
	return prob.Encode(rng)
}

// PopulationSampleReplacement picks a random member of the current
// population and clones its genotype, optionally applying Perturb (if
// non-nil) as a small random variation.
type PopulationSampleReplacement[G gene.Gene[A], A, T any] struct {
	Perturb func(genome.Genotype[G, A], *xrand.Rng) genome.Genotype[G, A]
}

func (PopulationSampleReplacement[G, A, T]) Name() string { return "population-sample" }

func (r PopulationSampleReplacement[G, A, T]) Replace(pop *genome.Population[G, A], prob problem.Problem[G, A, T], rng *xrand.Rng) genome.Genotype[G, A] {
	n := pop.Len()
	if n == 0 {
		return prob.Encode(rng)
	}
	sampled := pop.At(rng.Intn(n)).Genotype.Clone()
	if r.Perturb != nil {
		sampled = r.Perturb(sampled, rng)
	}
	return sampled
}
