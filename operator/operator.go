// Package operator defines the Selector and Alterer external collaborator
// contracts plus a handful of reference implementations (tournament,
// roulette, rank, elite, uniform selection; uniform and mean crossover;
// arithmetic and uniform mutation). Concrete alterers beyond these
// references are left to the caller.
package operator

import (
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/xrand"
)

// Metric is a single named measurement an alterer or selector emits
// describing its own activity this generation (count of modifications,
// elapsed time, and so on).
type Metric struct {
	Name  string
	Value float64
}

// Selector chooses exactly Count phenotypes from the input population
// under a selector-specific discipline, without modifying the input.
// Sampling with replacement is allowed. The returned population's sorted
// flag is always false.
type Selector[G gene.Gene[A], A any] interface {
	Select(pop *genome.Population[G, A], obj genome.Objective, count int, rng *xrand.Rng) *genome.Population[G, A]
	Name() string
}

// Crossover combines two parents into two offspring. Implementations must
// preserve gene bounds: arithmetic crossovers saturate and clamp through
// gene.Bounded; non-arithmetic crossovers (uniform swap) preserve validity
// by construction.
type Crossover[G gene.Gene[A], A any] interface {
	Cross(p1, p2 genome.Genotype[G, A], rng *xrand.Rng) (genome.Genotype[G, A], genome.Genotype[G, A])
	Name() string
	Rate() float64
}

// Mutator returns a mutated copy of a single genotype, leaving the input
// unchanged. Each gene is considered independently with the mutator's rate.
type Mutator[G gene.Gene[A], A any] interface {
	Mutate(g genome.Genotype[G, A], rng *xrand.Rng) genome.Genotype[G, A]
	Name() string
	Rate() float64
}
