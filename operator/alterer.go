package operator

import (
	"time"

	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/xrand"
)

// Alterer applies a registered crossover followed by a registered mutator
// to an offspring population, in registration order, emitting metrics
// describing each operator's activity. Crossover is applied pairwise with
// probability equal to the crossover's own rate; otherwise the pair passes
// through unchanged. Mutation considers each gene independently at the
// mutator's rate (enforced inside the Mutator implementation itself).
type Alterer[G gene.Gene[A], A any] struct {
	crossovers []Crossover[G, A]
	mutators   []Mutator[G, A]
}

// NewAlterer constructs a composite alterer from the given crossovers and
// mutators, applied in the order given.
func NewAlterer[G gene.Gene[A], A any](crossovers []Crossover[G, A], mutators []Mutator[G, A]) *Alterer[G, A] {
	return &Alterer[G, A]{crossovers: crossovers, mutators: mutators}
}

// Alter mutates pop in place: every newly produced phenotype is stamped
// with the given generation as its generation-of-birth, assigned a fresh
// id, and has its score cleared.
func (a *Alterer[G, A]) Alter(pop *genome.Population[G, A], generation int, rng *xrand.Rng) []Metric {
	var metrics []Metric

	for _, cx := range a.crossovers {
		start := time.Now()
		modified := 0
		members := pop.Members()
		for i := 0; i+1 < len(members); i += 2 {
			if rng.Float64() > cx.Rate() {
				continue
			}
			g1, g2 := cx.Cross(members[i].Genotype, members[i+1].Genotype, rng)
			members[i] = rebirth(g1, generation)
			members[i+1] = rebirth(g2, generation)
			modified += 2
		}
		pop.Invalidate()
		metrics = append(metrics,
			Metric{Name: cx.Name() + ".count", Value: float64(modified)},
			Metric{Name: cx.Name() + ".duration_ms", Value: float64(time.Since(start).Milliseconds())},
		)
	}

	for _, mu := range a.mutators {
		start := time.Now()
		modified := 0
		members := pop.Members()
		for i, m := range members {
			before := m.Genotype
			after := mu.Mutate(before, rng)
			members[i] = rebirth(after, generation)
			modified++
		}
		pop.Invalidate()
		metrics = append(metrics,
			Metric{Name: mu.Name() + ".count", Value: float64(modified)},
			Metric{Name: mu.Name() + ".duration_ms", Value: float64(time.Since(start).Milliseconds())},
		)
	}

	return metrics
}

func rebirth[G gene.Gene[A], A any](g genome.Genotype[G, A], generation int) *genome.Phenotype[G, A] {
	return genome.NewPhenotype[G, A](g, generation)
}
