package pipeline

import (
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/metrics"
)

// Filter replaces every phenotype that is too old or invalid with the
// replacement strategy's output, and evicts species older than
// max_species_age via the registry's EvictAged.
type Filter[G gene.Gene[A], A, T any] struct{}

func (Filter[G, A, T]) Name() string { return "filter" }

func (s *Filter[G, A, T]) Run(ctx *Context[G, A, T]) error {
	ageEvicted := 0
	invalidEvicted := 0

	members := ctx.Population.Members()
	for i, ph := range members {
		aged := ph.Age(ctx.Index) > ctx.Config.MaxAge
		invalid := !ph.Genotype.Valid()
		if !aged && !invalid {
			continue
		}
		if aged {
			ageEvicted++
		}
		if invalid {
			invalidEvicted++
		}
		replacement := ctx.Replacement.Replace(ctx.Population, ctx.Problem, ctx.Rng)
		members[i] = genome.NewPhenotype[G, A](replacement, ctx.Index)
	}
	ctx.Population.Invalidate()

	ctx.Metrics.Record("age_filter", metrics.TagGeneration, float64(ageEvicted))
	ctx.Metrics.Record("invalid_filter", metrics.TagGeneration, float64(invalidEvicted))

	if ctx.Species != nil {
		evicted := ctx.Species.EvictAged(ctx.Config.MaxSpeciesAge)
		ctx.Metrics.Record("species_filter", metrics.TagGeneration, float64(evicted))
	}

	return nil
}
