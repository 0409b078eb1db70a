package pipeline

import (
	"github.com/yaricom/evocore/gene"
)

// Speciate reassigns every phenotype to a species and recomputes adjusted
// scores. It is a no-op when ctx.Distance is unconfigured (speciation is
// opt-in). If all species vanished since the last generation (mass
// eviction by Filter), Registry.Speciate recreates the species set from
// scratch using the current population.
type Speciate[G gene.Gene[A], A, T any] struct{}

func (Speciate[G, A, T]) Name() string { return "speciate" }

func (s *Speciate[G, A, T]) Run(ctx *Context[G, A, T]) error {
	if ctx.Species == nil || ctx.Distance == nil {
		return nil
	}
	ctx.Species.Speciate(ctx.Population, ctx.Index, ctx.Rng)
	ctx.Species.ComputeAdjustedScores(ctx.Population, ctx.Objective)
	return nil
}
