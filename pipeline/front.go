package pipeline

import (
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
)

// FrontUpdate offers every phenotype born this generation to ctx.Front.
// It is a no-op for single-objective runs (ctx.Front == nil). Dominance
// tests run sequentially inside Front.Offer, against the front as it
// stands at each insertion; the configured executor is not used here.
//
// When ctx.Species has novelty search enabled (NoveltyThreshold > 0), any
// phenotype whose distance to its own species mascot exceeds the
// threshold is also offered to the front in a second Offer call,
// regardless of generation of birth; those candidates pass through the
// same dominance test against the archive, including members admitted
// by the first call.
type FrontUpdate[G gene.Gene[A], A, T any] struct{}

func (FrontUpdate[G, A, T]) Name() string { return "front" }

func (s *FrontUpdate[G, A, T]) Run(ctx *Context[G, A, T]) error {
	if ctx.Front == nil {
		return nil
	}
	var born []*genome.Phenotype[G, A]
	for _, ph := range ctx.Population.Members() {
		if ph.Generation == ctx.Index {
			born = append(born, ph)
		}
	}
	ctx.Front.Offer(born)

	if ctx.Species != nil {
		if novel := ctx.Species.NoveltyCandidates(ctx.Population); len(novel) > 0 {
			ctx.Front.Offer(novel)
		}
	}
	return nil
}
