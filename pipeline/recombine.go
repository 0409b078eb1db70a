package pipeline

import (
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/metrics"
	"github.com/yaricom/evocore/species"
)

// speciationFallbackEpsilon is the probability that Recombine falls back
// to the un-speciated offspring-selection path even when species exist
// (1 − ε, ε ≈ 0.01).
const speciationFallbackEpsilon = 0.01

// Recombine selects survivors and offspring, alters the offspring, and
// reassembles the population. When a species registry is configured and
// non-empty, the offspring quota is partitioned across species
// proportionally to adjusted score with probability
// 1 - speciationFallbackEpsilon; otherwise offspring selection draws from
// the whole population.
type Recombine[G gene.Gene[A], A, T any] struct{}

func (Recombine[G, A, T]) Name() string { return "recombine" }

func (s *Recombine[G, A, T]) Run(ctx *Context[G, A, T]) error {
	offspringCount := ctx.Config.OffspringCount()
	survivorCount := ctx.Config.SurvivorCount()

	survivors := ctx.SurvivorSelector.Select(ctx.Population, ctx.Objective, survivorCount, ctx.Rng)

	var offspring *genome.Population[G, A]
	if ctx.Species != nil && len(ctx.Species.All()) > 0 && ctx.Rng.Float64() < 1-speciationFallbackEpsilon {
		offspring = s.selectBySpecies(ctx, offspringCount)
	} else {
		offspring = ctx.OffspringSelector.Select(ctx.Population, ctx.Objective, offspringCount, ctx.Rng)
	}

	offspring.Sort(ctx.Objective)
	if ctx.Alterer != nil {
		ms := ctx.Alterer.Alter(offspring, ctx.Index, ctx.Rng)
		for _, m := range ms {
			ctx.Metrics.Record(m.Name, metrics.TagAlterer, m.Value)
		}
	}

	combined := genome.NewPopulation[G, A]()
	combined.Append(survivors.Members()...)
	combined.Append(offspring.Members()...)
	ctx.Population = combined
	return nil
}

// selectBySpecies partitions the offspring quota proportionally to each
// species' adjusted score and selects within each species' own member
// cohort. If all species have a non-positive total adjusted score
// (degenerate early generations before ComputeAdjustedScores has run),
// quota is split evenly.
func (s *Recombine[G, A, T]) selectBySpecies(ctx *Context[G, A, T], total int) *genome.Population[G, A] {
	all := ctx.Species.All()
	quotas := speciesQuotas(all, total)

	combined := genome.NewPopulation[G, A]()
	for i, sp := range all {
		quota := quotas[i]
		if quota <= 0 {
			continue
		}
		cohort := membersOfSpecies(ctx.Population, sp.ID)
		if len(cohort) == 0 {
			continue
		}
		cohortPop := genome.NewPopulation[G, A](cohort...)
		selected := ctx.OffspringSelector.Select(cohortPop, ctx.Objective, quota, ctx.Rng)
		combined.Append(selected.Members()...)
	}
	return combined
}

func membersOfSpecies[G gene.Gene[A], A any](pop *genome.Population[G, A], speciesID int) []*genome.Phenotype[G, A] {
	var out []*genome.Phenotype[G, A]
	for _, ph := range pop.Members() {
		if ph.SpeciesID != nil && *ph.SpeciesID == speciesID {
			out = append(out, ph)
		}
	}
	return out
}

// speciesQuotas splits total across the given species proportionally to
// AdjustedScore, clamped to non-negative weights; any remainder left over
// from integer rounding is assigned to the species with the highest
// adjusted score.
func speciesQuotas[G gene.Gene[A], A any](all []*species.Species[G, A], total int) []int {
	n := len(all)
	quotas := make([]int, n)
	if n == 0 || total <= 0 {
		return quotas
	}

	weights := make([]float64, n)
	sum := 0.0
	for i, sp := range all {
		w := sp.AdjustedScore
		if w < 0 {
			w = 0
		}
		weights[i] = w
		sum += w
	}

	if sum <= 0 {
		base := total / n
		for i := range quotas {
			quotas[i] = base
		}
		quotas[0] += total - base*n
		return quotas
	}

	assigned := 0
	best := 0
	for i, w := range weights {
		q := int(w / sum * float64(total))
		quotas[i] = q
		assigned += q
		if weights[i] > weights[best] {
			best = i
		}
	}
	quotas[best] += total - assigned
	return quotas
}
