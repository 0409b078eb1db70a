package pipeline

import (
	"fmt"

	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/metrics"
)

// MetricsAuditor is the default per-generation statistics auditor: the
// count of distinct scores in the population, the mean genome size (total
// genes across a genotype's chromosomes), a diversity ratio (distinct
// scores over population size), and a carryover rate (the fraction of
// this generation's members, by phenotype id, that were already present
// last generation). Stateful across calls since carryover needs the
// previous generation's id set; a fresh MetricsAuditor must be used per
// run.
type MetricsAuditor[G gene.Gene[A], A any] struct {
	previousIDs map[int64]bool
}

// Audit implements Auditor.
func (a *MetricsAuditor[G, A]) Audit(generation int, pop *genome.Population[G, A]) []metrics.Sample {
	members := pop.Members()
	n := len(members)
	if n == 0 {
		return nil
	}

	seenScores := make(map[string]bool, n)
	currentIDs := make(map[int64]bool, n)
	totalGenes := 0
	carryover := 0

	for _, ph := range members {
		currentIDs[ph.ID] = true
		if a.previousIDs[ph.ID] {
			carryover++
		}
		if s := ph.Score(); s != nil {
			seenScores[fmt.Sprint(*s)] = true
		}
		for ci := 0; ci < ph.Genotype.Len(); ci++ {
			totalGenes += ph.Genotype.Chromosome(ci).Len()
		}
	}

	a.previousIDs = currentIDs

	return []metrics.Sample{
		{Name: "audit.unique_scores", Tag: metrics.TagDerived, Value: float64(len(seenScores))},
		{Name: "audit.genome_size", Tag: metrics.TagDerived, Value: float64(totalGenes) / float64(n)},
		{Name: "audit.diversity_ratio", Tag: metrics.TagDerived, Value: float64(len(seenScores)) / float64(n)},
		{Name: "audit.carryover_rate", Tag: metrics.TagDerived, Value: float64(carryover) / float64(n)},
	}
}
