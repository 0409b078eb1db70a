// Package front implements a bounded, non-dominated (Pareto) archive with
// NSGA-II-style crowding-distance trimming, maintained as a persistent
// archive across generations rather than a single per-generation ranking.
package front

import (
	"math"
	"sort"

	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
)

// Front is a bounded archive of mutually non-dominated phenotypes,
// trimmed to [min,max] by crowding distance when it overflows.
type Front[G gene.Gene[A], A any] struct {
	obj      genome.Objective
	min, max int
	members  []*genome.Phenotype[G, A]
}

// New constructs an empty front for the given objective and size bounds.
func New[G gene.Gene[A], A any](obj genome.Objective, min, max int) *Front[G, A] {
	return &Front[G, A]{obj: obj, min: min, max: max}
}

// Members returns the current archive contents.
func (f *Front[G, A]) Members() []*genome.Phenotype[G, A] { return f.members }

// Len returns the number of phenotypes currently archived.
func (f *Front[G, A]) Len() int { return len(f.members) }

// Offer tests each candidate for non-domination against the current
// archive plus the other candidates in this call, admitting survivors and
// removing any existing archive member the candidate dominates. Dominance
// tests may be computed against a pre-step snapshot in parallel by the
// caller, but insertion itself is single-threaded here and re-checks each
// candidate against the archive as it stands at the moment of insertion,
// so a later admission can still evict an earlier one within the same
// Offer call.
func (f *Front[G, A]) Offer(candidates []*genome.Phenotype[G, A]) {
	for _, c := range candidates {
		if c.Score() == nil {
			continue
		}
		f.offerOne(c)
	}
	if len(f.members) > f.max {
		f.trim()
	}
}

func (f *Front[G, A]) offerOne(c *genome.Phenotype[G, A]) {
	cs := *c.Score()
	kept := f.members[:0]
	for _, m := range f.members {
		ms := *m.Score()
		if f.obj.Dominates(ms, cs) {
			// an existing member dominates the candidate: candidate is
			// rejected and every other member is retained unchanged.
			return
		}
		if !f.obj.Dominates(cs, ms) {
			kept = append(kept, m)
		}
		// else: the candidate dominates this member, which is dropped.
	}
	f.members = append(kept, c)
}

// trim reduces the archive to min members by repeatedly dropping the
// member with the smallest crowding distance, grounded on the NSGA-II
// reference's CrowdingDistance-based survivor selection.
func (f *Front[G, A]) trim() {
	for len(f.members) > f.min {
		dist := crowdingDistance(f.members)
		worst := 0
		for i, d := range dist {
			if d < dist[worst] {
				worst = i
			}
		}
		f.members = append(f.members[:worst], f.members[worst+1:]...)
	}
}

// crowdingDistance computes, per member, the sum across objective
// dimensions of the normalized gap between its two neighbors when sorted
// along that dimension; boundary members receive +Inf so they are never
// trimmed ahead of interior members, matching the NSGA-II reference.
func crowdingDistance[G gene.Gene[A], A any](members []*genome.Phenotype[G, A]) []float64 {
	n := len(members)
	dist := make([]float64, n)
	if n == 0 {
		return dist
	}
	arity := members[0].Score().Arity()

	for dim := 0; dim < arity; dim++ {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return (*members[order[i]].Score())[dim] < (*members[order[j]].Score())[dim]
		})

		lo := (*members[order[0]].Score())[dim]
		hi := (*members[order[n-1]].Score())[dim]
		span := hi - lo
		dist[order[0]] = math.Inf(1)
		dist[order[n-1]] = math.Inf(1)
		if span == 0 {
			continue
		}
		for k := 1; k < n-1; k++ {
			prev := (*members[order[k-1]].Score())[dim]
			next := (*members[order[k+1]].Score())[dim]
			dist[order[k]] += (next - prev) / span
		}
	}
	return dist
}
