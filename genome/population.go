package genome

import (
	"sort"

	"github.com/yaricom/evocore/gene"
)

// Population is an ordered sequence of phenotypes plus a cached sorted
// flag. Any mutating access invalidates the flag; only Sort sets it.
type Population[G gene.Gene[A], A any] struct {
	members []*Phenotype[G, A]
	sorted  bool
}

// NewPopulation constructs a population from the given phenotypes.
func NewPopulation[G gene.Gene[A], A any](members ...*Phenotype[G, A]) *Population[G, A] {
	cp := make([]*Phenotype[G, A], len(members))
	copy(cp, members)
	return &Population[G, A]{members: cp}
}

// Len returns the number of phenotypes.
func (p *Population[G, A]) Len() int { return len(p.members) }

// Sorted reports whether the population is known to be sorted by the
// objective it was last sorted against.
func (p *Population[G, A]) Sorted() bool { return p.sorted }

// At returns the phenotype at index i.
func (p *Population[G, A]) At(i int) *Phenotype[G, A] { return p.members[i] }

// Set replaces the phenotype at index i, invalidating the sorted flag.
func (p *Population[G, A]) Set(i int, ph *Phenotype[G, A]) {
	p.members[i] = ph
	p.sorted = false
}

// Members returns the underlying phenotype slice. Callers must treat it as
// read-only unless they also call Invalidate.
func (p *Population[G, A]) Members() []*Phenotype[G, A] { return p.members }

// Invalidate marks the population as unsorted, for callers that mutate
// Members() directly.
func (p *Population[G, A]) Invalidate() { p.sorted = false }

// Append adds phenotypes to the population, invalidating the sorted flag.
func (p *Population[G, A]) Append(members ...*Phenotype[G, A]) {
	p.members = append(p.members, members...)
	p.sorted = false
}

// Clone returns a shallow copy of the population (phenotype pointers are
// shared; the member slice itself is independent).
func (p *Population[G, A]) Clone() *Population[G, A] {
	cp := make([]*Phenotype[G, A], len(p.members))
	copy(cp, p.members)
	return &Population[G, A]{members: cp, sorted: p.sorted}
}

// Sort orders the population by the given objective, best first, and
// marks it sorted.
func (p *Population[G, A]) Sort(obj Objective) {
	sort.SliceStable(p.members, func(i, j int) bool {
		si, sj := p.members[i].Score(), p.members[j].Score()
		if si == nil || sj == nil {
			return si != nil // scored members sort ahead of unscored ones
		}
		return obj.Better(*si, *sj)
	})
	p.sorted = true
}

// Take destructively removes and returns every member matching predicate,
// compacting the remainder in place. The sorted flag is invalidated.
func (p *Population[G, A]) Take(predicate func(*Phenotype[G, A]) bool) []*Phenotype[G, A] {
	var taken []*Phenotype[G, A]
	remaining := p.members[:0]
	for _, m := range p.members {
		if predicate(m) {
			taken = append(taken, m)
		} else {
			remaining = append(remaining, m)
		}
	}
	p.members = remaining
	p.sorted = false
	return taken
}

// Best returns the first member, valid only when the population is sorted.
func (p *Population[G, A]) Best() *Phenotype[G, A] {
	if len(p.members) == 0 {
		return nil
	}
	return p.members[0]
}
