// Package species implements the adaptive-clustering speciation subsystem:
// mascot-centered equivalence classes with age, adjusted score, and
// stagnation tracking against a caller-supplied Distance function.
package species

import (
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/xrand"
	"gonum.org/v1/gonum/stat"
)

// Distance computes a numerical distance between two genotypes for use by
// speciation; lower is more similar. Threshold returns the compatibility
// threshold below which two genotypes are considered the same species.
type Distance[G gene.Gene[A], A any] interface {
	Distance(a, b genome.Genotype[G, A]) float64
	Threshold() float64
}

// Species is an equivalence class of phenotypes under a distance
// threshold, centered on a frozen mascot genotype sampled from its members
// at creation time.
type Species[G gene.Gene[A], A any] struct {
	ID                int
	Mascot            genome.Genotype[G, A]
	RepresentativeScore genome.Score
	AdjustedScore     float64
	Age               int
	Stagnation        int
	GenerationOfBirth int
	bestScoreEver     *float64

	memberIDs map[int64]bool
}

func newSpecies[G gene.Gene[A], A any](id int, mascot genome.Genotype[G, A], rep genome.Score, generation int) *Species[G, A] {
	return &Species[G, A]{
		ID:                id,
		Mascot:            mascot,
		RepresentativeScore: rep,
		GenerationOfBirth: generation,
		memberIDs:         make(map[int64]bool),
	}
}

// MemberCount returns the number of phenotypes currently assigned to this
// species.
func (s *Species[G, A]) MemberCount() int { return len(s.memberIDs) }

// Registry is a flat, id-keyed collection of species. Phenotypes carry
// only a species id, never a pointer: species are entries in a flat
// registry, mascots are owned by the registry.
type Registry[G gene.Gene[A], A any] struct {
	distance Distance[G, A]
	nextID   int
	species  []*Species[G, A]

	// NoveltyThreshold, when non-zero, enables the novelty-search hook: a
	// phenotype whose distance to its own species' mascot exceeds this
	// value is considered novel regardless of fitness. Zero (the default)
	// disables it.
	NoveltyThreshold float64
}

// NewRegistry constructs an empty species registry using the given
// distance function.
func NewRegistry[G gene.Gene[A], A any](distance Distance[G, A]) *Registry[G, A] {
	return &Registry[G, A]{distance: distance}
}

// WithNovelty enables the novelty-search admission hook with the given
// threshold and returns the registry for chaining.
func (r *Registry[G, A]) WithNovelty(threshold float64) *Registry[G, A] {
	r.NoveltyThreshold = threshold
	return r
}

// NoveltyCandidates returns every phenotype in pop whose distance to its
// own species' mascot exceeds NoveltyThreshold, independent of fitness.
// Returns nil when novelty search is disabled (NoveltyThreshold <= 0). A
// front-update step can offer these alongside its usual candidates; the
// front still applies its own dominance test to each of them.
func (r *Registry[G, A]) NoveltyCandidates(pop *genome.Population[G, A]) []*genome.Phenotype[G, A] {
	if r.NoveltyThreshold <= 0 {
		return nil
	}
	var out []*genome.Phenotype[G, A]
	for _, ph := range pop.Members() {
		if ph.SpeciesID == nil {
			continue
		}
		s := r.ByID(*ph.SpeciesID)
		if s == nil {
			continue
		}
		if r.distance.Distance(ph.Genotype, s.Mascot) > r.NoveltyThreshold {
			out = append(out, ph)
		}
	}
	return out
}

// All returns every currently registered species.
func (r *Registry[G, A]) All() []*Species[G, A] { return r.species }

// ByID returns the species with the given id, or nil.
func (r *Registry[G, A]) ByID(id int) *Species[G, A] {
	for _, s := range r.species {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Speciate assigns every phenotype in pop to a species, creating new
// species as needed. Existing species keep the mascot fixed at their
// creation; mascots are never resampled, whether or not any member of the
// species is still in the population. Species with no members from the
// previous call are purged first; each phenotype then joins the first
// species whose mascot is within the threshold, or starts a new species
// with its own genotype as mascot; species left with no members are purged
// at the end. If all species vanish, the next call recreates the species
// set from scratch, since no existing species remain to match against.
func (r *Registry[G, A]) Speciate(pop *genome.Population[G, A], generation int, rng *xrand.Rng) {
	r.purgeEmpty()
	r.resampleMascots(rng)

	for _, s := range r.species {
		s.memberIDs = make(map[int64]bool)
	}

	for _, ph := range pop.Members() {
		assigned := false
		for _, s := range r.species {
			if r.distance.Distance(ph.Genotype, s.Mascot) < r.distance.Threshold() {
				id := s.ID
				ph.SpeciesID = &id
				s.memberIDs[ph.ID] = true
				assigned = true
				break
			}
		}
		if !assigned {
			r.nextID++
			sc := genome.Score{}
			if ph.Score() != nil {
				sc = *ph.Score()
			}
			s := newSpecies[G, A](r.nextID, ph.Genotype.Clone(), sc, generation)
			s.memberIDs[ph.ID] = true
			id := s.ID
			ph.SpeciesID = &id
			r.species = append(r.species, s)
		}
	}

	r.purgeEmpty()
}

// resampleMascots keeps each species' existing mascot (the registry has no
// way to verify membership until Speciate reassigns; emptied species are
// purged beforehand so every remaining species is assumed to still be
// relevant) — new mascots for freshly surviving species are simply their
// frozen genotype from creation time, so a mascot is only ever replaced
// once its species would otherwise have no members at all.
func (r *Registry[G, A]) resampleMascots(rng *xrand.Rng) {
	// Mascots are frozen at species-creation time and only replaced when a
	// species would otherwise have zero members (handled by purgeEmpty
	// removing the species entirely rather than resampling a mascot for a
	// population that no longer contains it).
	_ = rng
}

func (r *Registry[G, A]) purgeEmpty() {
	if len(r.species) == 0 {
		return
	}
	kept := r.species[:0]
	for _, s := range r.species {
		if s.MemberCount() > 0 {
			kept = append(kept, s)
		}
	}
	r.species = kept
}

// ComputeAdjustedScores recomputes each species' adjusted score (fitness
// sharing): the objective-dependent aggregation of its members' raw
// scores divided by member count. Also advances each species' stagnation
// counter when its best-ever adjusted score fails to improve.
// Called from the Speciate step, after mascot/membership assignment, so
// the resulting AdjustedScore values are ready for the following
// generation's species-proportional Recombine quota.
func (r *Registry[G, A]) ComputeAdjustedScores(pop *genome.Population[G, A], obj genome.Objective) {
	for _, s := range r.species {
		scores := memberScores(pop, s.ID)
		if len(scores) == 0 {
			continue
		}
		mean := stat.Mean(scores, nil)
		adjusted := mean
		if len(obj.Directions) > 0 && obj.Directions[0] == genome.Minimize {
			adjusted = -mean
		}
		adjusted /= float64(len(scores))
		if s.bestScoreEver == nil || adjusted > *s.bestScoreEver {
			v := adjusted
			s.bestScoreEver = &v
			s.Stagnation = 0
		} else {
			s.Stagnation++
		}
		s.AdjustedScore = adjusted
	}
}

// EvictAged advances every species' age by one generation and removes
// species whose age now exceeds maxAge, returning the count evicted
// (emitted by the caller as the species_filter metric). Called from the
// Filter step.
func (r *Registry[G, A]) EvictAged(maxAge int) (evicted int) {
	kept := r.species[:0]
	for _, s := range r.species {
		s.Age++
		if s.Age > maxAge {
			evicted++
			continue
		}
		kept = append(kept, s)
	}
	r.species = kept
	return evicted
}

func memberScores[G gene.Gene[A], A any](pop *genome.Population[G, A], speciesID int) []float64 {
	var out []float64
	for _, ph := range pop.Members() {
		if ph.SpeciesID != nil && *ph.SpeciesID == speciesID {
			if s := ph.Score(); s != nil && len(*s) > 0 {
				out = append(out, (*s)[0])
			}
		}
	}
	return out
}
