package genome

import (
	"sync/atomic"

	"github.com/yaricom/evocore/gene"
)

// nextID is the process-wide monotonically increasing phenotype id
// counter.
var nextID int64

// NextID returns the next process-unique phenotype id.
func NextID() int64 {
	return atomic.AddInt64(&nextID, 1)
}

// Phenotype pairs a genotype with its (possibly absent) score, its
// generation of birth, its process-unique id, and an optional species id
// assigned by the speciation step.
type Phenotype[G gene.Gene[A], A any] struct {
	Genotype   Genotype[G, A]
	score      *Score
	Generation int
	ID         int64
	SpeciesID  *int
}

// NewPhenotype constructs an unevaluated phenotype born at the given
// generation, assigning it a fresh process-unique id.
func NewPhenotype[G gene.Gene[A], A any](g Genotype[G, A], generation int) *Phenotype[G, A] {
	return &Phenotype[G, A]{
		Genotype:   g,
		Generation: generation,
		ID:         NextID(),
	}
}

// Score returns the phenotype's score, or nil if it has not been
// evaluated yet.
func (p *Phenotype[G, A]) Score() *Score { return p.score }

// SetScore assigns the phenotype's score.
func (p *Phenotype[G, A]) SetScore(s Score) { p.score = &s }

// ClearScore marks the phenotype as not-yet-scored.
func (p *Phenotype[G, A]) ClearScore() { p.score = nil }

// Evaluated reports whether the phenotype currently carries a score.
func (p *Phenotype[G, A]) Evaluated() bool { return p.score != nil }

// Age returns how many generations have elapsed since this phenotype was
// created, given the engine's current generation index.
func (p *Phenotype[G, A]) Age(currentIndex int) int {
	return currentIndex - p.Generation
}
