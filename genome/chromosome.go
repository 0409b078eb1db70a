package genome

import (
	"github.com/pkg/errors"
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/xrand"
)

// ErrEmptyChromosome is returned when a chromosome is constructed with no
// genes and no means of generating any.
var ErrEmptyChromosome = errors.New("chromosome must contain at least one gene")

// Chromosome is an ordered, fixed-length sequence of genes of a single
// type. Mutation changes gene content in place, never the sequence length.
type Chromosome[G gene.Gene[A], A any] struct {
	genes []G
}

// NewChromosome constructs a chromosome from an explicit gene vector.
func NewChromosome[G gene.Gene[A], A any](genes []G) (Chromosome[G, A], error) {
	if len(genes) == 0 {
		return Chromosome[G, A]{}, ErrEmptyChromosome
	}
	cp := make([]G, len(genes))
	copy(cp, genes)
	return Chromosome[G, A]{genes: cp}, nil
}

// NewChromosomeOf constructs a chromosome of the given length by repeatedly
// sampling a new instance from the provided seed gene.
func NewChromosomeOf[G gene.Gene[A], A any](length int, seed G, rng *xrand.Rng) (Chromosome[G, A], error) {
	if length <= 0 {
		return Chromosome[G, A]{}, ErrEmptyChromosome
	}
	genes := make([]G, length)
	for i := 0; i < length; i++ {
		genes[i] = seed.NewInstance(rng).(G)
	}
	return Chromosome[G, A]{genes: genes}, nil
}

// Len returns the number of genes in the chromosome.
func (c Chromosome[G, A]) Len() int { return len(c.genes) }

// Genes returns the underlying gene slice. Callers must not retain it
// across mutating calls to SetGene.
func (c Chromosome[G, A]) Genes() []G { return c.genes }

// Gene returns the gene at index i.
func (c Chromosome[G, A]) Gene(i int) G { return c.genes[i] }

// SetGene replaces the gene at index i.
func (c Chromosome[G, A]) SetGene(i int, g G) { c.genes[i] = g }

// Clone returns a deep copy of the chromosome's gene slice.
func (c Chromosome[G, A]) Clone() Chromosome[G, A] {
	cp := make([]G, len(c.genes))
	copy(cp, c.genes)
	return Chromosome[G, A]{genes: cp}
}

// Valid reports whether every gene in the chromosome is valid.
func (c Chromosome[G, A]) Valid() bool {
	for _, g := range c.genes {
		if !g.IsValid() {
			return false
		}
	}
	return true
}
