package genome

import "github.com/yaricom/evocore/gene"

// Genotype is an ordered collection of chromosomes sharing a single gene
// type. It is valid iff every one of its chromosomes is valid.
type Genotype[G gene.Gene[A], A any] struct {
	chromosomes []Chromosome[G, A]
}

// NewGenotype constructs a genotype from the given chromosomes.
func NewGenotype[G gene.Gene[A], A any](chromosomes ...Chromosome[G, A]) Genotype[G, A] {
	cp := make([]Chromosome[G, A], len(chromosomes))
	copy(cp, chromosomes)
	return Genotype[G, A]{chromosomes: cp}
}

// Len returns the number of chromosomes.
func (g Genotype[G, A]) Len() int { return len(g.chromosomes) }

// Chromosomes returns the underlying chromosome slice.
func (g Genotype[G, A]) Chromosomes() []Chromosome[G, A] { return g.chromosomes }

// Chromosome returns the chromosome at index i.
func (g Genotype[G, A]) Chromosome(i int) Chromosome[G, A] { return g.chromosomes[i] }

// Valid reports whether every chromosome is valid.
func (g Genotype[G, A]) Valid() bool {
	for _, c := range g.chromosomes {
		if !c.Valid() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the genotype.
func (g Genotype[G, A]) Clone() Genotype[G, A] {
	cp := make([]Chromosome[G, A], len(g.chromosomes))
	for i, c := range g.chromosomes {
		cp[i] = c.Clone()
	}
	return Genotype[G, A]{chromosomes: cp}
}
