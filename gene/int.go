package gene

import "github.com/yaricom/evocore/xrand"

// IntGene is a reference bounded, arithmetic gene over int alleles, using
// saturating arithmetic (no overflow, no wraparound, divide-by-zero
// returns the dividend).
type IntGene struct {
	allele   int
	min, max int
}

// NewIntGene constructs an IntGene with the given bounds.
func NewIntGene(allele, min, max int) IntGene {
	return IntGene{allele: allele, min: min, max: max}
}

func (g IntGene) Allele() int { return g.allele }

func (g IntGene) WithAllele(a int) Gene[int] {
	g.allele = a
	return g
}

func (g IntGene) NewInstance(rng *xrand.Rng) Gene[int] {
	span := g.max - g.min + 1
	g.allele = g.min + rng.Intn(span)
	return g
}

func (g IntGene) NewInstanceFrom(a int) Gene[int] {
	g.allele = a
	return g
}

func (g IntGene) IsValid() bool {
	return g.allele >= g.min && g.allele <= g.max
}

func (g IntGene) Min() int      { return g.min }
func (g IntGene) Max() int      { return g.max }
func (g IntGene) WiderMin() int { return g.min }
func (g IntGene) WiderMax() int { return g.max }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (g IntGene) Add(other int) int { return clampInt(g.allele+other, g.min, g.max) }
func (g IntGene) Sub(other int) int { return clampInt(g.allele-other, g.min, g.max) }
func (g IntGene) Mul(other int) int { return clampInt(g.allele*other, g.min, g.max) }

// Div saturates to bounds; divide-by-zero returns the dividend unchanged.
func (g IntGene) Div(other int) int {
	if other == 0 {
		return g.allele
	}
	return clampInt(g.allele/other, g.min, g.max)
}

// Mean returns the integer midpoint of this gene's allele and other.
func (g IntGene) Mean(other int) int {
	return clampInt((g.allele+other)/2, g.min, g.max)
}
