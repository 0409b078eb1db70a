package gene

import "github.com/yaricom/evocore/xrand"

// BitGene is a reference gene over boolean alleles. It implements no
// capability interfaces beyond the base Gene contract: a bit has no
// meaningful bounds or arithmetic, only flip-equivalent mutation via
// NewInstance.
type BitGene struct {
	allele bool
}

// NewBitGene constructs a BitGene carrying the given allele.
func NewBitGene(allele bool) BitGene {
	return BitGene{allele: allele}
}

func (g BitGene) Allele() bool { return g.allele }

func (g BitGene) WithAllele(a bool) Gene[bool] {
	g.allele = a
	return g
}

func (g BitGene) NewInstance(rng *xrand.Rng) Gene[bool] {
	g.allele = rng.Float64() < 0.5
	return g
}

func (g BitGene) NewInstanceFrom(a bool) Gene[bool] {
	g.allele = a
	return g
}

// IsValid is always true: every bool value is a valid allele for a bit.
func (g BitGene) IsValid() bool { return true }
