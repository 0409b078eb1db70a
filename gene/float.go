package gene

import "github.com/yaricom/evocore/xrand"

// Float64Gene is a reference bounded, arithmetic gene over float64
// alleles. It is not part of the engine's public contract (concrete gene
// encodings are an external collaborator concern) but ships for use by
// the engine's own tests and the demo command.
type Float64Gene struct {
	allele                 float64
	min, max               float64
	widerMin, widerMax     float64
}

// NewFloat64Gene constructs a Float64Gene with explicit bounds. widerMin
// and widerMax default to min and max when zero-valued equal bounds are
// not desired; callers wanting a wider exploration range should use
// NewFloat64GeneWider.
func NewFloat64Gene(allele, min, max float64) Float64Gene {
	return Float64Gene{allele: allele, min: min, max: max, widerMin: min, widerMax: max}
}

// NewFloat64GeneWider constructs a Float64Gene with bounds distinct from
// its wider exploration range, used by variation operators that need to
// momentarily step outside the strict validity bounds.
func NewFloat64GeneWider(allele, min, max, widerMin, widerMax float64) Float64Gene {
	return Float64Gene{allele: allele, min: min, max: max, widerMin: widerMin, widerMax: widerMax}
}

func (g Float64Gene) Allele() float64 { return g.allele }

func (g Float64Gene) WithAllele(a float64) Gene[float64] {
	g.allele = a
	return g
}

func (g Float64Gene) NewInstance(rng *xrand.Rng) Gene[float64] {
	g.allele = g.min + rng.Float64()*(g.max-g.min)
	return g
}

func (g Float64Gene) NewInstanceFrom(a float64) Gene[float64] {
	g.allele = a
	return g
}

func (g Float64Gene) IsValid() bool {
	return g.allele >= g.min && g.allele <= g.max
}

func (g Float64Gene) Min() float64      { return g.min }
func (g Float64Gene) Max() float64      { return g.max }
func (g Float64Gene) WiderMin() float64 { return g.widerMin }
func (g Float64Gene) WiderMax() float64 { return g.widerMax }

func clampFloat64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Add returns a+b saturated to this gene's bounds.
func (g Float64Gene) Add(other float64) float64 { return clampFloat64(g.allele+other, g.min, g.max) }

// Sub returns a-b saturated to this gene's bounds.
func (g Float64Gene) Sub(other float64) float64 { return clampFloat64(g.allele-other, g.min, g.max) }

// Mul returns a*b saturated to this gene's bounds.
func (g Float64Gene) Mul(other float64) float64 { return clampFloat64(g.allele*other, g.min, g.max) }

// Div returns a/b saturated to this gene's bounds; divide-by-zero returns
// the dividend unchanged rather than Inf or NaN.
func (g Float64Gene) Div(other float64) float64 {
	if other == 0 {
		return g.allele
	}
	return clampFloat64(g.allele/other, g.min, g.max)
}

// Mean returns the midpoint of this gene's allele and other, saturated to
// bounds.
func (g Float64Gene) Mean(other float64) float64 {
	return clampFloat64((g.allele+other)/2.0, g.min, g.max)
}
