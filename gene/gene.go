// Package gene defines the atomic unit of heredity and its optional
// capability interfaces. The engine operates over heterogeneous gene
// encodings through this small set of composable interfaces rather than
// through a deep inheritance hierarchy.
package gene

import "github.com/yaricom/evocore/xrand"

// Gene is the atomic unit of heredity. A is the allele type it carries.
type Gene[A any] interface {
	// Allele returns the value carried by this gene.
	Allele() A
	// WithAllele returns a new instance of this gene carrying the given
	// allele, all other domain parameters (bounds, generators) unchanged.
	WithAllele(a A) Gene[A]
	// NewInstance returns a new instance of this gene with a freshly
	// sampled allele from the same domain.
	NewInstance(rng *xrand.Rng) Gene[A]
	// NewInstanceFrom returns a new instance of this gene reusing the
	// given allele verbatim.
	NewInstanceFrom(a A) Gene[A]
	// IsValid reports whether the allele satisfies this gene's domain
	// constraints (e.g. falls within its bounds).
	IsValid() bool
}

// Bounded is implemented by genes whose allele domain has minimum and
// maximum values, plus a wider pair used by variation operators that need
// room to explore beyond the strict validity bounds.
type Bounded[A any] interface {
	Min() A
	Max() A
	WiderMin() A
	WiderMax() A
}

// Arithmetic is implemented by genes whose allele supports saturating
// arithmetic. Implementations must never overflow, wrap, or panic; integer
// and float families divide-by-zero by returning the dividend unchanged.
type Arithmetic[A any] interface {
	Add(other A) A
	Sub(other A) A
	Mul(other A) A
	Div(other A) A
	Mean(other A) A
}
