package species

import (
	"math"

	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
)

// ArithmeticDistance measures genotype distance as the root-mean-square
// difference between corresponding gene alleles. Requires G to also
// implement gene.Arithmetic[A] so Sub is available to compute a per-gene
// delta; the delta is reduced to a scalar via AlleleNorm.
type ArithmeticDistance[G interface {
	gene.Gene[A]
	gene.Arithmetic[A]
}, A any] struct {
	threshold float64

	// AlleleNorm reduces an allele difference (computed via Sub of the
	// other genotype's corresponding allele) to a non-negative scalar. Defaults to
	// treating A as float64 when nil; callers with other allele types
	// must supply this.
	AlleleNorm func(delta A) float64
}

// NewArithmeticDistance constructs an arithmetic distance function with
// the given compatibility threshold and allele-norm reducer.
func NewArithmeticDistance[G interface {
	gene.Gene[A]
	gene.Arithmetic[A]
}, A any](threshold float64, alleleNorm func(A) float64) ArithmeticDistance[G, A] {
	return ArithmeticDistance[G, A]{threshold: threshold, AlleleNorm: alleleNorm}
}

func (d ArithmeticDistance[G, A]) Threshold() float64 { return d.threshold }

func (d ArithmeticDistance[G, A]) Distance(a, b genome.Genotype[G, A]) float64 {
	var sumSq float64
	var n int
	for ci := 0; ci < a.Len() && ci < b.Len(); ci++ {
		ca, cb := a.Chromosome(ci), b.Chromosome(ci)
		for gi := 0; gi < ca.Len() && gi < cb.Len(); gi++ {
			ga, gb := ca.Gene(gi), cb.Gene(gi)
			delta := ga.Sub(gb.Allele())
			var norm float64
			if d.AlleleNorm != nil {
				norm = d.AlleleNorm(delta)
			} else if f, ok := any(delta).(float64); ok {
				norm = math.Abs(f)
			}
			sumSq += norm * norm
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sumSq / float64(n))
}

// Float64AlleleNorm is the default AlleleNorm for Float64Gene-valued
// chromosomes: the absolute value of the delta.
func Float64AlleleNorm(delta float64) float64 {
	return math.Abs(delta)
}
