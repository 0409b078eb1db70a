package operator

import (
	"math"

	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/xrand"
)

// Tournament selects count phenotypes by repeatedly sampling k candidates
// uniformly at random and keeping the best, grounded on the NSGA-II
// reference's TournamentSelect.
type Tournament[G gene.Gene[A], A any] struct {
	K int
}

// NewTournament constructs a tournament selector with the given
// participant count, clamped to a minimum of 2.
func NewTournament[G gene.Gene[A], A any](k int) Tournament[G, A] {
	if k < 2 {
		k = 2
	}
	return Tournament[G, A]{K: k}
}

func (t Tournament[G, A]) Name() string { return "tournament" }

func (t Tournament[G, A]) Select(pop *genome.Population[G, A], obj genome.Objective, count int, rng *xrand.Rng) *genome.Population[G, A] {
	n := pop.Len()
	out := make([]*genome.Phenotype[G, A], 0, count)
	if n == 0 {
		return genome.NewPopulation[G, A](out...)
	}
	for i := 0; i < count; i++ {
		best := pop.At(rng.Intn(n))
		for k := 1; k < t.K; k++ {
			contender := pop.At(rng.Intn(n))
			if betterOrUnscored(obj, contender, best) {
				best = contender
			}
		}
		out = append(out, best)
	}
	return genome.NewPopulation[G, A](out...)
}

func betterOrUnscored[G gene.Gene[A], A any](obj genome.Objective, a, b *genome.Phenotype[G, A]) bool {
	sa, sb := a.Score(), b.Score()
	if sa == nil {
		return false
	}
	if sb == nil {
		return true
	}
	return obj.Better(*sa, *sb)
}

// Roulette selects count phenotypes proportional to score, with a
// direction-aware transform for minimization, via xrand.Rng.RouletteThrow.
type Roulette[G gene.Gene[A], A any] struct{}

func (Roulette[G, A]) Name() string { return "roulette" }

func (Roulette[G, A]) Select(pop *genome.Population[G, A], obj genome.Objective, count int, rng *xrand.Rng) *genome.Population[G, A] {
	n := pop.Len()
	out := make([]*genome.Phenotype[G, A], 0, count)
	if n == 0 {
		return genome.NewPopulation[G, A](out...)
	}
	weights := rouletteWeights(pop, obj)
	for i := 0; i < count; i++ {
		idx := rng.RouletteThrow(weights)
		if idx < 0 {
			idx = rng.Intn(n)
		}
		out = append(out, pop.At(idx))
	}
	return genome.NewPopulation[G, A](out...)
}

// rouletteWeights converts raw scores into non-negative roulette-wheel
// widths, inverting the scale for minimization so that smaller raw scores
// receive larger wheel segments.
func rouletteWeights[G gene.Gene[A], A any](pop *genome.Population[G, A], obj genome.Objective) []float64 {
	n := pop.Len()
	weights := make([]float64, n)
	minV, maxV := minMaxScore(pop)
	for i := 0; i < n; i++ {
		s := pop.At(i).Score()
		if s == nil || len(*s) == 0 {
			weights[i] = 0
			continue
		}
		v := (*s)[0]
		if len(obj.Directions) > 0 && obj.Directions[0] == genome.Minimize {
			weights[i] = (maxV - v) + 1e-9
		} else {
			weights[i] = (v - minV) + 1e-9
		}
	}
	return weights
}

func minMaxScore[G gene.Gene[A], A any](pop *genome.Population[G, A]) (min, max float64) {
	first := true
	for i := 0; i < pop.Len(); i++ {
		s := pop.At(i).Score()
		if s == nil || len(*s) == 0 {
			continue
		}
		v := (*s)[0]
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Rank selects proportional to each phenotype's sorted rank index (best
// rank receives the widest wheel segment), independent of raw score
// magnitude.
type Rank[G gene.Gene[A], A any] struct{}

func (Rank[G, A]) Name() string { return "rank" }

func (Rank[G, A]) Select(pop *genome.Population[G, A], obj genome.Objective, count int, rng *xrand.Rng) *genome.Population[G, A] {
	n := pop.Len()
	out := make([]*genome.Phenotype[G, A], 0, count)
	if n == 0 {
		return genome.NewPopulation[G, A](out...)
	}
	ranked := pop.Clone()
	ranked.Sort(obj)
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		weights[i] = float64(n - i)
	}
	for i := 0; i < count; i++ {
		idx := rng.RouletteThrow(weights)
		if idx < 0 {
			idx = rng.Intn(n)
		}
		out = append(out, ranked.At(idx))
	}
	return genome.NewPopulation[G, A](out...)
}

// Boltzmann selects via a softmax over scaled scores, with Temperature
// controlling selection pressure (lower temperature sharpens the
// distribution toward the best individuals).
type Boltzmann[G gene.Gene[A], A any] struct {
	Temperature float64
}

func (b Boltzmann[G, A]) Name() string { return "boltzmann" }

func (b Boltzmann[G, A]) Select(pop *genome.Population[G, A], obj genome.Objective, count int, rng *xrand.Rng) *genome.Population[G, A] {
	n := pop.Len()
	out := make([]*genome.Phenotype[G, A], 0, count)
	if n == 0 {
		return genome.NewPopulation[G, A](out...)
	}
	temp := b.Temperature
	if temp <= 0 {
		temp = 1
	}
	maximize := len(obj.Directions) == 0 || obj.Directions[0] == genome.Maximize
	weights := make([]float64, n)
	for i := 0; i < n; i++ {
		s := pop.At(i).Score()
		if s == nil || len(*s) == 0 {
			continue
		}
		v := (*s)[0]
		if !maximize {
			v = -v
		}
		weights[i] = expClamped(v / temp)
	}
	for i := 0; i < count; i++ {
		idx := rng.RouletteThrow(weights)
		if idx < 0 {
			idx = rng.Intn(n)
		}
		out = append(out, pop.At(idx))
	}
	return genome.NewPopulation[G, A](out...)
}

func expClamped(x float64) float64 {
	// avoid overflow for extreme scaled scores; the exact softmax
	// normalization constant cancels out in the roulette throw, so a
	// clamp here only protects against +/-Inf inputs.
	if x > 700 {
		x = 700
	}
	if x < -700 {
		x = -700
	}
	return math.Exp(x)
}

// Elite deterministically selects the top-k phenotypes by objective, with
// no randomness.
type Elite[G gene.Gene[A], A any] struct{}

func (Elite[G, A]) Name() string { return "elite" }

func (Elite[G, A]) Select(pop *genome.Population[G, A], obj genome.Objective, count int, rng *xrand.Rng) *genome.Population[G, A] {
	ranked := pop.Clone()
	ranked.Sort(obj)
	n := ranked.Len()
	out := make([]*genome.Phenotype[G, A], 0, count)
	for i := 0; i < count; i++ {
		if n == 0 {
			break
		}
		out = append(out, ranked.At(i%n))
	}
	return genome.NewPopulation[G, A](out...)
}

// Uniform selects count phenotypes uniformly at random with replacement.
type Uniform[G gene.Gene[A], A any] struct{}

func (Uniform[G, A]) Name() string { return "uniform" }

func (Uniform[G, A]) Select(pop *genome.Population[G, A], obj genome.Objective, count int, rng *xrand.Rng) *genome.Population[G, A] {
	n := pop.Len()
	out := make([]*genome.Phenotype[G, A], 0, count)
	if n == 0 {
		return genome.NewPopulation[G, A](out...)
	}
	for i := 0; i < count; i++ {
		out = append(out, pop.At(rng.Intn(n)))
	}
	return genome.NewPopulation[G, A](out...)
}
