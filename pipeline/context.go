// Package pipeline implements the generation algorithm — Evaluate,
// Recombine, Filter, Evaluate, Front, Speciate, Audit — each as its own
// file, operating on a shared Context that is run once per generation
// through a pluggable, ordered step list.
package pipeline

import (
	"time"

	"github.com/yaricom/evocore/config"
	"github.com/yaricom/evocore/eval"
	"github.com/yaricom/evocore/front"
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/internal/parallel"
	"github.com/yaricom/evocore/metrics"
	"github.com/yaricom/evocore/operator"
	"github.com/yaricom/evocore/problem"
	"github.com/yaricom/evocore/species"
	"github.com/yaricom/evocore/xrand"
)

// Auditor emits arbitrary metrics after each generation's population has
// been re-sorted (unique scores, genome-size distribution, diversity
// ratio, and the like are all expressible as an Auditor without the
// engine knowing their domain).
type Auditor[G gene.Gene[A], A any] interface {
	Audit(generation int, pop *genome.Population[G, A]) []metrics.Sample
}

// Context is the shared, step-mutated state threaded through a
// generation: the (Population, Species) ecosystem, the best phenotype
// seen so far, the generation index, the live metric set, the front, the
// objective, and the problem. "score" is folded into Best's own Score().
type Context[G gene.Gene[A], A, T any] struct {
	Population *genome.Population[G, A]
	Best       *genome.Phenotype[G, A]
	Index      int
	Metrics    *metrics.MetricSet

	Objective genome.Objective
	Problem   problem.Problem[G, A, T]

	Species  *species.Registry[G, A]
	Distance species.Distance[G, A]

	Front *front.Front[G, A]

	Config   config.Options
	Executor parallel.Executor
	Rng      *xrand.Rng

	Evaluator         eval.Evaluator[G, A, T]
	SurvivorSelector  operator.Selector[G, A]
	OffspringSelector operator.Selector[G, A]
	Alterer           *operator.Alterer[G, A]
	Replacement       operator.Replacement[G, A, T]
	Auditors          []Auditor[G, A]
}

// Step is one unit of the generation algorithm.
type Step[G gene.Gene[A], A, T any] interface {
	Run(ctx *Context[G, A, T]) error
	Name() string
}

// Pipeline is an ordered, fixed sequence of steps executed once per
// generation.
type Pipeline[G gene.Gene[A], A, T any] struct {
	steps []Step[G, A, T]
}

// New constructs a pipeline from the given steps, run in the order given.
func New[G gene.Gene[A], A, T any](steps ...Step[G, A, T]) *Pipeline[G, A, T] {
	return &Pipeline[G, A, T]{steps: steps}
}

// Default constructs the standard generation pipeline: Evaluate,
// Recombine, Filter, then Evaluate again (so offspring born this
// generation and replacements installed by Filter carry a score before
// front admission and speciation see them), Front, Speciate, Audit.
func Default[G gene.Gene[A], A, T any]() *Pipeline[G, A, T] {
	return New[G, A, T](
		&Evaluate[G, A, T]{},
		&Recombine[G, A, T]{},
		&Filter[G, A, T]{},
		&Evaluate[G, A, T]{},
		&FrontUpdate[G, A, T]{},
		&Speciate[G, A, T]{},
		&Audit[G, A, T]{},
	)
}

// Step runs every step in order, recording a step.duration_ms sample for
// each. Steps never run concurrently with each other; only the work
// dispatched within a step may be parallel.
func (p *Pipeline[G, A, T]) Step(ctx *Context[G, A, T]) error {
	for _, s := range p.steps {
		start := time.Now()
		if err := s.Run(ctx); err != nil {
			return err
		}
		ctx.Metrics.Record(s.Name()+".duration_ms", metrics.TagStep, float64(time.Since(start).Milliseconds()))
	}
	return nil
}
