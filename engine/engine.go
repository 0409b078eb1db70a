// Package engine owns the compiled pipeline, the shared Context, and the
// run loop: a caller-supplied limit predicate drives a pluggable
// Step-based pipeline generation after generation.
package engine

import (
	"time"

	"github.com/yaricom/evocore/config"
	"github.com/yaricom/evocore/front"
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/metrics"
	"github.com/yaricom/evocore/pipeline"
	"github.com/yaricom/evocore/species"
)

// Snapshot is the engine's output after a generation: the current index,
// the best decoded value and score seen so far, the full metric set, and
// the live population/front/species.
type Snapshot[G gene.Gene[A], A, T any] struct {
	Index       int
	BestValue   T
	BestScore   genome.Score
	HasBest     bool
	Metrics     *metrics.MetricSet
	Population  *genome.Population[G, A]
	Front       *front.Front[G, A]
	Species     []*species.Species[G, A]
	ElapsedWall time.Duration
}

// Engine owns a Context and a compiled Pipeline and drives the run loop.
type Engine[G gene.Gene[A], A, T any] struct {
	ctx      *pipeline.Context[G, A, T]
	pipeline *pipeline.Pipeline[G, A, T]
	started  time.Time
}

// New constructs an engine from a fully wired context and pipeline. Build
// callers are expected to have validated ctx.Config via
// config.Options.Validate before reaching here: configuration errors are
// rejected at build time, not run time.
func New[G gene.Gene[A], A, T any](ctx *pipeline.Context[G, A, T], p *pipeline.Pipeline[G, A, T]) *Engine[G, A, T] {
	return &Engine[G, A, T]{ctx: ctx, pipeline: p, started: time.Now()}
}

// Context exposes the engine's mutable context for callers that need to
// inspect it directly (test harnesses, custom limit predicates that read
// fields not yet surfaced on Snapshot).
func (e *Engine[G, A, T]) Context() *pipeline.Context[G, A, T] { return e.ctx }

// Step runs the pipeline once and returns the resulting snapshot.
func (e *Engine[G, A, T]) Step() (Snapshot[G, A, T], error) {
	if err := e.pipeline.Step(e.ctx); err != nil {
		return Snapshot[G, A, T]{}, err
	}
	return e.snapshot(), nil
}

// LimitPredicate decides whether the run loop should stop, inspecting the
// snapshot produced by the generation just completed.
type LimitPredicate[G gene.Gene[A], A, T any] func(Snapshot[G, A, T]) bool

// Run repeatedly steps the pipeline until limit returns true, then
// returns the final snapshot. A panicking evaluator task propagates
// uncaught; the engine never retries a failed generation.
func (e *Engine[G, A, T]) Run(limit LimitPredicate[G, A, T]) (Snapshot[G, A, T], error) {
	for {
		snap, err := e.Step()
		if err != nil {
			return snap, err
		}
		if limit(snap) {
			return snap, nil
		}
	}
}

// Iter returns a Go 1.23 range-over-func iterator yielding a snapshot
// after each generation, letting a caller drive the loop with a plain
// for-range and break out at will.
func (e *Engine[G, A, T]) Iter() func(yield func(Snapshot[G, A, T]) bool) {
	return func(yield func(Snapshot[G, A, T]) bool) {
		for {
			snap, err := e.Step()
			if err != nil {
				return
			}
			if !yield(snap) {
				return
			}
		}
	}
}

func (e *Engine[G, A, T]) snapshot() Snapshot[G, A, T] {
	snap := Snapshot[G, A, T]{
		Index:       e.ctx.Index,
		Metrics:     e.ctx.Metrics,
		Population:  e.ctx.Population,
		Front:       e.ctx.Front,
		ElapsedWall: time.Since(e.started),
	}
	if e.ctx.Species != nil {
		snap.Species = e.ctx.Species.All()
	}
	if e.ctx.Best != nil && e.ctx.Best.Score() != nil {
		snap.HasBest = true
		snap.BestScore = *e.ctx.Best.Score()
		snap.BestValue = e.ctx.Problem.Decode(e.ctx.Best.Genotype)
	}
	return snap
}

// Options re-exports config.Options for callers building an engine
// without importing the config package directly.
type Options = config.Options
