package engine

import (
	"github.com/pkg/errors"

	"github.com/yaricom/evocore/config"
	"github.com/yaricom/evocore/eval"
	"github.com/yaricom/evocore/front"
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/internal/parallel"
	"github.com/yaricom/evocore/metrics"
	"github.com/yaricom/evocore/operator"
	"github.com/yaricom/evocore/pipeline"
	"github.com/yaricom/evocore/problem"
	"github.com/yaricom/evocore/species"
	"github.com/yaricom/evocore/xrand"
)

// Builder accumulates engine configuration through a fluent call chain and
// validates it once in Build, a validate-at-load pattern rather than a
// type-state builder: every setter just records a field, and Build is the
// single place errors surface.
type Builder[G gene.Gene[A], A, T any] struct {
	opts      config.Options
	problem   problem.Problem[G, A, T]
	pipe      *pipeline.Pipeline[G, A, T]
	rng       *xrand.Rng
	executor  parallel.Executor

	evaluator         eval.Evaluator[G, A, T]
	survivorSelector  operator.Selector[G, A]
	offspringSelector operator.Selector[G, A]
	alterer           *operator.Alterer[G, A]
	replacement       operator.Replacement[G, A, T]
	distance          species.Distance[G, A]
	auditors          []pipeline.Auditor[G, A]
}

// NewBuilder starts a builder with config.Default() as its base options.
func NewBuilder[G gene.Gene[A], A, T any]() *Builder[G, A, T] {
	return &Builder[G, A, T]{opts: config.Default()}
}

// Options replaces the builder's configuration wholesale.
func (b *Builder[G, A, T]) Options(o config.Options) *Builder[G, A, T] {
	b.opts = o
	return b
}

// Problem sets the fitness/encode/decode contract the engine evolves
// against. Required.
func (b *Builder[G, A, T]) Problem(p problem.Problem[G, A, T]) *Builder[G, A, T] {
	b.problem = p
	return b
}

// Pipeline overrides the default generation pipeline. Optional; defaults
// to pipeline.Default.
func (b *Builder[G, A, T]) Pipeline(p *pipeline.Pipeline[G, A, T]) *Builder[G, A, T] {
	b.pipe = p
	return b
}

// Rng overrides the process RNG. Optional; defaults to xrand.New(opts.Seed).
func (b *Builder[G, A, T]) Rng(r *xrand.Rng) *Builder[G, A, T] {
	b.rng = r
	return b
}

// Executor overrides the parallel dispatcher. Optional; defaults to
// parallel.Serial.
func (b *Builder[G, A, T]) Executor(e parallel.Executor) *Builder[G, A, T] {
	b.executor = e
	return b
}

// Evaluator sets the fitness evaluator. Required.
func (b *Builder[G, A, T]) Evaluator(e eval.Evaluator[G, A, T]) *Builder[G, A, T] {
	b.evaluator = e
	return b
}

// Survivors sets the survivor selector used by Recombine. Required.
func (b *Builder[G, A, T]) Survivors(s operator.Selector[G, A]) *Builder[G, A, T] {
	b.survivorSelector = s
	return b
}

// Offspring sets the offspring selector used by Recombine. Required.
func (b *Builder[G, A, T]) Offspring(s operator.Selector[G, A]) *Builder[G, A, T] {
	b.offspringSelector = s
	return b
}

// Alterer sets the crossover/mutator composite applied to offspring.
// Optional; a nil alterer means offspring pass through unaltered.
func (b *Builder[G, A, T]) Alterer(a *operator.Alterer[G, A]) *Builder[G, A, T] {
	b.alterer = a
	return b
}

// Replacement sets the strategy used by Filter to fill evicted slots.
// Required.
func (b *Builder[G, A, T]) Replacement(r operator.Replacement[G, A, T]) *Builder[G, A, T] {
	b.replacement = r
	return b
}

// Distance enables speciation with the given distance function. Optional;
// a nil distance means the engine never speciates.
func (b *Builder[G, A, T]) Distance(d species.Distance[G, A]) *Builder[G, A, T] {
	b.distance = d
	return b
}

// Auditors appends generation-end metric collectors run by the Audit
// step. Optional; Build installs a single MetricsAuditor when none are
// configured.
func (b *Builder[G, A, T]) Auditors(a ...pipeline.Auditor[G, A]) *Builder[G, A, T] {
	b.auditors = append(b.auditors, a...)
	return b
}

// Build validates the accumulated configuration, seeds an initial
// population via Problem.Encode, and returns a ready-to-run Engine.
// Rejects an invalid configuration here rather than at run time.
func (b *Builder[G, A, T]) Build() (*Engine[G, A, T], error) {
	if err := b.opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "engine builder: invalid configuration")
	}
	if b.problem == nil {
		return nil, errors.New("engine builder: Problem is required")
	}
	if b.evaluator == nil {
		return nil, errors.New("engine builder: Evaluator is required")
	}
	if b.survivorSelector == nil {
		return nil, errors.New("engine builder: Survivors selector is required")
	}
	if b.offspringSelector == nil {
		return nil, errors.New("engine builder: Offspring selector is required")
	}
	if b.replacement == nil {
		return nil, errors.New("engine builder: Replacement is required")
	}

	rng := b.rng
	if rng == nil {
		rng = xrand.New(b.opts.Seed)
	}
	executor := b.executor
	if executor == nil {
		executor = parallel.Serial{}
	}

	members := make([]*genome.Phenotype[G, A], b.opts.PopulationSize)
	for i := range members {
		members[i] = genome.NewPhenotype[G, A](b.problem.Encode(rng), 0)
	}
	pop := genome.NewPopulation(members...)

	var registry *species.Registry[G, A]
	if b.distance != nil {
		registry = species.NewRegistry(b.distance)
	}

	var fr *front.Front[G, A]
	if b.opts.Objective.Arity() > 1 {
		fr = front.New[G, A](b.opts.Objective, b.opts.FrontSize.Min, b.opts.FrontSize.Max)
	}

	auditors := b.auditors
	if len(auditors) == 0 {
		auditors = []pipeline.Auditor[G, A]{&pipeline.MetricsAuditor[G, A]{}}
	}

	ctx := &pipeline.Context[G, A, T]{
		Population:        pop,
		Metrics:           metrics.New(),
		Objective:         b.opts.Objective,
		Problem:           b.problem,
		Species:           registry,
		Distance:          b.distance,
		Front:             fr,
		Config:            b.opts,
		Executor:          executor,
		Rng:               rng,
		Evaluator:         b.evaluator,
		SurvivorSelector:  b.survivorSelector,
		OffspringSelector: b.offspringSelector,
		Alterer:           b.alterer,
		Replacement:       b.replacement,
		Auditors:          auditors,
	}

	p := b.pipe
	if p == nil {
		p = pipeline.Default[G, A, T]()
	}

	return New(ctx, p), nil
}
