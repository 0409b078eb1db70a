// Package eval implements the Evaluate pipeline step: scoring every
// unscored phenotype in a population against a Problem, sequentially or
// concurrently. The parallel path dispatches one task per unit of work
// over a buffered result channel and a sync.WaitGroup, reassembling
// results by index rather than completion order.
package eval

import (
	"time"

	"github.com/pkg/errors"

	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/internal/parallel"
	"github.com/yaricom/evocore/problem"
)

// Metric describes a single measurement emitted by an evaluation pass.
type Metric struct {
	Name  string
	Value float64
}

// Evaluator scores every phenotype in pop that does not already carry a
// score by invoking prob.Eval directly on its genotype. Already-scored
// phenotypes are left untouched, so repeated calls across generations
// only pay for newly produced offspring.
type Evaluator[G gene.Gene[A], A, T any] interface {
	Evaluate(pop *genome.Population[G, A], prob problem.Problem[G, A, T]) ([]Metric, error)
	Name() string
}

// Sequential evaluates every unscored phenotype on the calling goroutine,
// in population order.
type Sequential[G gene.Gene[A], A, T any] struct{}

func (Sequential[G, A, T]) Name() string { return "sequential-evaluator" }

func (Sequential[G, A, T]) Evaluate(pop *genome.Population[G, A], prob problem.Problem[G, A, T]) ([]Metric, error) {
	start := time.Now()
	evaluated := 0
	members := pop.Members()
	for _, ph := range members {
		if ph.Score() != nil {
			continue
		}
		score := prob.Eval(ph.Genotype)
		ph.SetScore(score)
		evaluated++
	}
	pop.Invalidate()
	return []Metric{
		{Name: "eval.count", Value: float64(evaluated)},
		{Name: "eval.duration_ms", Value: float64(time.Since(start).Milliseconds())},
	}, nil
}

// Parallel evaluates unscored phenotypes concurrently via the given
// parallel.Executor (a FixedSizedWorkerPool or ElasticPool; Serial
// degenerates to the same behavior as Sequential but pays extra
// bookkeeping, so prefer Sequential when no concurrency is wanted).
// Results are written back by population index so evaluation order never
// depends on goroutine completion order.
type Parallel[G gene.Gene[A], A, T any] struct {
	Executor parallel.Executor
}

// NewParallel constructs a parallel evaluator using the given executor.
// A nil executor defaults to a FixedSizedWorkerPool sized to
// runtime.NumCPU(), per internal/parallel.NewFixedSizedWorkerPool's own
// default.
func NewParallel[G gene.Gene[A], A, T any](executor parallel.Executor) Parallel[G, A, T] {
	if executor == nil {
		executor = parallel.NewFixedSizedWorkerPool(0)
	}
	return Parallel[G, A, T]{Executor: executor}
}

func (Parallel[G, A, T]) Name() string { return "parallel-evaluator" }

func (p Parallel[G, A, T]) Evaluate(pop *genome.Population[G, A], prob problem.Problem[G, A, T]) ([]Metric, error) {
	start := time.Now()
	members := pop.Members()

	indices := make([]int, 0, len(members))
	for i, ph := range members {
		if ph.Score() == nil {
			indices = append(indices, i)
		}
	}

	scores := make([]genome.Score, len(indices))

	err := p.Executor.Run(len(indices), func(taskIdx int) error {
		ph := members[indices[taskIdx]]
		scores[taskIdx] = prob.Eval(ph.Genotype)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parallel evaluate")
	}

	for i, idx := range indices {
		members[idx].SetScore(scores[i])
	}
	pop.Invalidate()

	return []Metric{
		{Name: "eval.count", Value: float64(len(indices))},
		{Name: "eval.duration_ms", Value: float64(time.Since(start).Milliseconds())},
	}, nil
}
