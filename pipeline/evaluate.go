package pipeline

import (
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/metrics"
)

// Evaluate scores every currently unscored phenotype via ctx.Evaluator,
// records the evaluator's metrics, and then sorts the population by
// ctx.Objective.
type Evaluate[G gene.Gene[A], A, T any] struct{}

func (Evaluate[G, A, T]) Name() string { return "evaluate" }

func (s *Evaluate[G, A, T]) Run(ctx *Context[G, A, T]) error {
	ms, err := ctx.Evaluator.Evaluate(ctx.Population, ctx.Problem)
	if err != nil {
		return err
	}
	for _, m := range ms {
		ctx.Metrics.Record(m.Name, metrics.TagGeneration, m.Value)
	}
	ctx.Population.Sort(ctx.Objective)
	return nil
}
