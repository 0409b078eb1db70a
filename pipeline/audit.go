package pipeline

import (
	"fmt"

	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/metrics"
	"github.com/yaricom/evocore/xlog"
)

// Audit sorts the population, updates ctx.Best on strict improvement,
// increments ctx.Index exactly once, and runs every registered Auditor.
// The index is incremented exactly once per generation, here, at the end.
type Audit[G gene.Gene[A], A, T any] struct{}

func (Audit[G, A, T]) Name() string { return "audit" }

func (s *Audit[G, A, T]) Run(ctx *Context[G, A, T]) error {
	ctx.Population.Sort(ctx.Objective)

	top := ctx.Population.Best()
	if top != nil && top.Score() != nil {
		if ctx.Best == nil || ctx.Best.Score() == nil || ctx.Objective.Better(*top.Score(), *ctx.Best.Score()) {
			best := *top
			ctx.Best = &best
			ctx.Metrics.Record("improvements", metrics.TagDerived, 1)
		}
	}

	ctx.Index++

	for _, auditor := range ctx.Auditors {
		for _, sample := range auditor.Audit(ctx.Index, ctx.Population) {
			ctx.Metrics.Record(sample.Name, sample.Tag, sample.Value)
		}
	}

	xlog.Debug(fmt.Sprintf("PIPELINE: >>>>> generation %d complete", ctx.Index))
	return nil
}
