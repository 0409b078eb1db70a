// Command evolve-demo wires the sum-to-zero minimization scenario end to
// end (genotype, problem, engine, pipeline) as a runnable example: parse
// flags, load options, build a problem and a population, run a fixed
// number of generations, report the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yaricom/evocore/config"
	"github.com/yaricom/evocore/engine"
	"github.com/yaricom/evocore/eval"
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/internal/parallel"
	"github.com/yaricom/evocore/metrics"
	"github.com/yaricom/evocore/operator"
	"github.com/yaricom/evocore/pipeline"
	"github.com/yaricom/evocore/xlog"
	"github.com/yaricom/evocore/xrand"
)

const (
	chromosomeLength = 5
	geneMin          = -10.0
	geneMax          = 10.0
)

// sumToZero minimizes the sum of 5 float genes in [-10, 10].
type sumToZero struct{}

func (sumToZero) Encode(rng *xrand.Rng) genome.Genotype[gene.Float64Gene, float64] {
	seed := gene.NewFloat64Gene(0, geneMin, geneMax)
	ch, err := genome.NewChromosomeOf[gene.Float64Gene, float64](chromosomeLength, seed, rng)
	if err != nil {
		panic(err)
	}
	return genome.NewGenotype(ch)
}

func (sumToZero) Decode(g genome.Genotype[gene.Float64Gene, float64]) []float64 {
	ch := g.Chromosome(0)
	out := make([]float64, ch.Len())
	for i := range out {
		out[i] = ch.Gene(i).Allele()
	}
	return out
}

func (p sumToZero) Eval(g genome.Genotype[gene.Float64Gene, float64]) genome.Score {
	var sum float64
	for _, v := range p.Decode(g) {
		sum += v
	}
	return genome.Score{sum}
}

func main() {
	generations := flag.Int("generations", 500, "number of generations to run")
	seed := flag.Int64("seed", 1, "rng seed")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	if err := xlog.Init(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := config.Default()
	opts.MaxAge = 15
	opts.Objective = genome.Single(genome.Minimize)
	opts.Seed = *seed
	if err := opts.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	rng := xrand.New(opts.Seed)
	prob := sumToZero{}

	members := make([]*genome.Phenotype[gene.Float64Gene, float64], opts.PopulationSize)
	for i := range members {
		members[i] = genome.NewPhenotype[gene.Float64Gene, float64](prob.Encode(rng), 0)
	}
	pop := genome.NewPopulation(members...)

	ctx := &pipeline.Context[gene.Float64Gene, float64, []float64]{
		Population: pop,
		Metrics:    metrics.New(),
		Objective:  opts.Objective,
		Problem:    prob,
		Config:     opts,
		Executor:   parallel.NewFixedSizedWorkerPool(0),
		Rng:        rng,
		Evaluator:  eval.Sequential[gene.Float64Gene, float64, []float64]{},
		SurvivorSelector: operator.NewTournament[gene.Float64Gene, float64](3),
		OffspringSelector: operator.Roulette[gene.Float64Gene, float64]{},
		Alterer: operator.NewAlterer[gene.Float64Gene, float64](
			[]operator.Crossover[gene.Float64Gene, float64]{
				operator.NewMeanCrossover[gene.Float64Gene, float64](0.5),
			},
			[]operator.Mutator[gene.Float64Gene, float64]{
				operator.NewArithmeticMutator[gene.Float64Gene, float64](0.01, 1.0),
			},
		),
		Replacement: operator.EncodeReplacement[gene.Float64Gene, float64, []float64]{},
	}

	eng := engine.New(ctx, pipeline.Default[gene.Float64Gene, float64, []float64]())

	snap, err := eng.Run(func(s engine.Snapshot[gene.Float64Gene, float64, []float64]) bool {
		return s.Index >= *generations
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "run failed:", err)
		os.Exit(1)
	}

	if snap.HasBest {
		fmt.Printf("generation=%d best_score=%.4f best_value=%v\n", snap.Index, snap.BestScore[0], snap.BestValue)
	} else {
		fmt.Printf("generation=%d no solution evaluated\n", snap.Index)
	}
}
