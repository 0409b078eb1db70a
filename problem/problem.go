// Package problem defines the Problem and Codec external collaborator
// contracts: encoding fresh genotypes, decoding them to the caller's
// domain type, and evaluating decoded values to a score.
package problem

import (
	"github.com/yaricom/evocore/gene"
	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/xrand"
)

// Problem produces fresh random genotypes, decodes genotypes to the
// caller's domain type T, and evaluates decoded values to a Score. Decode
// must be pure and total over every valid genotype ever produced by
// Encode or by alteration of one. Eval must be thread-safe and must never
// panic; it returns a Score of the problem's configured arity even for
// degenerate inputs.
type Problem[G gene.Gene[A], A, T any] interface {
	Encode(rng *xrand.Rng) genome.Genotype[G, A]
	Decode(g genome.Genotype[G, A]) T
	Eval(g genome.Genotype[G, A]) genome.Score
}

// Codec pairs an encoder and a decoder with the same contract as Problem
// minus Eval, letting callers supply a bare fitness function instead of a
// full Problem implementation.
type Codec[G gene.Gene[A], A, T any] interface {
	Encode(rng *xrand.Rng) genome.Genotype[G, A]
	Decode(g genome.Genotype[G, A]) T
}

// FitnessFunc is a total, thread-safe function from a decoded domain value
// to a Score.
type FitnessFunc[T any] func(T) genome.Score

// fromCodec adapts a Codec and a FitnessFunc into a Problem.
type fromCodec[G gene.Gene[A], A, T any] struct {
	codec   Codec[G, A, T]
	fitness FitnessFunc[T]
}

// FromCodec builds a Problem out of a Codec plus a bare fitness function,
// matching the "Fitness function consumed when no custom problem is
// supplied" external interface.
func FromCodec[G gene.Gene[A], A, T any](codec Codec[G, A, T], fitness FitnessFunc[T]) Problem[G, A, T] {
	return fromCodec[G, A, T]{codec: codec, fitness: fitness}
}

func (f fromCodec[G, A, T]) Encode(rng *xrand.Rng) genome.Genotype[G, A] { return f.codec.Encode(rng) }
func (f fromCodec[G, A, T]) Decode(g genome.Genotype[G, A]) T            { return f.codec.Decode(g) }
func (f fromCodec[G, A, T]) Eval(g genome.Genotype[G, A]) genome.Score {
	return f.fitness(f.codec.Decode(g))
}
