// Package config defines the engine's flat configuration surface, its
// validation rules, and two loaders (YAML and a legacy line-oriented
// format).
package config

import (
	"github.com/pkg/errors"
	"github.com/yaricom/evocore/genome"
)

// Sentinel configuration errors, surfaced at build time per the engine's
// error handling design: these never reach the run loop.
var (
	ErrInvalidPopulationSize  = errors.New("population_size must be >= 1")
	ErrInvalidMaxAge          = errors.New("max_age must be >= 1")
	ErrInvalidOffspringFrac   = errors.New("offspring_fraction must be in [0,1]")
	ErrInvalidRate            = errors.New("alterer rate must be in [0,1]")
	ErrInvalidSpeciesThreshold = errors.New("species_threshold must be >= 0")
	ErrInvalidFrontSize       = errors.New("front_size range must satisfy 0 < min <= max")
	ErrObjectiveArityMismatch = errors.New("objective arity must be >= 1")
)

// FrontSize is the inclusive [min, max] bound on the Pareto archive's
// member count for multi-objective runs.
type FrontSize struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Options is the engine's flat configuration surface.
type Options struct {
	PopulationSize     int               `yaml:"population_size"`
	MaxAge             int               `yaml:"max_age"`
	OffspringFraction  float64           `yaml:"offspring_fraction"`
	Objective          genome.Objective  `yaml:"-"`
	SpeciesThreshold   float64           `yaml:"species_threshold"`
	MaxSpeciesAge      int               `yaml:"max_species_age"`
	FrontSize          FrontSize         `yaml:"front_size"`
	LogLevel           string            `yaml:"log_level"`
	Seed               int64             `yaml:"seed"`
}

// Default returns reasonable starting defaults: population 100, max age
// 20, offspring fraction 0.8, single-maximize objective, species
// threshold 0.5, max species age 25, front size [800,1000].
func Default() Options {
	return Options{
		PopulationSize:    100,
		MaxAge:            20,
		OffspringFraction: 0.8,
		Objective:         genome.Single(genome.Maximize),
		SpeciesThreshold:  0.5,
		MaxSpeciesAge:     25,
		FrontSize:         FrontSize{Min: 800, Max: 1000},
		LogLevel:          "info",
		Seed:              1,
	}
}

// Validate rejects missing/invalid sizes, an offspring fraction outside
// [0,1], and objective arity mismatches. Alterer rates are not part of
// Options and are not checked here or elsewhere at build time. Called at
// build time; the run loop never observes a validation failure.
func (o Options) Validate() error {
	if o.PopulationSize < 1 {
		return ErrInvalidPopulationSize
	}
	if o.MaxAge < 1 {
		return ErrInvalidMaxAge
	}
	if o.OffspringFraction < 0 || o.OffspringFraction > 1 {
		return ErrInvalidOffspringFrac
	}
	if o.Objective.Arity() < 1 {
		return ErrObjectiveArityMismatch
	}
	if o.SpeciesThreshold < 0 {
		return ErrInvalidSpeciesThreshold
	}
	if o.Objective.Arity() > 1 {
		if o.FrontSize.Min <= 0 || o.FrontSize.Min > o.FrontSize.Max {
			return ErrInvalidFrontSize
		}
	}
	return nil
}

// OffspringCount returns floor(population_size * offspring_fraction).
func (o Options) OffspringCount() int {
	return int(float64(o.PopulationSize) * o.OffspringFraction)
}

// SurvivorCount returns population_size - OffspringCount().
func (o Options) SurvivorCount() int {
	return o.PopulationSize - o.OffspringCount()
}
