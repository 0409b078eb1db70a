package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/yaricom/evocore/genome"
	"github.com/yaricom/evocore/xlog"
)

// yamlOptions mirrors Options but represents the objective as a
// human-writable list of "min"/"max" tokens, since genome.Objective isn't
// itself a natural YAML shape.
type yamlOptions struct {
	PopulationSize    int       `yaml:"population_size"`
	MaxAge            int       `yaml:"max_age"`
	OffspringFraction float64   `yaml:"offspring_fraction"`
	Objective         []string  `yaml:"objective"`
	SpeciesThreshold  float64   `yaml:"species_threshold"`
	MaxSpeciesAge     int       `yaml:"max_species_age"`
	FrontSize         FrontSize `yaml:"front_size"`
	LogLevel          string    `yaml:"log_level"`
	Seed              int64     `yaml:"seed"`
}

func directionsFromTokens(tokens []string) ([]genome.Direction, error) {
	dirs := make([]genome.Direction, 0, len(tokens))
	for _, t := range tokens {
		switch strings.ToLower(t) {
		case "min", "minimize":
			dirs = append(dirs, genome.Minimize)
		case "max", "maximize":
			dirs = append(dirs, genome.Maximize)
		default:
			return nil, errors.Errorf("unrecognized objective direction: %q", t)
		}
	}
	return dirs, nil
}

// LoadYAML decodes options encoded as YAML: decode, initialize the
// logger, validate.
func LoadYAML(r io.Reader) (*Options, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	y := yamlOptions{}
	if err := yaml.Unmarshal(content, &y); err != nil {
		return nil, errors.Wrap(err, "failed to decode options from YAML")
	}

	dirs, err := directionsFromTokens(y.Objective)
	if err != nil {
		return nil, errors.Wrap(err, "invalid objective")
	}

	opts := Options{
		PopulationSize:    y.PopulationSize,
		MaxAge:            y.MaxAge,
		OffspringFraction: y.OffspringFraction,
		Objective:         genome.Objective{Directions: dirs},
		SpeciesThreshold:  y.SpeciesThreshold,
		MaxSpeciesAge:     y.MaxSpeciesAge,
		FrontSize:         y.FrontSize,
		LogLevel:          y.LogLevel,
		Seed:              y.Seed,
	}

	if opts.LogLevel != "" {
		if err := xlog.Init(opts.LogLevel); err != nil {
			return nil, errors.Wrap(err, "failed to initialize logger")
		}
	}

	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return &opts, nil
}

// LoadLegacy decodes options from a line-oriented "key value" text format:
// scan "%s %v" pairs and coerce each value with spf13/cast according to
// the field's expected type.
func LoadLegacy(r io.Reader) (*Options, error) {
	opts := Default()
	var objectiveTokens []string

	var name, param string
	for {
		_, err := fmt.Fscanf(r, "%s %v\n", &name, &param)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "failed to parse legacy options")
		}
		switch name {
		case "population_size":
			opts.PopulationSize = cast.ToInt(param)
		case "max_age":
			opts.MaxAge = cast.ToInt(param)
		case "offspring_fraction":
			opts.OffspringFraction = cast.ToFloat64(param)
		case "objective":
			objectiveTokens = append(objectiveTokens, param)
		case "species_threshold":
			opts.SpeciesThreshold = cast.ToFloat64(param)
		case "max_species_age":
			opts.MaxSpeciesAge = cast.ToInt(param)
		case "front_size_min":
			opts.FrontSize.Min = cast.ToInt(param)
		case "front_size_max":
			opts.FrontSize.Max = cast.ToInt(param)
		case "log_level":
			opts.LogLevel = param
		case "seed":
			opts.Seed = cast.ToInt64(param)
		default:
			xlog.Warn(fmt.Sprintf("config: unrecognized legacy option %q ignored", name))
		}
	}

	if len(objectiveTokens) > 0 {
		dirs, err := directionsFromTokens(objectiveTokens)
		if err != nil {
			return nil, errors.Wrap(err, "invalid objective")
		}
		opts.Objective = genome.Objective{Directions: dirs}
	}

	if opts.LogLevel != "" {
		if err := xlog.Init(opts.LogLevel); err != nil {
			return nil, errors.Wrap(err, "failed to initialize logger")
		}
	}

	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return &opts, nil
}
