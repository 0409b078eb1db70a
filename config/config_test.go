package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaricom/evocore/config"
	"github.com/yaricom/evocore/genome"
)

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestValidate_RejectsZeroPopulation(t *testing.T) {
	o := config.Default()
	o.PopulationSize = 0
	assert.ErrorIs(t, o.Validate(), config.ErrInvalidPopulationSize)
}

func TestValidate_RejectsOffspringFractionOutOfRange(t *testing.T) {
	o := config.Default()
	o.OffspringFraction = 1.5
	assert.ErrorIs(t, o.Validate(), config.ErrInvalidOffspringFrac)
}

func TestValidate_RejectsZeroArityObjective(t *testing.T) {
	o := config.Default()
	o.Objective = genome.Objective{}
	assert.ErrorIs(t, o.Validate(), config.ErrObjectiveArityMismatch)
}

func TestValidate_RequiresFrontSizeForMultiObjective(t *testing.T) {
	o := config.Default()
	o.Objective = genome.Multi(genome.Minimize, genome.Maximize)
	o.FrontSize = config.FrontSize{Min: 0, Max: 10}
	assert.ErrorIs(t, o.Validate(), config.ErrInvalidFrontSize)
}

func TestOffspringCount_FloorsProduct(t *testing.T) {
	o := config.Default()
	o.PopulationSize = 101
	o.OffspringFraction = 0.8
	assert.Equal(t, 80, o.OffspringCount())
	assert.Equal(t, 21, o.SurvivorCount())
}

func TestLoadYAML_ParsesObjectiveAndValidates(t *testing.T) {
	yamlDoc := `
population_size: 50
max_age: 10
offspring_fraction: 0.5
objective: ["max"]
species_threshold: 0.3
max_species_age: 12
front_size:
  min: 1
  max: 5
log_level: info
seed: 42
`
	opts, err := config.LoadYAML(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, 50, opts.PopulationSize)
	assert.Equal(t, int64(42), opts.Seed)
	require.Len(t, opts.Objective.Directions, 1)
	assert.Equal(t, genome.Maximize, opts.Objective.Directions[0])
}

func TestLoadYAML_RejectsUnknownDirection(t *testing.T) {
	yamlDoc := `
population_size: 50
objective: ["sideways"]
`
	_, err := config.LoadYAML(strings.NewReader(yamlDoc))
	assert.Error(t, err)
}

func TestLoadLegacy_ParsesKeyValuePairs(t *testing.T) {
	doc := "population_size 75\nmax_age 30\noffspring_fraction 0.6\nseed 9\n"
	opts, err := config.LoadLegacy(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 75, opts.PopulationSize)
	assert.Equal(t, 30, opts.MaxAge)
	assert.Equal(t, 0.6, opts.OffspringFraction)
	assert.Equal(t, int64(9), opts.Seed)
}

func TestLoadLegacy_IgnoresUnknownKeys(t *testing.T) {
	doc := "population_size 75\nnot_a_real_option 123\n"
	opts, err := config.LoadLegacy(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 75, opts.PopulationSize)
}
