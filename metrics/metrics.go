// Package metrics implements the engine's MetricSet: a keyed collection of
// time-series statistics per metric name, scoped by tag. Each metric keeps
// a running distribution and/or time statistic across the run.
package metrics

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Tag scopes a metric to the part of the pipeline that produced it.
type Tag string

const (
	TagStep      Tag = "step"
	TagGeneration Tag = "generation"
	TagSelector  Tag = "selector"
	TagAlterer   Tag = "alterer"
	TagSpecies   Tag = "species"
	TagDerived   Tag = "derived"
	TagDistribution Tag = "distribution"
)

// Sample is a single observation recorded against a metric name.
type Sample struct {
	Name  string
	Tag   Tag
	Value float64
}

// Distribution accumulates descriptive statistics for one metric's
// samples across the run, backed by gonum/stat, as an incremental, keyed
// store.
type Distribution struct {
	tag     Tag
	values  []float64
	countOK bool
}

// Count returns how many samples have been recorded.
func (d *Distribution) Count() int { return len(d.values) }

// Mean returns the running mean of recorded samples.
func (d *Distribution) Mean() float64 {
	if len(d.values) == 0 {
		return 0
	}
	return stat.Mean(d.values, nil)
}

// Variance returns the sample variance of recorded samples.
func (d *Distribution) Variance() float64 {
	if len(d.values) < 2 {
		return 0
	}
	return stat.Variance(d.values, nil)
}

// Min returns the smallest recorded sample.
func (d *Distribution) Min() float64 {
	m := d.values[0]
	for _, v := range d.values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest recorded sample.
func (d *Distribution) Max() float64 {
	m := d.values[0]
	for _, v := range d.values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Quantile returns the q-quantile (q in [0,1]) of recorded samples using
// the empirical CDF (stat.Quantile).
func (d *Distribution) Quantile(q float64) float64 {
	sorted := append([]float64(nil), d.values...)
	sortFloat64s(sorted)
	return stat.Quantile(q, stat.Empirical, sorted, nil)
}

// Values returns a copy of the recorded samples in recording order.
func (d *Distribution) Values() []float64 {
	return append([]float64(nil), d.values...)
}

func sortFloat64s(s []float64) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Duration accumulates wall-clock time samples for a metric, such as a
// step's per-generation execution time.
type Duration struct {
	samples []time.Duration
}

// Record appends a duration sample.
func (d *Duration) Record(v time.Duration) { d.samples = append(d.samples, v) }

// Total returns the sum of all recorded durations.
func (d *Duration) Total() time.Duration {
	var total time.Duration
	for _, s := range d.samples {
		total += s
	}
	return total
}

// Last returns the most recently recorded duration, or 0 if none.
func (d *Duration) Last() time.Duration {
	if len(d.samples) == 0 {
		return 0
	}
	return d.samples[len(d.samples)-1]
}

// MetricSet is a keyed collection of metric distributions, guarded by a
// single mutex; contention is expected to be minimal since most emissions
// happen at pipeline step boundaries rather than inside hot loops.
type MetricSet struct {
	mu            sync.Mutex
	distributions map[string]*Distribution
	durations     map[string]*Duration
}

// New constructs an empty MetricSet.
func New() *MetricSet {
	return &MetricSet{
		distributions: make(map[string]*Distribution),
		durations:     make(map[string]*Duration),
	}
}

// Record upserts a scalar sample under the given name and tag.
func (m *MetricSet) Record(name string, tag Tag, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.distributions[name]
	if !ok {
		d = &Distribution{tag: tag}
		m.distributions[name] = d
	}
	d.values = append(d.values, value)
}

// RecordDuration upserts a duration sample under the given name.
func (m *MetricSet) RecordDuration(name string, value time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.durations[name]
	if !ok {
		d = &Duration{}
		m.durations[name] = d
	}
	d.Record(value)
}

// Distribution returns the named metric's distribution, or nil if no
// sample has been recorded under that name.
func (m *MetricSet) Distribution(name string) *Distribution {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.distributions[name]
}

// DurationMetric returns the named metric's duration accumulator, or nil.
func (m *MetricSet) DurationMetric(name string) *Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.durations[name]
}

// Names returns every distribution metric name currently recorded.
func (m *MetricSet) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.distributions))
	for n := range m.distributions {
		names = append(names, n)
	}
	return names
}
