package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeRuntimeStats_Empty(t *testing.T) {
	stats := ComputeRuntimeStats(nil)
	assert.Zero(t, stats.Min)
	assert.Zero(t, stats.Mean)
	assert.True(t, stats.IsZero())
}

func TestComputeRuntimeStats_SingleValue(t *testing.T) {
	stats := ComputeRuntimeStats([]time.Duration{2 * time.Second})

	assert.Equal(t, 2*time.Second, stats.Min)
	assert.Equal(t, 2*time.Second, stats.Max)
	assert.Equal(t, 2*time.Second, stats.Median)
	assert.Equal(t, 2*time.Second, stats.P90)
	assert.Zero(t, stats.Stddev)
	assert.False(t, stats.IsZero())
}

func TestComputeRuntimeStats_Unsorted(t *testing.T) {
	stats := ComputeRuntimeStats([]time.Duration{
		50 * time.Millisecond,
		10 * time.Millisecond,
		30 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
	})

	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 50*time.Millisecond, stats.Max)
	assert.Equal(t, 30*time.Millisecond, stats.Mean)
	assert.Equal(t, 30*time.Millisecond, stats.Median)
	assert.Equal(t, 150*time.Millisecond, stats.Total)
	assert.InDelta(t, float64(46*time.Millisecond), float64(stats.P90), float64(time.Microsecond))
	assert.Equal(t, 5, stats.SampleCount)
	assert.Greater(t, stats.Stddev, time.Duration(0))
}

func TestFromSeconds(t *testing.T) {
	assert.Equal(t, []time.Duration{1500 * time.Millisecond, 0}, FromSeconds([]float64{1.5, 0}))
}

func TestPercentile_EdgeCases(t *testing.T) {
	sorted := []time.Duration{10 * time.Millisecond}
	assert.Equal(t, 10*time.Millisecond, percentile(sorted, 0))
	assert.Equal(t, 10*time.Millisecond, percentile(sorted, 100))
	assert.Zero(t, percentile(nil, 50))
}
