package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByKind(t *testing.T) {
	sessions := []FullReport{
		{Benchmarks: []BenchmarkResult{
			{Implementation: "LinkedQueue", Kind: "queue", Size: 10, NsPerOp: 5},
			{Implementation: "LinkedQueue", Kind: "queue", Size: 10, NsPerOp: 7},
			{Implementation: "RecursiveBST", Kind: "tree", Size: 10, NsPerOp: 40},
			{Implementation: "broken", Kind: "tree", Size: 10, NsPerOp: 0},
		}},
		{Benchmarks: []BenchmarkResult{
			{Implementation: "LinkedQueue", Kind: "queue", Size: 100, NsPerOp: 6},
		}},
	}

	grouped := groupByKind(sessions)
	require.Len(t, grouped, 2)
	assert.Equal(t, []float64{5, 7}, grouped["queue"]["LinkedQueue"][10])
	assert.Equal(t, []float64{6}, grouped["queue"]["LinkedQueue"][100])
	assert.NotContains(t, grouped["tree"], "broken")
}

func TestBuildStats(t *testing.T) {
	vals := make([]float64, 0, 100)
	for i := 100; i >= 1; i-- {
		vals = append(vals, float64(i))
	}
	stats := buildStats(map[float64][]float64{1000: vals})
	require.Len(t, stats, 1)
	s := stats[0]
	assert.Equal(t, 1000.0, s.size)
	assert.InDelta(t, 3.0, s.min, 0.5) // bottom 5 values
	assert.Equal(t, 50.5, s.median)
	assert.InDelta(t, 98.0, s.max, 0.5) // top 5 values
}

func TestAverageOfRangeFallsBackToMedian(t *testing.T) {
	assert.Equal(t, 2.0, averageOfRange([]float64{1, 2, 3}, 0, 0.05))
	assert.Equal(t, 0.0, averageOfRange(nil, 0, 1))
}

func TestFormatNs(t *testing.T) {
	assert.Equal(t, "2.50ns", formatNs(2.5))
	assert.Equal(t, "120ns", formatNs(120))
	assert.Equal(t, "1.5µs", formatNs(1500))
	assert.Equal(t, "2.0ms", formatNs(2e6))
	assert.Equal(t, "3.00s", formatNs(3e9))
}

func TestBuildPlot(t *testing.T) {
	p := buildPlot("queue", map[string]map[float64][]float64{
		"LinkedQueue":     {10: {5, 6}, 100: {7}},
		"gammazero/deque": {10: {3}, 100: {4}},
	})
	require.NotNil(t, p)
	assert.Contains(t, p.Title.Text, "queue")
}
