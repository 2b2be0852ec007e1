package testbench

import (
	"context"
	"fmt"
	"time"
)

// Config describes which workload sizes to run and for how long.
type Config struct {
	// Sizes is the number of container operations performed by one workload round.
	Sizes []int `yaml:"sizes"`
	// Iterations is how many timed runs are recorded per implementation and size.
	Iterations int `yaml:"iterations"`
	// Duration bounds a single timed run.
	Duration time.Duration `yaml:"duration"`
}

// Workload performs size operations against a fresh container and returns
// how many operations it executed. A non-nil error means the container broke
// its contract (lost an element, returned it out of order, ...).
type Workload func(size int) (ops int64, err error)

// Result is the outcome of one timed run.
type Result struct {
	Rounds  int64
	Ops     int64
	Elapsed time.Duration
}

// NsPerOp returns the average time per operation in nanoseconds.
func (r Result) NsPerOp() float64 {
	if r.Ops == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Ops)
}

// RunTimedTest runs workload rounds back to back on the calling goroutine
// until testDuration expires. At least one round is always completed so that
// tiny durations still produce a measurement.
// Containers are never shared between rounds or goroutines.
func RunTimedTest(
	workload Workload,
	size int,
	testDuration time.Duration,
) (Result, error) {

	// Create a context that will cancel after testDuration.
	ctx, cancel := context.WithTimeout(context.Background(), testDuration)
	defer cancel()

	var res Result
	start := time.Now()
	for {
		ops, err := workload(size)
		if err != nil {
			return res, fmt.Errorf("round %d: %w", res.Rounds, err)
		}
		res.Rounds++
		res.Ops += ops

		if ctx.Err() != nil {
			break
		}
	}
	res.Elapsed = time.Since(start)
	return res, nil
}
