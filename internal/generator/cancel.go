package generator

import (
	"sync/atomic"
	"time"
)

// runState is the Canceller both internal/anneal and internal/planner
// poll (their Canceller interfaces share the single Cancelled() bool
// method, so one implementation satisfies both). It folds together an
// optional external cancellation token with the EarlyStopIf* bounds
// from GeneratorConfiguration, incrementing its own iteration count
// each time it is polled — the same count GenerateLayout reports back
// to the caller in Result.Iterations.
type runState struct {
	external      *atomic.Bool
	maxIterations int
	maxDuration   time.Duration
	start         time.Time
	iterations    int
	timedOut      bool
}

// Cancelled is polled at every trial boundary in the evolver and at
// every planner step; each call counts as one iteration toward
// EarlyStopIfIterationsExceeded.
func (s *runState) Cancelled() bool {
	s.iterations++
	if s.external != nil && s.external.Load() {
		return true
	}
	if s.maxIterations > 0 && s.iterations >= s.maxIterations {
		return true
	}
	if s.maxDuration > 0 && s.iterations%100 == 0 {
		if time.Since(s.start) >= s.maxDuration {
			s.timedOut = true
			return true
		}
	}
	return false
}

// cancelledByCaller reports whether the run stopped because of
// cancellation (external token, iteration bound, or time bound) rather
// than genuine planner exhaustion, used to choose GenerationFailure's
// Code.
func (s *runState) cancelledByCaller() bool {
	if s.external != nil && s.external.Load() {
		return true
	}
	if s.timedOut {
		return true
	}
	return s.maxIterations > 0 && s.iterations >= s.maxIterations
}
