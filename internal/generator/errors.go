package generator

import "fmt"

// ConfigurationError is detected at setup (spec.md §7): invalid graph,
// contradictory options, missing shape variants. Reported
// synchronously; no partial state is published.
type ConfigurationError struct {
	Code    string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// GenerationFailure is detected during a run (spec.md §7): planner
// backtracking exhausted, or cancellation with no valid layout.
// Carries the best-so-far partial layout when one was reached.
type GenerationFailure struct {
	Code    string
	Message string
	Partial any
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// InvariantViolation should never occur (spec.md §7): energy negative,
// configuration-space asymmetry, a constraint returning stale cached
// data. Fatal; carries diagnostic context.
type InvariantViolation struct {
	Message      string
	ChainIndex   int
	Node         int
	EnergyVector map[int]map[string]float64
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation in chain %d, node %d: %s", e.ChainIndex, e.Node, e.Message)
}
