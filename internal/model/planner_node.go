package model

// PlannerNode is a layout prefix representing chains [0..k] placed; it
// holds the layout, the chain index k, and a count of how many
// perturbation restarts (expansions) have consumed its branching budget.
type PlannerNode struct {
	Layout      Layout
	ChainIndex  int
	Expansions  int
}

// CanExpand reports whether this planner node may still be expanded
// under the configured branching limit (spec.md §4.6).
func (p PlannerNode) CanExpand(maxBranching int) bool {
	return p.Expansions < maxBranching
}
