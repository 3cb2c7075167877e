package model

// Chain is an ordered list of node indices placed as a unit by the
// evolver, a sequence number, and a flag saying whether the chain came
// from a graph face (cycle) — relevant to greedy-tree handling and to
// the stage-2 skip in the simulated-annealing evolver.
type Chain struct {
	Nodes      []int
	Sequence   int
	IsFromFace bool
}

// Root returns the chain's first node, used as the stage-2 reseed
// anchor. Face chains have no simple root; callers must check
// IsFromFace before relying on Root for stage 2.
func (c Chain) Root() (int, bool) {
	if len(c.Nodes) == 0 {
		return 0, false
	}
	return c.Nodes[0], true
}

// Contains reports whether node n belongs to this chain.
func (c Chain) Contains(n int) bool {
	for _, x := range c.Nodes {
		if x == n {
			return true
		}
	}
	return false
}
