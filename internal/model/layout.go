package model

// Layout is a partial assignment: a mapping from node index to
// configuration, for every node in the current chain's closure.
// Layout is cloned copy-on-write on every accepted perturbation: the
// map is copied, every unchanged entry is copied by value (sharing its
// EnergyData maps with the original), and the changed node's entry is
// set to the configuration passed in.
type Layout struct {
	Configurations map[int]Configuration
}

// NewLayout returns an empty layout.
func NewLayout() Layout {
	return Layout{Configurations: make(map[int]Configuration)}
}

// Get returns the configuration for node n, if present.
func (l Layout) Get(n int) (Configuration, bool) {
	c, ok := l.Configurations[n]
	return c, ok
}

// Has reports whether node n has been placed.
func (l Layout) Has(n int) bool {
	_, ok := l.Configurations[n]
	return ok
}

// WithConfiguration returns a new Layout sharing every other node's
// configuration with l, but with node n set to cfg — the copy-on-write
// clone the design notes require after every accepted perturbation.
func (l Layout) WithConfiguration(n int, cfg Configuration) Layout {
	out := make(map[int]Configuration, len(l.Configurations)+1)
	for k, v := range l.Configurations {
		out[k] = v
	}
	out[n] = cfg
	return Layout{Configurations: out}
}

// Clone performs a full shallow copy of the configuration map (same
// cost as WithConfiguration when more than one node is about to change,
// e.g. when the evolver resets to a cached best-so-far layout).
func (l Layout) Clone() Layout {
	out := make(map[int]Configuration, len(l.Configurations))
	for k, v := range l.Configurations {
		out[k] = v
	}
	return Layout{Configurations: out}
}

// TotalEnergy sums every placed node's cached energy.
func (l Layout) TotalEnergy() float64 {
	total := 0.0
	for _, c := range l.Configurations {
		total += c.Energy.Total
	}
	return total
}

// IsValid reports whether every placed node's energy is zero.
func (l Layout) IsValid() bool {
	for _, c := range l.Configurations {
		if c.Energy.Total != 0 {
			return false
		}
	}
	return true
}

// EnergyVector returns the per-node, per-constraint energy breakdown,
// used by InvariantViolation diagnostics (spec.md §7) to report "the
// offending chain, node, and layout energy vector."
func (l Layout) EnergyVector() map[int]map[string]float64 {
	out := make(map[int]map[string]float64, len(l.Configurations))
	for node, cfg := range l.Configurations {
		perConstraint := make(map[string]float64, len(cfg.Energy.PerConstraint))
		for k, v := range cfg.Energy.PerConstraint {
			perConstraint[k] = v
		}
		out[node] = perConstraint
	}
	return out
}

// PlacedNodes returns the indices of every placed node, in
// unspecified order; callers that need determinism should sort it.
func (l Layout) PlacedNodes() []int {
	out := make([]int, 0, len(l.Configurations))
	for n := range l.Configurations {
		out = append(out, n)
	}
	return out
}
