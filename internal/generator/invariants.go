package generator

import (
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// checkInvariants sanity-checks a layout the planner reported as valid,
// surfacing an InvariantViolation (spec.md §7) should it find a
// negative energy contribution — every constraint's Compute/Update is
// defined to return a non-negative value, so a negative one means a
// constraint implementation is broken, not that the level is
// ungenerable.
func checkInvariants(layout model.Layout) error {
	for node, cfg := range layout.Configurations {
		if cfg.Energy.Total < 0 {
			return &InvariantViolation{
				Message:      "node has negative total energy",
				Node:         node,
				EnergyVector: layout.EnergyVector(),
			}
		}
		for name, v := range cfg.Energy.PerConstraint {
			if v < 0 {
				return &InvariantViolation{
					Message:      "constraint " + name + " returned negative energy",
					Node:         node,
					EnergyVector: layout.EnergyVector(),
				}
			}
		}
	}
	return nil
}
