// Package constraints implements the constraint and energy model
// (spec.md §4.3): a uniform Constraint capability set over a shared
// per-constraint energy-data slot inside each node's energy block
// (spec.md §9's "polymorphic constraints" design note), rather than a
// tagged variant per constraint kind.
package constraints

import (
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// Input bundles everything a Constraint needs to compute or update a
// node's energy contribution. Graph and ConfigSpaces are read-only and
// shared across every call in a generation run.
type Input struct {
	Graph                       model.Graph
	ConfigSpaces                *model.ConfigSpaceTable
	MinimumRoomDistance         int
	OptimizeCorridorConstraints bool
}

// Constraint is the Compute/Update capability pair spec.md §4.3
// requires: Compute is pure and derives a node's energy contribution
// from scratch; Update recomputes a neighbor's contribution after a
// different node's perturbation.
type Constraint interface {
	Name() string

	// Compute returns node's energy contribution under candidate,
	// given every other already-placed node in layout.
	Compute(in Input, layout model.Layout, node int, candidate model.Configuration) float64

	// Update recomputes neighbor's energy contribution after node was
	// perturbed to newConfig, given neighbor's unchanged configuration
	// and its previous energy data. Every constraint in this package
	// does so by running Compute for neighbor against the layout with
	// perturbedNode at newConfig; none reads the previous energy data.
	Update(in Input, layout model.Layout, perturbedNode int, newConfig model.Configuration, neighbor int, oldEnergy model.EnergyData) float64
}

// ComputeEnergy runs every constraint's Compute against candidate and
// assembles the full EnergyData block (spec.md §4.3: "total node
// energy = sum of per-constraint contributions").
func ComputeEnergy(active []Constraint, in Input, layout model.Layout, node int, candidate model.Configuration) model.EnergyData {
	data := model.NewEnergyData()
	for _, c := range active {
		data.PerConstraint[c.Name()] = c.Compute(in, layout, node, candidate)
	}
	data.Recompute()
	return data
}

// UpdateEnergy runs every constraint's Update for neighbor after
// perturbedNode moved to newConfig, and returns neighbor's refreshed
// EnergyData built from neighbor's previous one.
func UpdateEnergy(active []Constraint, in Input, layout model.Layout, perturbedNode int, newConfig model.Configuration, neighbor int, old model.EnergyData) model.EnergyData {
	data := old.Clone()
	for _, c := range active {
		data.PerConstraint[c.Name()] = c.Update(in, layout, perturbedNode, newConfig, neighbor, old)
	}
	data.Recompute()
	return data
}
