// Package controller implements the layout controller's perturbation
// operations (spec.md §4.4): shape perturbation and position
// perturbation, each followed by recomputing the perturbed node's
// energy from scratch and updating every placed neighbor incrementally.
package controller

import (
	"fmt"

	"github.com/Ko-stant/dungeon-layout-core/internal/constraints"
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
	"github.com/Ko-stant/dungeon-layout-core/internal/rng"
)

// ShapeProbability is the fixed probability of choosing a shape
// perturbation over a position perturbation (spec.md §4.4: 0.4 / 0.6).
const ShapeProbability = 0.4

// Controller owns everything a perturbation needs to evaluate a
// candidate: the graph, the precomputed configuration spaces, the
// active constraint set, and the repeat-mode policy.
type Controller struct {
	Graph         model.Graph
	ConfigSpaces  *model.ConfigSpaceTable
	Constraints   []constraints.Constraint
	RoomShapes    RoomShapesHandler
	ConstraintCfg constraints.Input
}

// New builds a Controller over the given collaborators.
func New(g model.Graph, spaces *model.ConfigSpaceTable, active []constraints.Constraint, shapes RoomShapesHandler, cfgInput constraints.Input) *Controller {
	return &Controller{Graph: g, ConfigSpaces: spaces, Constraints: active, RoomShapes: shapes, ConstraintCfg: cfgInput}
}

// Perturb chooses a perturbation kind by ShapeProbability and applies
// it to a random already-placed node of chainNodes, returning the
// resulting layout.
func (c *Controller) Perturb(r rng.PRNG, layout model.Layout, chainNodes []int) (model.Layout, error) {
	placed := placedNodesIn(layout, chainNodes)
	if len(placed) == 0 {
		return layout, fmt.Errorf("controller: no placed nodes in chain to perturb")
	}
	node := placed[r.Intn(len(placed))]

	if r.Float64() < ShapeProbability {
		return c.PerturbShape(r, layout, node)
	}
	return c.PerturbPosition(r, layout, node)
}

func placedNodesIn(layout model.Layout, chainNodes []int) []int {
	out := make([]int, 0, len(chainNodes))
	for _, n := range chainNodes {
		if layout.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// PerturbShape picks a random allowed shape other than node's current
// one, subject to repeat-mode, and assigns it at the same offset if
// valid against every already-placed neighbor, else at a random valid
// offset (spec.md §4.4).
func (c *Controller) PerturbShape(r rng.PRNG, layout model.Layout, node int) (model.Layout, error) {
	current, ok := layout.Get(node)
	if !ok {
		return layout, fmt.Errorf("controller: node %d not placed", node)
	}

	candidates, err := c.RoomShapes.Candidates(c.Graph, layout, node)
	if err != nil {
		return layout, err
	}
	if len(candidates) == 0 {
		return layout, nil
	}
	chosen := candidates[r.Intn(len(candidates))]

	offsets := c.validOffsetsFor(layout, node, chosen.Alias)

	offset := current.Offset
	if len(offsets.Offsets) == 0 {
		// No offset connects to the placed neighbors; with no placed
		// neighbor at all, the current offset is kept.
		for _, nb := range c.Graph.Neighbors(node) {
			if layout.Has(nb) {
				return layout, nil
			}
		}
	} else if !offsets.Contains(offset) {
		offset = randomPoint(r, offsets)
	}

	candidate := model.Configuration{
		Node:     node,
		ShapeID:  chosen.ID,
		Alias:    chosen.Alias,
		Offset:   offset,
		DoorPair: current.DoorPair,
	}
	return c.applyPerturbation(layout, node, candidate)
}

// PerturbPosition samples a new offset for node from the intersection
// of its configuration spaces with every already-placed neighbor, or
// from their union if the intersection is empty (a strictly positive
// energy the evolver must then improve).
func (c *Controller) PerturbPosition(r rng.PRNG, layout model.Layout, node int) (model.Layout, error) {
	current, ok := layout.Get(node)
	if !ok {
		return layout, fmt.Errorf("controller: node %d not placed", node)
	}

	intersection, union := c.neighborOffsetSets(layout, node, current.Alias)

	target := intersection
	if len(target.Offsets) == 0 {
		target = union
	}
	if len(target.Offsets) == 0 {
		return layout, nil
	}

	candidate := current
	candidate.Offset = randomPoint(r, target)
	return c.applyPerturbation(layout, node, candidate)
}

// validOffsetsFor returns the absolute offsets node may take with
// alias chosenAlias, honoring every already-placed neighbor's
// configuration space constraint (the intersection, per spec.md
// §4.4's "same offset if valid with its neighbors").
func (c *Controller) validOffsetsFor(layout model.Layout, node int, chosenAlias int) model.ConfigSpace {
	intersection, union := c.neighborOffsetSetsForAlias(layout, node, chosenAlias)
	if len(intersection.Offsets) > 0 {
		return intersection
	}
	return union
}

func (c *Controller) neighborOffsetSets(layout model.Layout, node int, alias int) (intersection, union model.ConfigSpace) {
	return c.neighborOffsetSetsForAlias(layout, node, alias)
}

// neighborOffsetSetsForAlias computes, over every already-placed
// neighbor of node, the absolute offsets at which a shape with the
// given alias connects to that neighbor without overlap — both the
// intersection across all neighbors and the union, in the same
// absolute coordinate frame as every other placed node's Offset.
func (c *Controller) neighborOffsetSetsForAlias(layout model.Layout, node int, alias int) (intersection, union model.ConfigSpace) {
	first := true
	union = model.NewConfigSpace()

	for _, nb := range c.Graph.Neighbors(node) {
		nbCfg, ok := layout.Get(nb)
		if !ok {
			continue
		}
		cs, ok := c.ConfigSpaces.Get(nbCfg.Alias, alias, model.EdgeRoomRoom)
		if !ok {
			continue
		}
		absolute := model.NewConfigSpace()
		for delta := range cs.Offsets {
			absolute.Add(nbCfg.Offset.Add(delta))
			union.Add(nbCfg.Offset.Add(delta))
		}

		if first {
			intersection = absolute
			first = false
		} else {
			intersection = intersection.Intersect(absolute)
		}
	}

	if first {
		// node has no already-placed neighbors: any offset is
		// vacuously valid. PerturbShape and PerturbPosition keep the
		// current offset, InitialOffsetFor uses the origin, and
		// CandidateOffsetsSorted returns no offsets.
		return model.NewConfigSpace(), model.NewConfigSpace()
	}
	return intersection, union
}

// CandidateShapes exposes the repeat-mode-filtered shape set for node,
// used by the evolver to pick an initial shape before a chain node has
// any configuration yet.
func (c *Controller) CandidateShapes(layout model.Layout, node int) ([]model.ShapeVariant, error) {
	return c.RoomShapes.Candidates(c.Graph, layout, node)
}

// InitialOffsetFor picks a valid absolute offset for a node not yet
// placed, given its chosen shape's alias: the union of offsets valid
// against every already-placed neighbor, or the origin if node has no
// already-placed neighbor (the first node of the first chain).
func (c *Controller) InitialOffsetFor(r rng.PRNG, layout model.Layout, node int, alias int) geometry.Point {
	intersection, union := c.neighborOffsetSetsForAlias(layout, node, alias)
	target := intersection
	if len(target.Offsets) == 0 {
		target = union
	}
	if len(target.Offsets) == 0 {
		return geometry.Point{}
	}
	return randomPoint(r, target)
}

// Place installs cfg for node (which may not have had any prior
// configuration) and propagates the energy update to every placed
// neighbor, the same bookkeeping a perturbation performs.
func (c *Controller) Place(layout model.Layout, node int, cfg model.Configuration) model.Layout {
	next, _ := c.applyPerturbation(layout, node, cfg)
	return next
}

// ChainEnergy sums the cached energy of every node in nodes that is
// currently placed in layout.
func (c *Controller) ChainEnergy(layout model.Layout, nodes []int) float64 {
	total := 0.0
	for _, n := range nodes {
		if cfg, ok := layout.Get(n); ok {
			total += cfg.Energy.Total
		}
	}
	return total
}

// ChainValid reports whether every node in nodes is placed with zero
// energy.
func (c *Controller) ChainValid(layout model.Layout, nodes []int) bool {
	for _, n := range nodes {
		cfg, ok := layout.Get(n)
		if !ok || cfg.Energy.Total != 0 {
			return false
		}
	}
	return true
}

// CandidateOffsetsSorted returns the offsets valid for node with the
// given alias (the intersection across already-placed neighbors, or
// their union if empty), sorted by (X, Y) for deterministic greedy
// placement (spec.md §4.2's "handle trees greedily" option: "try each
// offset in configuration space" in a fixed order).
func (c *Controller) CandidateOffsetsSorted(layout model.Layout, node int, alias int) []geometry.Point {
	intersection, union := c.neighborOffsetSetsForAlias(layout, node, alias)
	target := intersection
	if len(target.Offsets) == 0 {
		target = union
	}
	return target.Slice()
}

func randomPoint(r rng.PRNG, cs model.ConfigSpace) geometry.Point {
	slice := cs.Slice()
	return slice[r.Intn(len(slice))]
}

// applyPerturbation computes candidate's fresh energy, installs it,
// and incrementally updates every placed neighbor (spec.md §4.4:
// "recompute the perturbed node's energy from scratch and call Update
// on every placed neighbor").
func (c *Controller) applyPerturbation(layout model.Layout, node int, candidate model.Configuration) (model.Layout, error) {
	candidate.Energy = constraints.ComputeEnergy(c.Constraints, c.ConstraintCfg, layout, node, candidate)
	next := layout.WithConfiguration(node, candidate)

	for _, nb := range c.Graph.Neighbors(node) {
		nbCfg, ok := next.Get(nb)
		if !ok || nb == node {
			continue
		}
		nbCfg.Energy = constraints.UpdateEnergy(c.Constraints, c.ConstraintCfg, next, node, candidate, nb, nbCfg.Energy)
		next = next.WithConfiguration(nb, nbCfg)
	}
	return next, nil
}
