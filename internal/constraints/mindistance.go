package constraints

import (
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// MinDistanceConstraint implements spec.md §4.3's minimum distance
// constraint: for each placed non-adjacent room pair, energy is
// max(0, d - L∞ distance), summed over every such pair involving node.
type MinDistanceConstraint struct {
	Threshold int
}

func NewMinDistanceConstraint(threshold int) MinDistanceConstraint {
	return MinDistanceConstraint{Threshold: threshold}
}

func (c MinDistanceConstraint) Name() string { return "min-distance" }

func (c MinDistanceConstraint) Compute(in Input, layout model.Layout, node int, candidate model.Configuration) float64 {
	if c.Threshold <= 0 {
		return 0
	}
	candidatePolygon, ok := shapePolygon(in.Graph, node, candidate)
	if !ok {
		return 0
	}
	candidatePolygon = candidatePolygon.Translate(candidate.Offset)

	total := 0.0
	for other, cfg := range layout.Configurations {
		if other == node || in.Graph.AreAdjacent(node, other) {
			continue
		}
		otherPolygon, ok := shapePolygon(in.Graph, other, cfg)
		if !ok {
			continue
		}
		otherPolygon = otherPolygon.Translate(cfg.Offset)

		dist := geometry.LInfinityDistance(candidatePolygon, otherPolygon)
		if gap := c.Threshold - dist; gap > 0 {
			total += float64(gap)
		}
	}
	return total
}

func (c MinDistanceConstraint) Update(in Input, layout model.Layout, perturbedNode int, newConfig model.Configuration, neighbor int, old model.EnergyData) float64 {
	return c.Compute(in, layout.WithConfiguration(perturbedNode, newConfig), neighbor, mustGet(layout, neighbor))
}
