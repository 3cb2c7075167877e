package constraints

import (
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// OverlapConstraint is the basic constraint (spec.md §4.3): for
// already-placed neighbors, energy is the overlap area times a weight;
// for placed non-neighbors, a flat penalty if their polygons overlap at
// all. When Input.OptimizeCorridorConstraints is set, the non-neighbor
// penalty skips any node flagged as a corridor. Corridor nodes belong to
// chains like any other node, so the evolver places them and they do
// appear in its layout.
type OverlapConstraint struct {
	Overlap geometry.PolygonOverlapTester
	// Weight scales neighbor overlap area into energy; non-neighbor
	// overlap is a flat NonNeighborPenalty regardless of area.
	Weight            float64
	NonNeighborPenalty float64
}

func NewOverlapConstraint(overlap geometry.PolygonOverlapTester) OverlapConstraint {
	return OverlapConstraint{Overlap: overlap, Weight: 1.0, NonNeighborPenalty: 1000.0}
}

func (c OverlapConstraint) Name() string { return "overlap" }

func (c OverlapConstraint) Compute(in Input, layout model.Layout, node int, candidate model.Configuration) float64 {
	candidatePolygon, ok := shapePolygon(in.Graph, node, candidate)
	if !ok {
		return 0
	}
	candidatePolygon = candidatePolygon.Translate(candidate.Offset)

	neighbors := make(map[int]bool)
	for _, nb := range in.Graph.Neighbors(node) {
		neighbors[nb] = true
	}

	total := 0.0
	for other, cfg := range layout.Configurations {
		if other == node {
			continue
		}
		otherPolygon, ok := shapePolygon(in.Graph, other, cfg)
		if !ok {
			continue
		}
		otherPolygon = otherPolygon.Translate(cfg.Offset)

		if neighbors[other] {
			total += float64(c.Overlap.OverlapArea(candidatePolygon, otherPolygon)) * c.Weight
			continue
		}

		if in.OptimizeCorridorConstraints && isCorridor(in.Graph, other) {
			continue
		}
		if c.Overlap.Overlaps(candidatePolygon, otherPolygon) {
			total += c.NonNeighborPenalty
		}
	}
	return total
}

func (c OverlapConstraint) Update(in Input, layout model.Layout, perturbedNode int, newConfig model.Configuration, neighbor int, old model.EnergyData) float64 {
	neighborCfg, ok := layout.Get(neighbor)
	if !ok {
		return 0
	}
	// neighbor's own configuration is unchanged; recompute its overlap
	// contribution against the freshly perturbed node's new placement.
	return c.Compute(in, layout.WithConfiguration(perturbedNode, newConfig), neighbor, neighborCfg)
}

func shapePolygon(g model.Graph, node int, cfg model.Configuration) (geometry.Polygon, bool) {
	if node < 0 || node >= len(g.Nodes) {
		return geometry.Polygon{}, false
	}
	shape, ok := g.Nodes[node].ShapeByID(cfg.ShapeID)
	if !ok {
		return geometry.Polygon{}, false
	}
	return shape.Polygon, true
}

func isCorridor(g model.Graph, node int) bool {
	if node < 0 || node >= len(g.Nodes) {
		return false
	}
	return g.Nodes[node].IsCorridor
}
