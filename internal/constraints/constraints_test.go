package constraints

import (
	"testing"

	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

func square(id string, alias int) model.ShapeVariant {
	return model.ShapeVariant{
		ID:      id,
		Alias:   alias,
		Polygon: geometry.RectPolygon(4, 4),
		Doors:   geometry.DoorsOnAllSides(4, 4),
	}
}

func TestOverlapConstraint_NoEnergyWhenNotOverlapping(t *testing.T) {
	shapeA := square("a", 0)
	g := model.Graph{
		Nodes: []model.NodeDescription{
			{Index: 0, Shapes: []model.ShapeVariant{shapeA}},
			{Index: 1, Shapes: []model.ShapeVariant{shapeA}},
		},
		Edges: []model.Edge{{A: 0, B: 1}},
	}

	layout := model.NewLayout()
	layout = layout.WithConfiguration(0, model.Configuration{Node: 0, ShapeID: "a", Alias: 0, Offset: geometry.Point{}})

	in := Input{Graph: g}
	c := NewOverlapConstraint(geometry.DefaultOverlapTester{})

	candidate := model.Configuration{Node: 1, ShapeID: "a", Alias: 0, Offset: geometry.Point{X: 4, Y: 0}}
	energy := c.Compute(in, layout, 1, candidate)
	if energy != 0 {
		t.Fatalf("expected zero overlap energy for touching-but-not-overlapping squares, got %v", energy)
	}
}

func TestOverlapConstraint_PositiveEnergyWhenOverlapping(t *testing.T) {
	shapeA := square("a", 0)
	g := model.Graph{
		Nodes: []model.NodeDescription{
			{Index: 0, Shapes: []model.ShapeVariant{shapeA}},
			{Index: 1, Shapes: []model.ShapeVariant{shapeA}},
		},
		Edges: []model.Edge{{A: 0, B: 1}},
	}

	layout := model.NewLayout()
	layout = layout.WithConfiguration(0, model.Configuration{Node: 0, ShapeID: "a", Alias: 0, Offset: geometry.Point{}})

	in := Input{Graph: g}
	c := NewOverlapConstraint(geometry.DefaultOverlapTester{})

	candidate := model.Configuration{Node: 1, ShapeID: "a", Alias: 0, Offset: geometry.Point{X: 2, Y: 0}}
	energy := c.Compute(in, layout, 1, candidate)
	if energy <= 0 {
		t.Fatalf("expected positive overlap energy, got %v", energy)
	}
}

func TestMinDistanceConstraint_PenalizesNonAdjacentTooClose(t *testing.T) {
	shapeA := square("a", 0)
	g := model.Graph{
		Nodes: []model.NodeDescription{
			{Index: 0, Shapes: []model.ShapeVariant{shapeA}},
			{Index: 1, Shapes: []model.ShapeVariant{shapeA}},
			{Index: 2, Shapes: []model.ShapeVariant{shapeA}},
		},
		Edges: []model.Edge{{A: 0, B: 1}, {A: 1, B: 2}},
	}

	layout := model.NewLayout()
	layout = layout.WithConfiguration(0, model.Configuration{Node: 0, ShapeID: "a", Alias: 0, Offset: geometry.Point{X: 0, Y: 0}})

	in := Input{Graph: g}
	c := NewMinDistanceConstraint(10)

	// node 2 is non-adjacent to node 0; placed right next to it, well
	// under the threshold of 10.
	candidate := model.Configuration{Node: 2, ShapeID: "a", Alias: 0, Offset: geometry.Point{X: 4, Y: 0}}
	energy := c.Compute(in, layout, 2, candidate)
	if energy <= 0 {
		t.Fatalf("expected positive min-distance penalty, got %v", energy)
	}
}

func TestMinDistanceConstraint_NoPenaltyForAdjacentPair(t *testing.T) {
	shapeA := square("a", 0)
	g := model.Graph{
		Nodes: []model.NodeDescription{
			{Index: 0, Shapes: []model.ShapeVariant{shapeA}},
			{Index: 1, Shapes: []model.ShapeVariant{shapeA}},
		},
		Edges: []model.Edge{{A: 0, B: 1}},
	}
	layout := model.NewLayout()
	layout = layout.WithConfiguration(0, model.Configuration{Node: 0, ShapeID: "a", Alias: 0, Offset: geometry.Point{}})

	in := Input{Graph: g}
	c := NewMinDistanceConstraint(10)
	candidate := model.Configuration{Node: 1, ShapeID: "a", Alias: 0, Offset: geometry.Point{X: 4, Y: 0}}
	energy := c.Compute(in, layout, 1, candidate)
	if energy != 0 {
		t.Fatalf("adjacent pairs are exempt from the min-distance constraint, got %v", energy)
	}
}
