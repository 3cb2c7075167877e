package controller

import (
	"testing"

	"github.com/Ko-stant/dungeon-layout-core/internal/configspace"
	"github.com/Ko-stant/dungeon-layout-core/internal/constraints"
	"github.com/Ko-stant/dungeon-layout-core/internal/doorhandler"
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
	"github.com/Ko-stant/dungeon-layout-core/internal/rng"
)

func twoRoomGraph() (model.Graph, *model.ConfigSpaceTable) {
	square := model.ShapeVariant{
		ID:      "square4",
		Alias:   0,
		Polygon: geometry.RectPolygon(4, 4),
		Doors:   geometry.DoorsOnAllSides(4, 4),
	}
	g := model.Graph{
		Nodes: []model.NodeDescription{
			{Index: 0, Shapes: []model.ShapeVariant{square}},
			{Index: 1, Shapes: []model.ShapeVariant{square}},
		},
		Edges: []model.Edge{{A: 0, B: 1}},
	}
	builder := configspace.NewBuilder(doorhandler.Default{}, geometry.DefaultOverlapTester{})
	table := builder.Build(g.Nodes)
	return g, table
}

func newTestController(g model.Graph, table *model.ConfigSpaceTable) *Controller {
	active := []constraints.Constraint{constraints.NewOverlapConstraint(geometry.DefaultOverlapTester{})}
	in := constraints.Input{Graph: g, ConfigSpaces: table}
	return New(g, table, active, RoomShapesHandler{}, in)
}

func TestPerturbPosition_KeepsNeighborNonOverlapping(t *testing.T) {
	g, table := twoRoomGraph()
	c := newTestController(g, table)

	layout := model.NewLayout()
	layout = layout.WithConfiguration(0, model.Configuration{Node: 0, ShapeID: "square4", Alias: 0, Offset: geometry.Point{}})
	layout = layout.WithConfiguration(1, model.Configuration{Node: 1, ShapeID: "square4", Alias: 0, Offset: geometry.Point{X: 4, Y: 0}})

	r := rng.New(7)
	next, err := c.PerturbPosition(r, layout, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, ok := next.Get(1)
	if !ok {
		t.Fatalf("node 1 missing from perturbed layout")
	}
	if cfg.Energy.Total != 0 {
		t.Fatalf("expected zero energy after position perturbation into a valid offset, got %v", cfg.Energy.Total)
	}
}

func TestRoomShapesHandler_NoNeighborRepeatExcludesNeighborAlias(t *testing.T) {
	a := model.ShapeVariant{ID: "a", Alias: 0}
	b := model.ShapeVariant{ID: "b", Alias: 1}
	g := model.Graph{
		Nodes: []model.NodeDescription{
			{Index: 0, Shapes: []model.ShapeVariant{a, b}, Repeat: model.RepeatModeNoNeighbors},
			{Index: 1, Shapes: []model.ShapeVariant{a, b}},
		},
		Edges: []model.Edge{{A: 0, B: 1}},
	}
	layout := model.NewLayout()
	layout = layout.WithConfiguration(1, model.Configuration{Node: 1, ShapeID: "a", Alias: 0})

	h := RoomShapesHandler{}
	candidates, err := h.Candidates(g, layout, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range candidates {
		if s.Alias == 0 {
			t.Fatalf("expected alias 0 excluded by no-neighbor-repeat policy, got %+v", candidates)
		}
	}
}

func TestRoomShapesHandler_ThrowsWhenNoCandidateSurvives(t *testing.T) {
	a := model.ShapeVariant{ID: "a", Alias: 0}
	g := model.Graph{
		Nodes: []model.NodeDescription{
			{Index: 0, Shapes: []model.ShapeVariant{a}, Repeat: model.RepeatModeNoNeighbors},
			{Index: 1, Shapes: []model.ShapeVariant{a}},
		},
		Edges: []model.Edge{{A: 0, B: 1}},
	}
	layout := model.NewLayout()
	layout = layout.WithConfiguration(0, model.Configuration{Node: 0, ShapeID: "a", Alias: 0})
	layout = layout.WithConfiguration(1, model.Configuration{Node: 1, ShapeID: "a", Alias: 0})

	h := RoomShapesHandler{ThrowIfRepeatModeNotSatisfied: true}
	_, err := h.Candidates(g, layout, 0)
	if err == nil {
		t.Fatalf("expected a RepeatModeViolation when no candidate survives")
	}
}
