package planner

import (
	"testing"

	"github.com/Ko-stant/dungeon-layout-core/internal/anneal"
	"github.com/Ko-stant/dungeon-layout-core/internal/chains"
	"github.com/Ko-stant/dungeon-layout-core/internal/configspace"
	"github.com/Ko-stant/dungeon-layout-core/internal/constraints"
	"github.com/Ko-stant/dungeon-layout-core/internal/controller"
	"github.com/Ko-stant/dungeon-layout-core/internal/doorhandler"
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
	"github.com/Ko-stant/dungeon-layout-core/internal/rng"
)

func TestRun_TriangleOfRoomsProducesValidLayout(t *testing.T) {
	squares := []model.ShapeVariant{
		{ID: "s4", Alias: 0, Polygon: geometry.RectPolygon(4, 4), Doors: geometry.DoorsOnAllSides(4, 4)},
		{ID: "s6", Alias: 1, Polygon: geometry.RectPolygon(4, 6), Doors: geometry.DoorsOnAllSides(4, 6)},
	}
	g := model.Graph{
		Nodes: []model.NodeDescription{
			{Index: 0, Shapes: squares},
			{Index: 1, Shapes: squares},
			{Index: 2, Shapes: squares},
		},
		Edges: []model.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 0}},
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected invalid graph: %v", err)
	}

	builder := configspace.NewBuilder(doorhandler.Default{}, geometry.DefaultOverlapTester{})
	table := builder.Build(g.Nodes)

	active := []constraints.Constraint{constraints.NewOverlapConstraint(geometry.DefaultOverlapTester{})}
	in := constraints.Input{Graph: g, ConfigSpaces: table}
	ctl := controller.New(g, table, active, controller.RoomShapesHandler{}, in)
	evolver := anneal.New(ctl, nil, nil)

	decomposed := chains.Decompose(g, chains.Options{})

	p := New(evolver, decomposed, nil)
	r := rng.New(0)
	annealCfg := anneal.DefaultConfig()
	result, ok := p.Run(r, func(int) anneal.Config { return annealCfg }, DefaultConfig())
	if !ok {
		t.Fatalf("expected the triangle of rooms to reach a valid layout")
	}
	for _, n := range []int{0, 1, 2} {
		if !result.Has(n) {
			t.Fatalf("expected node %d to be placed", n)
		}
	}
	if !result.IsValid() {
		t.Fatalf("expected a fully valid layout, energies: %+v", result.EnergyVector())
	}
}
