package anneal

import (
	"testing"

	"github.com/Ko-stant/dungeon-layout-core/internal/configspace"
	"github.com/Ko-stant/dungeon-layout-core/internal/constraints"
	"github.com/Ko-stant/dungeon-layout-core/internal/controller"
	"github.com/Ko-stant/dungeon-layout-core/internal/doorhandler"
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
	"github.com/Ko-stant/dungeon-layout-core/internal/rng"
)

func twoRoomLineGraph() (model.Graph, *model.ConfigSpaceTable) {
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
	return g, builder.Build(g.Nodes)
}

func TestSolve_TwoRoomLineReachesZeroEnergy(t *testing.T) {
	g, table := twoRoomLineGraph()
	active := []constraints.Constraint{constraints.NewOverlapConstraint(geometry.DefaultOverlapTester{})}
	in := constraints.Input{Graph: g, ConfigSpaces: table}
	ctl := controller.New(g, table, active, controller.RoomShapesHandler{}, in)

	evolver := New(ctl, nil, nil)
	chain := model.Chain{Nodes: []int{0, 1}, IsFromFace: false}

	r := rng.New(0)
	result, ok := evolver.Solve(r, DefaultConfig(), model.NewLayout(), chain, 0)
	if !ok {
		t.Fatalf("expected the two-room line to reach a valid placement")
	}
	if result.TotalEnergy() != 0 {
		t.Fatalf("expected zero total energy, got %v", result.TotalEnergy())
	}

	cfgA, _ := result.Get(0)
	cfgB, _ := result.Get(1)
	delta := cfgB.Offset.Sub(cfgA.Offset)
	valid := map[geometry.Point]bool{
		{X: 4, Y: 0}: true, {X: -4, Y: 0}: true, {X: 0, Y: 4}: true, {X: 0, Y: -4}: true,
	}
	if !valid[delta] {
		t.Fatalf("expected B placed at one of the 4 cardinal offsets from A, got %+v", delta)
	}
}
