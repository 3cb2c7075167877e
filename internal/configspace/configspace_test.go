package configspace

import (
	"testing"

	"github.com/Ko-stant/dungeon-layout-core/internal/doorhandler"
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

func square4x4(id string, alias int) model.ShapeVariant {
	return model.ShapeVariant{
		ID:      id,
		Alias:   alias,
		Polygon: geometry.RectPolygon(4, 4),
		Doors:   geometry.DoorsOnAllSides(4, 4),
	}
}

func lShaped(id string, alias int) model.ShapeVariant {
	return model.ShapeVariant{
		ID:      id,
		Alias:   alias,
		Polygon: geometry.LShapedPolygon(4, 4, 4, 2),
		Doors: []geometry.DoorLine{
			{From: geometry.Point{X: 8, Y: 1}, To: geometry.Point{X: 8, Y: 1}, Orientation: geometry.Vertical},
		},
	}
}

func TestBuildPair_SymmetryInvariant(t *testing.T) {
	b := NewBuilder(doorhandler.Default{}, geometry.DefaultOverlapTester{})
	a := square4x4("a", 0)
	c := square4x4("c", 0)

	csAB := b.BuildPair(a, c, model.EdgeRoomRoom)
	csBA := b.BuildPair(c, a, model.EdgeRoomRoom)

	if len(csAB.Offsets) == 0 {
		t.Fatalf("expected non-empty configuration space for two compatible squares")
	}
	for delta := range csAB.Offsets {
		neg := delta.Neg()
		if !csBA.Contains(neg) {
			t.Fatalf("symmetry violated: %+v in CS(A,B) but %+v not in CS(B,A)", delta, neg)
		}
	}
	for delta := range csBA.Offsets {
		neg := delta.Neg()
		if !csAB.Contains(neg) {
			t.Fatalf("symmetry violated: %+v in CS(B,A) but %+v not in CS(A,B)", delta, neg)
		}
	}
}

func TestBuildPair_NoOverlapAtAnyOffset(t *testing.T) {
	b := NewBuilder(doorhandler.Default{}, geometry.DefaultOverlapTester{})
	a := square4x4("a", 0)
	c := square4x4("c", 0)

	cs := b.BuildPair(a, c, model.EdgeRoomRoom)
	for delta := range cs.Offsets {
		shifted := c.Polygon.Translate(delta)
		if geometry.Overlaps(a.Polygon, shifted) {
			t.Fatalf("offset %+v overlaps", delta)
		}
	}
}

func TestBuildPair_FourCardinalOffsetsForAllSideDoors(t *testing.T) {
	b := NewBuilder(doorhandler.Default{}, geometry.DefaultOverlapTester{})
	a := square4x4("a", 0)
	c := square4x4("c", 0)

	cs := b.BuildPair(a, c, model.EdgeRoomRoom)
	want := map[geometry.Point]bool{
		{X: 4, Y: 0}:  false,
		{X: -4, Y: 0}: false,
		{X: 0, Y: 4}:  false,
		{X: 0, Y: -4}: false,
	}
	for delta := range cs.Offsets {
		if _, ok := want[delta]; ok {
			want[delta] = true
		}
	}
	for p, found := range want {
		if !found {
			t.Fatalf("expected cardinal offset %+v to be in the configuration space", p)
		}
	}
}

func TestBuildPair_HandlesMultiRectPolygons(t *testing.T) {
	b := NewBuilder(doorhandler.Default{}, geometry.DefaultOverlapTester{})
	l := lShaped("l", 0)
	sq := square4x4("sq", 1)

	cs := b.BuildPair(l, sq, model.EdgeRoomRoom)
	if len(cs.Offsets) == 0 {
		t.Fatalf("expected a non-empty configuration space between an L-shaped room and a square through its east door")
	}
	for delta := range cs.Offsets {
		shifted := sq.Polygon.Translate(delta)
		if geometry.Overlaps(l.Polygon, shifted) {
			t.Fatalf("offset %+v overlaps the L-shaped polygon", delta)
		}
	}
}
