package geometry

import "testing"

func TestOffsetsForDoorPair_VerticalSegmentDoors(t *testing.T) {
	a := DoorLine{From: Point{X: 4, Y: 0}, To: Point{X: 4, Y: 2}, Orientation: Vertical}
	b := DoorLine{From: Point{X: 0, Y: 0}, To: Point{X: 0, Y: 1}, Orientation: Vertical}
	offsets := OffsetsForDoorPair(a, b)
	if len(offsets) == 0 {
		t.Fatalf("expected at least one coincidence offset")
	}
	for _, d := range offsets {
		if d.X != 4 {
			t.Fatalf("expected fixed dx=4, got %+v", d)
		}
		shifted := b.Translate(d)
		if _, ok := OverlapRange(a, shifted); !ok {
			t.Fatalf("offset %+v does not coincide a=%+v b=%+v", d, a, shifted)
		}
	}
}

func TestOffsetsForDoorPair_MismatchedOrientation(t *testing.T) {
	a := DoorLine{From: Point{X: 4, Y: 0}, To: Point{X: 4, Y: 2}, Orientation: Vertical}
	b := DoorLine{From: Point{X: 0, Y: 0}, To: Point{X: 1, Y: 0}, Orientation: Horizontal}
	if offsets := OffsetsForDoorPair(a, b); offsets != nil {
		t.Fatalf("expected nil offsets for mismatched orientation, got %+v", offsets)
	}
}
