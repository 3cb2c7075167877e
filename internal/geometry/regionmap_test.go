package geometry

import "testing"

func TestIsSimplyConnected_TouchingRects(t *testing.T) {
	p := Polygon{Rects: []Rect{
		{X: 0, Y: 0, W: 4, H: 4},
		{X: 4, Y: 0, W: 4, H: 4},
	}}
	if !IsSimplyConnected(p) {
		t.Fatalf("expected touching rects to form one component")
	}
}

func TestIsSimplyConnected_DisjointRects(t *testing.T) {
	p := Polygon{Rects: []Rect{
		{X: 0, Y: 0, W: 4, H: 4},
		{X: 10, Y: 10, W: 4, H: 4},
	}}
	if IsSimplyConnected(p) {
		t.Fatalf("expected disjoint rects to form separate components")
	}
	if got := CountConnectedComponents(p); got != 2 {
		t.Fatalf("expected 2 components, got %d", got)
	}
}
