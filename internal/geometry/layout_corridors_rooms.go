package geometry

// RectPolygon returns a single-rectangle polygon of the given size
// with its min corner at the origin.
func RectPolygon(w, h int) Polygon {
	return Polygon{Rects: []Rect{{X: 0, Y: 0, W: w, H: h}}}
}

// DoorsOnAllSides returns one point door centered on each of the four
// sides of a w×h rectangle rooted at the origin — the fixture shape
// used by the two-room and triangle end-to-end scenarios (spec.md §8).
func DoorsOnAllSides(w, h int) []DoorLine {
	midX := w / 2
	midY := h / 2
	return []DoorLine{
		{From: Point{X: midX, Y: 0}, To: Point{X: midX, Y: 0}, Orientation: Horizontal},        // north
		{From: Point{X: midX, Y: h}, To: Point{X: midX, Y: h}, Orientation: Horizontal},        // south
		{From: Point{X: 0, Y: midY}, To: Point{X: 0, Y: midY}, Orientation: Vertical},           // west
		{From: Point{X: w, Y: midY}, To: Point{X: w, Y: midY}, Orientation: Vertical},           // east
	}
}

// LShapedPolygon returns a simple L-shaped two-rect room: a w1×h1
// rectangle with a w2×h2 rectangle attached to its right edge, used to
// exercise non-rectangular orthogonal shapes in the shape library.
func LShapedPolygon(w1, h1, w2, h2 int) Polygon {
	return Polygon{Rects: []Rect{
		{X: 0, Y: 0, W: w1, H: h1},
		{X: w1, Y: 0, W: w2, H: h2},
	}}
}

// CorridorPolygon returns the polygon for a w×h corridor segment (a
// corridor node's shape is typically a thin 1-wide or 2-wide strip
// with a door on each of its two short ends).
func CorridorPolygon(w, h int) Polygon {
	return RectPolygon(w, h)
}

// CorridorDoors returns the two end-doors of a w×h corridor strip
// (horizontal strip: west/east ends; vertical strip: north/south ends).
func CorridorDoors(w, h int) []DoorLine {
	if w >= h {
		return []DoorLine{
			{From: Point{X: 0, Y: h / 2}, To: Point{X: 0, Y: h / 2}, Orientation: Vertical},
			{From: Point{X: w, Y: h / 2}, To: Point{X: w, Y: h / 2}, Orientation: Vertical},
		}
	}
	return []DoorLine{
		{From: Point{X: w / 2, Y: 0}, To: Point{X: w / 2, Y: 0}, Orientation: Horizontal},
		{From: Point{X: w / 2, Y: h}, To: Point{X: w / 2, Y: h}, Orientation: Horizontal},
	}
}
