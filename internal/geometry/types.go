// Package geometry provides a reference implementation of the
// axis-aligned polygon primitives the layout core treats as an
// externally supplied capability. internal/configspace and
// internal/constraints test polygon overlap only through the
// PolygonOverlapTester interface; they still import this package for
// its value types and for OffsetsForDoorPair and LInfinityDistance.
package geometry

import "fmt"

// Orientation distinguishes the two axis-aligned line directions a
// door or wall segment can run in.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Point is an integer 2D coordinate or translation offset.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }
func (p Point) Neg() Point        { return Point{X: -p.X, Y: -p.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Rect is an axis-aligned rectangle given by its min corner (inclusive)
// and its width/height. A Polygon is a decomposition into one or more
// non-overlapping Rects, following the teacher's EdgeAddress/Segment
// convention of describing board geometry with small integer-keyed
// value types.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Translate(d Point) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Intersect returns the overlapping rectangle of r and o and whether
// one exists (non-zero area).
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

func (r Rect) Area() int { return r.W * r.H }

// Touches reports whether r and o overlap or share a boundary segment
// of positive length; rectangles that meet only at a corner do not
// touch (used by connectivity validation, not overlap).
func (r Rect) Touches(o Rect) bool {
	xOverlap := r.X < o.X+o.W && o.X < r.X+r.W
	yOverlap := r.Y < o.Y+o.H && o.Y < r.Y+r.H
	xAdjacent := r.X+r.W == o.X || o.X+o.W == r.X
	yAdjacent := r.Y+r.H == o.Y || o.Y+o.H == r.Y
	if xOverlap && (yOverlap || yAdjacent) {
		return true
	}
	if yOverlap && (xOverlap || xAdjacent) {
		return true
	}
	return false
}

// Polygon is an axis-aligned orthogonal polygon realized as a list of
// rectangles that together form one simply-connected shape.
type Polygon struct {
	Rects []Rect
}

func (p Polygon) Translate(d Point) Polygon {
	out := make([]Rect, len(p.Rects))
	for i, r := range p.Rects {
		out[i] = r.Translate(d)
	}
	return Polygon{Rects: out}
}

// BoundingBox returns the min and max corners (max exclusive) of the
// polygon, or ok=false if the polygon has no rects.
func (p Polygon) BoundingBox() (min, max Point, ok bool) {
	if len(p.Rects) == 0 {
		return Point{}, Point{}, false
	}
	first := p.Rects[0]
	minX, minY := first.X, first.Y
	maxX, maxY := first.X+first.W, first.Y+first.H
	for _, r := range p.Rects[1:] {
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.X+r.W > maxX {
			maxX = r.X + r.W
		}
		if r.Y+r.H > maxY {
			maxY = r.Y + r.H
		}
	}
	return Point{X: minX, Y: minY}, Point{X: maxX, Y: maxY}, true
}

// DoorLine is a segment on a polygon's boundary where it can connect
// to a neighboring polygon. For point doors From == To.
type DoorLine struct {
	From, To    Point
	Orientation Orientation
}

// Length returns the number of unit positions the door line spans
// (1 for a point door).
func (d DoorLine) Length() int {
	if d.Orientation == Vertical {
		return abs(d.To.Y-d.From.Y) + 1
	}
	return abs(d.To.X-d.From.X) + 1
}

func (d DoorLine) Translate(p Point) DoorLine {
	return DoorLine{From: d.From.Add(p), To: d.To.Add(p), Orientation: d.Orientation}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
