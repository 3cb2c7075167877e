package geometry

import (
	"encoding/json"
	"fmt"
	"os"
)

// RectSpec is the JSON-serializable form of Rect.
type RectSpec struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

func (r RectSpec) ToRect() Rect { return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

// DoorSpec is the JSON-serializable form of DoorLine.
type DoorSpec struct {
	FromX       int         `json:"fromX"`
	FromY       int         `json:"fromY"`
	ToX         int         `json:"toX"`
	ToY         int         `json:"toY"`
	Orientation Orientation `json:"orientation"`
}

func (d DoorSpec) ToDoorLine() DoorLine {
	return DoorLine{
		From:        Point{X: d.FromX, Y: d.FromY},
		To:          Point{X: d.ToX, Y: d.ToY},
		Orientation: d.Orientation,
	}
}

// ShapeSpec is the on-disk description of a single shape variant's
// geometry: its rectangle decomposition and its candidate door lines.
type ShapeSpec struct {
	ID    string     `json:"id"`
	Rects []RectSpec `json:"rects"`
	Doors []DoorSpec `json:"doors"`
}

func (s ShapeSpec) Polygon() Polygon {
	rects := make([]Rect, len(s.Rects))
	for i, r := range s.Rects {
		rects[i] = r.ToRect()
	}
	return Polygon{Rects: rects}
}

func (s ShapeSpec) Doorway() []DoorLine {
	doors := make([]DoorLine, len(s.Doors))
	for i, d := range s.Doors {
		doors[i] = d.ToDoorLine()
	}
	return doors
}

// ShapeLibrarySpec is a named collection of shape specs, the on-disk
// counterpart of a node's allowed shape-variant set.
type ShapeLibrarySpec struct {
	ID     string      `json:"id"`
	Shapes []ShapeSpec `json:"shapes"`
}

// LoadShapeLibraryFromFile loads a shape library definition from a
// JSON file, the geometry-side counterpart of a map description file.
func LoadShapeLibraryFromFile(filepath string) (*ShapeLibrarySpec, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read shape library file: %w", err)
	}

	var lib ShapeLibrarySpec
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse shape library JSON: %w", err)
	}

	return &lib, nil
}
