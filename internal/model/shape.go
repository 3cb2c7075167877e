// Package model holds the data types shared across the layout core:
// shapes, nodes, graphs, configurations, energy data, layouts and
// chains (spec.md §3). It depends only on internal/geometry's value
// types, never on the concrete overlap/intersection implementations.
package model

import (
	"math"

	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
)

// ShapeVariant is a candidate polygon for a node: a closed axis-aligned
// orthogonal polygon, its door lines, and an integer alias used for
// fast repeat-mode equality checks (two variants with the same alias
// are interchangeable for repeat-mode purposes).
type ShapeVariant struct {
	ID      string
	Polygon geometry.Polygon
	Doors   []geometry.DoorLine
	Alias   int
}

// BoundingDiagonal returns the Euclidean-ish integer diagonal of the
// shape's bounding box, used to seed energy scale (GetAverageSize).
func (s ShapeVariant) BoundingDiagonal() float64 {
	min, max, ok := s.Polygon.BoundingBox()
	if !ok {
		return 0
	}
	dx := float64(max.X - min.X)
	dy := float64(max.Y - min.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// RepeatMode controls reuse of the same shape alias across nodes.
type RepeatMode int

const (
	// RepeatModeAllowAny allows the same shape alias anywhere.
	RepeatModeAllowAny RepeatMode = iota
	// RepeatModeNoNeighbors forbids the same alias on adjacent nodes.
	RepeatModeNoNeighbors
	// RepeatModeNoneGlobal forbids the same alias anywhere in the layout.
	RepeatModeNoneGlobal
)

// IntAliasMapping maps a shape variant's ID to its equivalence alias,
// as produced by the configuration-space generator (spec.md §4.1).
type IntAliasMapping map[string]int
