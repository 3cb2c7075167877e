package model

import (
	"fmt"

	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
)

// Configuration is a node's current placement: the chosen shape
// variant, an integer 2D offset, and the cached energy-data block.
type Configuration struct {
	Node     int
	ShapeID  string
	Alias    int
	Offset   geometry.Point
	DoorPair int // which door-pair index this configuration connects through, for cache-key completeness
	Energy   EnergyData
}

// CacheKey is the equality/hash key for a configuration. spec.md §9
// flags that a faithful reimplementation of the source this spec was
// distilled from omitted one of four equality fields from its hash,
// causing pathological collisions; this reimplementation hashes all
// four fields (alias, offset X, offset Y, door-pair tag) so equal keys
// imply equal configurations.
func (c Configuration) CacheKey() string {
	return fmt.Sprintf("%d|%d,%d|%d", c.Alias, c.Offset.X, c.Offset.Y, c.DoorPair)
}

// EnergyData is the per-node scalar energy plus the bookkeeping each
// constraint needs to update it incrementally.
type EnergyData struct {
	Total float64
	// PerConstraint holds each active constraint's own contribution,
	// keyed by constraint name, so InvariantViolation errors can report
	// the full energy vector (spec.md §7).
	PerConstraint map[string]float64
	// OverlapWithNeighbor is a slot for per-neighbor overlap areas,
	// keyed by neighbor node index. No constraint in this module fills
	// it; Clone copies whatever it holds.
	OverlapWithNeighbor map[int]float64
	// CorridorValid is a slot for whether the corridor triple rooted at
	// this node has a valid placement. No constraint in this module sets
	// it; Clone copies it.
	CorridorValid bool
}

func NewEnergyData() EnergyData {
	return EnergyData{
		PerConstraint:       make(map[string]float64),
		OverlapWithNeighbor: make(map[int]float64),
	}
}

// Clone performs the small eager copy the design notes call for:
// energy-data blocks are cheap to duplicate in full on every perturbation.
func (e EnergyData) Clone() EnergyData {
	out := EnergyData{
		Total:         e.Total,
		CorridorValid: e.CorridorValid,
	}
	out.PerConstraint = make(map[string]float64, len(e.PerConstraint))
	for k, v := range e.PerConstraint {
		out.PerConstraint[k] = v
	}
	out.OverlapWithNeighbor = make(map[int]float64, len(e.OverlapWithNeighbor))
	for k, v := range e.OverlapWithNeighbor {
		out.OverlapWithNeighbor[k] = v
	}
	return out
}

// Recompute sets Total to the sum of PerConstraint and returns it.
func (e *EnergyData) Recompute() float64 {
	total := 0.0
	for _, v := range e.PerConstraint {
		total += v
	}
	e.Total = total
	return total
}
