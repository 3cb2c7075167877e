// Package configspace implements the configuration-space generator
// (spec.md §4.1): for every ordered pair of shape variants, the set of
// offsets at which the second shape connects to the first through at
// least one coincident door pair without overlap.
package configspace

import (
	"github.com/Ko-stant/dungeon-layout-core/internal/doorhandler"
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// Builder computes configuration-space tables. Door enumeration and
// overlap testing go through the DoorHandler and PolygonOverlapTester
// interfaces; door-pair offsets come from geometry.OffsetsForDoorPair.
type Builder struct {
	Doors   doorhandler.DoorHandler
	Overlap geometry.PolygonOverlapTester
}

func NewBuilder(doors doorhandler.DoorHandler, overlap geometry.PolygonOverlapTester) *Builder {
	return &Builder{Doors: doors, Overlap: overlap}
}

// Build enumerates every ordered pair of shapes across all nodes and
// computes their configuration spaces, plus the alias mapping
// (spec.md §4.1's required IntAliasMapping report).
func (b *Builder) Build(nodes []model.NodeDescription) *model.ConfigSpaceTable {
	table := model.NewConfigSpaceTable()

	shapesByAlias := make(map[int]model.ShapeVariant)
	for _, n := range nodes {
		for _, s := range n.Shapes {
			table.Aliases[s.ID] = s.Alias
			shapesByAlias[s.Alias] = s
		}
	}

	// Every alias pair gets both a room-room and a room-corridor space:
	// which one a consumer needs depends on the edge kind connecting
	// the two placed nodes at lookup time (constraints.CorridorConstraint
	// looks up EdgeRoomCorridor for its a-corridor and corridor-b legs;
	// everything else uses EdgeRoomRoom).
	for aliasU, shapeU := range shapesByAlias {
		for aliasV, shapeV := range shapesByAlias {
			table.Set(aliasU, aliasV, model.EdgeRoomRoom, b.BuildPair(shapeU, shapeV, model.EdgeRoomRoom))
			table.Set(aliasU, aliasV, model.EdgeRoomCorridor, b.BuildPair(shapeU, shapeV, model.EdgeRoomCorridor))
		}
	}
	return table
}

// BuildPair computes the configuration space for one ordered pair of
// shapes under a specific edge kind (room-room vs room-corridor).
func (b *Builder) BuildPair(u, v model.ShapeVariant, kind model.EdgeKind) model.ConfigSpace {
	cs := model.NewConfigSpace()
	doorsU := b.Doors.Doors(u)
	doorsV := b.Doors.Doors(v)

	for _, du := range doorsU {
		for _, dv := range doorsV {
			if !b.Doors.Compatible(du, dv, kind) {
				continue
			}
			for _, delta := range geometry.OffsetsForDoorPair(du, dv) {
				shifted := v.Polygon.Translate(delta)
				if b.Overlap.Overlaps(u.Polygon, shifted) {
					continue
				}
				cs.Add(delta)
			}
		}
	}
	return cs
}

// GetAverageSize returns the mean bounding-box diagonal across every
// shape variant passed in, used to seed energy scale (spec.md §4.1).
func GetAverageSize(nodes []model.NodeDescription) float64 {
	total := 0.0
	count := 0
	for _, n := range nodes {
		for _, s := range n.Shapes {
			total += s.BoundingDiagonal()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
