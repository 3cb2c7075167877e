// Package doorhandler enumerates permissible door positions for shape
// variants and decides which door pairs are compatible for a given
// edge kind (spec.md §4.1).
package doorhandler

import (
	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// DoorHandler is the external collaborator the configuration-space
// generator consumes (spec.md §2); internal/configspace depends only
// on this interface.
type DoorHandler interface {
	// Doors returns every door line on the shape's boundary.
	Doors(shape model.ShapeVariant) []geometry.DoorLine
	// Compatible reports whether door a (on the first shape) and door
	// b (on the second shape) may connect given the edge kind: for
	// room-room edges any pair sharing a line orientation is tried;
	// for room-corridor edges the corridor's door must match the
	// room door's length exactly (spec.md §4.1).
	Compatible(a, b geometry.DoorLine, kind model.EdgeKind) bool
}

// Default is the reference DoorHandler: doors come straight from the
// shape's stored Doors field (spec.md §3 stores the door list as part
// of the shape variant itself), and compatibility follows the rule in
// spec.md §4.1 verbatim.
type Default struct{}

func (Default) Doors(shape model.ShapeVariant) []geometry.DoorLine {
	return shape.Doors
}

func (Default) Compatible(a, b geometry.DoorLine, kind model.EdgeKind) bool {
	if a.Orientation != b.Orientation {
		return false
	}
	if kind == model.EdgeRoomCorridor {
		return a.Length() == b.Length()
	}
	return true
}
