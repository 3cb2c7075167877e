package mapdesc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Ko-stant/dungeon-layout-core/internal/geometry"
	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// NodeFile is the on-disk JSON form of a node, referencing shape
// variants by ID out of an accompanying shape library.
type NodeFile struct {
	ID         string   `json:"id"`
	ShapeIDs   []string `json:"shapeIds"`
	IsCorridor bool     `json:"isCorridor"`
	Repeat     string   `json:"repeatMode"`
}

// EdgeFile is the on-disk JSON form of an edge.
type EdgeFile struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Kind string `json:"kind"`
}

// LevelDescriptionFile is the on-disk JSON form of a LevelDescription,
// the map-description counterpart of the teacher's quest/board JSON
// files (board_loader.go, relocated quest_loader.go): same
// read-file-then-unmarshal shape, generalized from a HeroQuest-style
// quest definition to the layout core's node/edge/shape-library schema.
type LevelDescriptionFile struct {
	ID                  string                     `json:"id"`
	Nodes               []NodeFile                 `json:"nodes"`
	Edges               []EdgeFile                 `json:"edges"`
	MinimumRoomDistance int                        `json:"minimumRoomDistance"`
	ShapeLibraries      map[string]ShapeLibraryFile `json:"shapeLibraries"`
}

// ShapeLibraryFile names which shape specs a node may use, either
// inlined or loaded from an external geometry.ShapeLibrarySpec file
// (board_loader.go's load-by-path pattern) so a shape set can be
// shared across several level description files instead of being
// duplicated into each one.
type ShapeLibraryFile struct {
	Path   string               `json:"path,omitempty"`
	Shapes []geometry.ShapeSpec `json:"shapes,omitempty"`
}

// resolveShapes returns the library's shape specs, loading them from
// Path when set, and rejects any shape whose rectangle decomposition
// isn't simply connected — a shape split across disjoint pieces can
// never form a single placeable room.
func (f ShapeLibraryFile) resolveShapes() ([]geometry.ShapeSpec, error) {
	shapes := f.Shapes
	if f.Path != "" {
		lib, err := geometry.LoadShapeLibraryFromFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("mapdesc: loading shape library %q: %w", f.Path, err)
		}
		shapes = lib.Shapes
	}
	for _, s := range shapes {
		if !geometry.IsSimplyConnected(s.Polygon()) {
			return nil, fmt.Errorf("mapdesc: shape %q is not simply connected", s.ID)
		}
	}
	return shapes, nil
}

// LoadLevelDescriptionFromFile loads a level description from a JSON
// file and resolves it into a LevelDescription ready for mapdesc.Build.
func LoadLevelDescriptionFromFile(filepath string) (LevelDescription, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return LevelDescription{}, fmt.Errorf("failed to read level description file: %w", err)
	}

	var file LevelDescriptionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return LevelDescription{}, fmt.Errorf("failed to parse level description JSON: %w", err)
	}

	return ResolveLevelDescriptionFile(file)
}

// ResolveLevelDescriptionFile converts the on-disk representation into
// the in-memory LevelDescription. A shape's alias is assigned once per
// distinct shape ID across the whole file, not per node, since
// repeat-mode equality must hold across different nodes' libraries
// (spec.md §3: "two variants are interchangeable for repeat-mode
// purposes iff they share the same alias").
func ResolveLevelDescriptionFile(file LevelDescriptionFile) (LevelDescription, error) {
	level := LevelDescription{MinimumRoomDistance: file.MinimumRoomDistance}
	aliasByShapeID := make(map[string]int)
	nextAlias := 0

	for _, nf := range file.Nodes {
		lib, ok := file.ShapeLibraries[nf.ID]
		if !ok {
			return LevelDescription{}, fmt.Errorf("mapdesc: node %q references missing shape library", nf.ID)
		}
		libShapes, err := lib.resolveShapes()
		if err != nil {
			return LevelDescription{}, fmt.Errorf("mapdesc: node %q: %w", nf.ID, err)
		}
		shapes := make([]model.ShapeVariant, 0, len(nf.ShapeIDs))
		for _, shapeID := range nf.ShapeIDs {
			spec, found := findShape(libShapes, shapeID)
			if !found {
				return LevelDescription{}, fmt.Errorf("mapdesc: node %q references missing shape %q", nf.ID, shapeID)
			}
			alias, seen := aliasByShapeID[spec.ID]
			if !seen {
				alias = nextAlias
				aliasByShapeID[spec.ID] = alias
				nextAlias++
			}
			shapes = append(shapes, model.ShapeVariant{
				ID:      spec.ID,
				Polygon: spec.Polygon(),
				Doors:   spec.Doorway(),
				Alias:   alias,
			})
		}
		level.Nodes = append(level.Nodes, NodeSpec{
			ID:         nf.ID,
			Shapes:     shapes,
			IsCorridor: nf.IsCorridor,
			Repeat:     parseRepeatMode(nf.Repeat),
		})
	}

	for _, ef := range file.Edges {
		kind := model.EdgeRoomRoom
		if ef.Kind == "corridor" {
			kind = model.EdgeRoomCorridor
		}
		level.Edges = append(level.Edges, EdgeSpec{A: ef.A, B: ef.B, Kind: kind})
	}

	return level, nil
}

func findShape(shapes []geometry.ShapeSpec, id string) (geometry.ShapeSpec, bool) {
	for _, s := range shapes {
		if s.ID == id {
			return s, true
		}
	}
	return geometry.ShapeSpec{}, false
}

func parseRepeatMode(s string) model.RepeatMode {
	switch s {
	case "no_neighbors":
		return model.RepeatModeNoNeighbors
	case "none_global":
		return model.RepeatModeNoneGlobal
	default:
		return model.RepeatModeAllowAny
	}
}
