package mapdesc

import (
	"testing"

	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

func TestBuild_CanonicalizesIDsInFirstSeenOrder(t *testing.T) {
	level := LevelDescription{
		Nodes: []NodeSpec{{ID: "room-a"}, {ID: "room-b"}, {ID: "room-c"}},
		Edges: []EdgeSpec{{A: "room-a", B: "room-b"}, {A: "room-b", B: "room-c"}},
	}

	m, err := Build(level)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.IndexByID["room-a"] != 0 || m.IndexByID["room-b"] != 1 || m.IndexByID["room-c"] != 2 {
		t.Fatalf("expected first-seen order indices, got %+v", m.IndexByID)
	}
	if m.IDFor(1) != "room-b" {
		t.Fatalf("expected IDFor(1) == room-b, got %q", m.IDFor(1))
	}
}

func TestBuild_RejectsUnknownEdgeReference(t *testing.T) {
	level := LevelDescription{
		Nodes: []NodeSpec{{ID: "a"}},
		Edges: []EdgeSpec{{A: "a", B: "missing"}},
	}
	if _, err := Build(level); err == nil {
		t.Fatalf("expected error for edge referencing unknown node")
	}
}

func TestBuild_RejectsInvalidGraph(t *testing.T) {
	level := LevelDescription{
		Nodes: []NodeSpec{{ID: "a"}, {ID: "b"}},
		// disconnected: no edges between a and b
	}
	_, err := Build(level)
	if err == nil {
		t.Fatalf("expected disconnected graph to be rejected")
	}
	var gerr *model.GraphError
	if _, ok := err.(*model.GraphError); !ok {
		_ = gerr
		t.Fatalf("expected *model.GraphError, got %T", err)
	}
}
