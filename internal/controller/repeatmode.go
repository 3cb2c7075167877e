package controller

import (
	"fmt"

	"github.com/Ko-stant/dungeon-layout-core/internal/model"
)

// RoomShapesHandler enforces repeat-mode (spec.md §4.4): it filters the
// candidate shape set at perturbation time to respect neighbor- or
// global-uniqueness, and fails hard when ThrowIfRepeatModeNotSatisfied
// is set and no candidate survives. Grounded on the teacher's
// validate-then-mutate state-change idiom (cmd/server/hero_actions.go:
// compute the legal option set before committing to one).
type RoomShapesHandler struct {
	// Override, if non-nil, replaces every node's own RepeatMode
	// (GeneratorConfiguration.RepeatModeOverride, spec.md §6).
	Override                     *model.RepeatMode
	ThrowIfRepeatModeNotSatisfied bool
}

// RepeatModeViolation reports that no candidate shape survived
// repeat-mode filtering and ThrowIfRepeatModeNotSatisfied was set.
type RepeatModeViolation struct {
	Node int
	Mode model.RepeatMode
}

func (e *RepeatModeViolation) Error() string {
	return fmt.Sprintf("node %d: no shape satisfies repeat mode %v", e.Node, e.Mode)
}

func (h RoomShapesHandler) effectiveMode(node model.NodeDescription) model.RepeatMode {
	if h.Override != nil {
		return *h.Override
	}
	return node.Repeat
}

// Candidates returns the shapes node may take given the current
// layout, filtering out its current shape and any shape that would
// violate node's repeat-mode policy.
func (h RoomShapesHandler) Candidates(g model.Graph, layout model.Layout, node int) ([]model.ShapeVariant, error) {
	nd := g.Nodes[node]
	mode := h.effectiveMode(nd)
	current, hasCurrent := layout.Get(node)

	forbiddenAliases := h.forbiddenAliases(g, layout, node, mode)

	out := make([]model.ShapeVariant, 0, len(nd.Shapes))
	for _, s := range nd.Shapes {
		if hasCurrent && s.ID == current.ShapeID {
			continue
		}
		if forbiddenAliases[s.Alias] {
			continue
		}
		out = append(out, s)
	}

	if len(out) == 0 && h.ThrowIfRepeatModeNotSatisfied {
		return nil, &RepeatModeViolation{Node: node, Mode: mode}
	}
	return out, nil
}

func (h RoomShapesHandler) forbiddenAliases(g model.Graph, layout model.Layout, node int, mode model.RepeatMode) map[int]bool {
	forbidden := make(map[int]bool)
	switch mode {
	case model.RepeatModeNoNeighbors:
		for _, nb := range g.Neighbors(node) {
			if cfg, ok := layout.Get(nb); ok {
				forbidden[cfg.Alias] = true
			}
		}
	case model.RepeatModeNoneGlobal:
		for other, cfg := range layout.Configurations {
			if other != node {
				forbidden[cfg.Alias] = true
			}
		}
	}
	return forbidden
}
