// SPDX-License-Identifier: MIT
// Package: tempograph/game
//
// game.go - the GameModel: nodes, edges and construction.
//
// Contract:
//   • Node insertion order is part of the model: serialization order is a
//     file-format contract, so the Game keeps an explicit order slice next
//     to the id lookup map.
//   • Construction is permissive where parsing needs it to be: owners
//     outside {0,1} and dangling edge endpoints are admitted here and
//     reported by Validate, never silently repaired.
//   • A Game is built by one goroutine and read-only afterwards; it
//     carries no lock.

package game

import (
	"fmt"

	"github.com/katalvlaran/tempograph/temporal"
)

// DefaultName is used when NewGame is given an empty name. The name ends
// up as the DOT digraph identifier, which must not be empty.
const DefaultName = "game"

// File-local method tags for error context.
const (
	methodAddNode    = "AddNode"
	methodAddEdge    = "AddEdge"
	methodMarkTarget = "MarkTarget"
)

// Node is one position of a temporal reachability game: the player who
// owns the move, a display label and the target flag.
type Node struct {
	ID     string
	Owner  int
	Label  string
	Target bool
}

// Edge is one directed transition. The zero-value Constraint is Always,
// so an unconstrained edge needs no explicit setup.
type Edge struct {
	From       string
	To         string
	Constraint temporal.Constraint
}

// Game is a directed game graph over named nodes. Nodes keep their
// insertion order; edges keep theirs.
type Game struct {
	name  string
	nodes map[string]*Node
	order []string
	edges []Edge
}

// NewGame returns an empty game. An empty name falls back to DefaultName.
func NewGame(name string) *Game {
	if name == "" {
		name = DefaultName
	}

	return &Game{
		name:  name,
		nodes: make(map[string]*Node),
	}
}

// AddNode declares a node. The id must be non-empty and unused; the label
// defaults to the id when empty. The owner is stored as given: range
// checking is Validate's concern, so files with out-of-range owners still
// load for inspection.
func (g *Game) AddNode(id, label string, owner int) error {
	if id == "" {
		return fmt.Errorf("%s: %w", methodAddNode, ErrEmptyNodeID)
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%s: id %q: %w", methodAddNode, id, ErrDuplicateNode)
	}
	if label == "" {
		label = id
	}
	g.nodes[id] = &Node{ID: id, Owner: owner, Label: label}
	g.order = append(g.order, id)

	return nil
}

// MarkTarget flags an existing node as a target position.
func (g *Game) MarkTarget(id string) error {
	n, exists := g.nodes[id]
	if !exists {
		return fmt.Errorf("%s: id %q: %w", methodMarkTarget, id, ErrNodeNotFound)
	}
	n.Target = true

	return nil
}

// AddEdge appends a directed edge. Endpoints must be non-empty but need
// not be declared yet; Validate reports dangling references, keeping
// parsing of defective files non-fatal.
func (g *Game) AddEdge(from, to string, c temporal.Constraint) error {
	if from == "" || to == "" {
		return fmt.Errorf("%s: %q -> %q: %w", methodAddEdge, from, to, ErrEmptyNodeID)
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Constraint: c})

	return nil
}
