// SPDX-License-Identifier: MIT
// Package: tempograph/game
//
// methods.go - read-only accessors over a constructed Game.
//
// Every accessor returns copies: the Game's internal state is never
// aliased out, so a returned slice or Node can be mutated freely by the
// caller without corrupting the model.

package game

// Name returns the game name (the DOT digraph identifier).
func (g *Game) Name() string { return g.name }

// Node returns a copy of the node with the given id.
func (g *Game) Node(id string) (Node, bool) {
	n, exists := g.nodes[id]
	if !exists {
		return Node{}, false
	}

	return *n, true
}

// HasNode reports whether id was declared.
func (g *Game) HasNode(id string) bool {
	_, exists := g.nodes[id]

	return exists
}

// NodeIDs returns the node ids in insertion order.
func (g *Game) NodeIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Nodes returns copies of all nodes in insertion order.
func (g *Game) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}

	return out
}

// Edges returns a copy of the edge list in insertion order.
func (g *Game) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of declared nodes.
func (g *Game) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Game) EdgeCount() int { return len(g.edges) }

// Targets returns the ids of target nodes in insertion order.
func (g *Game) Targets() []string {
	var out []string
	for _, id := range g.order {
		if g.nodes[id].Target {
			out = append(out, id)
		}
	}

	return out
}

// OutDegree returns the number of edges leaving id (0 for unknown ids).
func (g *Game) OutDegree(id string) int {
	deg := 0
	for i := range g.edges {
		if g.edges[i].From == id {
			deg++
		}
	}

	return deg
}
