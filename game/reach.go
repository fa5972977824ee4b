// SPDX-License-Identifier: MIT
// Package: tempograph/game
//
// reach.go - structural reachability, ignoring edge constraints.
//
// Contract:
//   • Purely structural: an edge is traversable regardless of its temporal
//     constraint. A node the BFS cannot reach is unreachable at every time
//     step; the converse is not checked here.
//   • Deterministic: neighbors expand in edge insertion order, the queue
//     is FIFO, results follow visit order (ReachableFrom) or node
//     insertion order (CannotReachTarget).
//
// Complexity: O(V + E) time, O(V + E) space per call.

package game

// ReachableFrom returns every node reachable from start by directed edges,
// in BFS visit order, start included. An undeclared start yields nil.
func ReachableFrom(g *Game, start string) []string {
	if g == nil {
		return nil
	}
	if _, exists := g.nodes[start]; !exists {
		return nil
	}

	next := forwardAdjacency(g)
	visited := map[string]bool{start: true}
	order := []string{start}
	queue := []string{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, nbr := range next[curr] {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			order = append(order, nbr)
			queue = append(queue, nbr)
		}
	}

	return order
}

// CannotReachTarget returns the declared nodes from which no target node is
// reachable, in insertion order. With no targets every node qualifies.
// Dangling edge endpoints are skipped: reachability is defined over
// declared nodes only.
func CannotReachTarget(g *Game) []string {
	if g == nil {
		return nil
	}

	// Reverse BFS from all targets at once.
	prev := reverseAdjacency(g)
	visited := make(map[string]bool, len(g.order))
	var queue []string
	for _, id := range g.order {
		if g.nodes[id].Target {
			visited[id] = true
			queue = append(queue, id)
		}
	}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, src := range prev[curr] {
			if visited[src] {
				continue
			}
			visited[src] = true
			queue = append(queue, src)
		}
	}

	var out []string
	for _, id := range g.order {
		if !visited[id] {
			out = append(out, id)
		}
	}

	return out
}

// forwardAdjacency maps each declared node to its declared successors.
func forwardAdjacency(g *Game) map[string][]string {
	next := make(map[string][]string, len(g.order))
	for i := range g.edges {
		e := g.edges[i]
		if _, ok := g.nodes[e.From]; !ok {
			continue
		}
		if _, ok := g.nodes[e.To]; !ok {
			continue
		}
		next[e.From] = append(next[e.From], e.To)
	}

	return next
}

// reverseAdjacency maps each declared node to its declared predecessors.
func reverseAdjacency(g *Game) map[string][]string {
	prev := make(map[string][]string, len(g.order))
	for i := range g.edges {
		e := g.edges[i]
		if _, ok := g.nodes[e.From]; !ok {
			continue
		}
		if _, ok := g.nodes[e.To]; !ok {
			continue
		}
		prev[e.To] = append(prev[e.To], e.From)
	}

	return prev
}
