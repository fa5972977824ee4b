// SPDX-License-Identifier: MIT
// Package: tempograph/game
//
// validate.go - structural well-formedness checking.
//
// Contract:
//   • Checks are independent and all reported together, never
//     short-circuited: a file with five defects yields five violations.
//   • Violations are values, not errors: a defective game still loads, can
//     be inspected and re-serialized; it is merely not "valid".
//   • Reporting order is deterministic: NoNodes, NoEdges, then BadOwner per
//     node in insertion order, then DanglingEdge per edge (From before To).

package game

import "fmt"

// ViolationKind discriminates the validator findings.
type ViolationKind uint8

const (
	// NoNodes: the game declares no nodes at all.
	NoNodes ViolationKind = iota
	// NoEdges: the game declares no edges at all.
	NoEdges
	// BadOwner: a node owner is outside {0,1}.
	BadOwner
	// DanglingEdge: an edge endpoint references an undeclared node.
	DanglingEdge
)

// String returns the stable kind name used in reports.
func (k ViolationKind) String() string {
	switch k {
	case NoNodes:
		return "NoNodes"
	case NoEdges:
		return "NoEdges"
	case BadOwner:
		return "BadOwner"
	case DanglingEdge:
		return "DanglingEdge"
	default:
		return fmt.Sprintf("ViolationKind(%d)", uint8(k))
	}
}

// Violation is one validator finding. NodeID carries the offending node
// (BadOwner) or endpoint (DanglingEdge); From/To identify the edge for
// DanglingEdge; Owner carries the out-of-range value for BadOwner.
type Violation struct {
	Kind   ViolationKind
	NodeID string
	Owner  int
	From   string
	To     string
}

// String renders the violation as one stable human-readable line.
func (v Violation) String() string {
	switch v.Kind {
	case NoNodes:
		return "game declares no nodes"
	case NoEdges:
		return "game declares no edges"
	case BadOwner:
		return fmt.Sprintf("node %q: owner %d outside {0,1}", v.NodeID, v.Owner)
	case DanglingEdge:
		return fmt.Sprintf("edge %q -> %q: endpoint %q undeclared", v.From, v.To, v.NodeID)
	default:
		return v.Kind.String()
	}
}

// Validate runs every structural check over g and returns all findings.
// A nil game reports NoNodes and NoEdges. The result is nil iff g is valid.
func Validate(g *Game) []Violation {
	var out []Violation
	if g == nil {
		return []Violation{{Kind: NoNodes}, {Kind: NoEdges}}
	}

	// 1) Presence checks.
	if len(g.order) == 0 {
		out = append(out, Violation{Kind: NoNodes})
	}
	if len(g.edges) == 0 {
		out = append(out, Violation{Kind: NoEdges})
	}

	// 2) Owner range, per node in insertion order.
	for _, id := range g.order {
		if o := g.nodes[id].Owner; o != 0 && o != 1 {
			out = append(out, Violation{Kind: BadOwner, NodeID: id, Owner: o})
		}
	}

	// 3) Edge endpoints, one violation per missing endpoint.
	for i := range g.edges {
		e := g.edges[i]
		if _, exists := g.nodes[e.From]; !exists {
			out = append(out, Violation{Kind: DanglingEdge, NodeID: e.From, From: e.From, To: e.To})
		}
		if _, exists := g.nodes[e.To]; !exists {
			out = append(out, Violation{Kind: DanglingEdge, NodeID: e.To, From: e.From, To: e.To})
		}
	}

	return out
}

// IsValid reports whether Validate finds nothing.
func IsValid(g *Game) bool { return len(Validate(g)) == 0 }
