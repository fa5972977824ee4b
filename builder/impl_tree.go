// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_tree.go — implementation of Tree(depth, branching) constructor.
//
// Contract:
//   • depth ≥ 1 and branching ≥ 1 (else ErrTooFewNodes); cfg.rng required.
//   • Level l holds branching^l nodes; node IDs run level by level via
//     cfg.idFn, owners drawn uniform, labels "l{level}n{i}".
//   • Each level-l node connects to its `branching` children at level l+1;
//     the per-edge constraint is a four-way uniform draw:
//     always | modular gate | explicit set | compound (or/not coin).
//   • Every deepest-level node is a target.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time/space: O(branching^depth) nodes, O(branching^depth) edges.
//
// Determinism:
//   • Fixed draw order: owners level by level, then edges parent-major
//     in child order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodTree  = "Tree"
	minTreeSize = 1

	// Compound edge form: coin between or-of-two-phases and not-mod.
	treeOrFormProb = 0.5
)

// Tree returns a Constructor that builds a branching tree game.
func Tree(depth, branching int) Constructor {
	return func(g *game.Game, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if depth < minTreeSize || branching < minTreeSize {
			return fmt.Errorf("%s: depth=%d branching=%d < min=%d: %w",
				methodTree, depth, branching, minTreeSize, ErrTooFewNodes)
		}
		// Owners and edge constraints draw from the RNG.
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodTree, ErrNeedRandSource)
		}

		// 1) Nodes level by level; levels[l] holds the IDs of level l.
		seq := idSequence(cfg)
		levels := make([][]string, depth)
		width := 1
		for level := 0; level < depth; level++ {
			levels[level] = make([]string, width)
			for i := 0; i < width; i++ {
				id := seq()
				label := fmt.Sprintf("l%dn%d", level, i)
				if err := g.AddNode(id, label, cfg.rng.Intn(playerCount)); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodTree, id, err)
				}
				levels[level][i] = id
			}
			width *= branching
		}

		// 2) Edges: parent i at level l feeds children i·b .. (i+1)·b-1.
		var (
			c   temporal.Constraint
			err error
		)
		for level := 0; level < depth-1; level++ {
			for i, parent := range levels[level] {
				for b := 0; b < branching; b++ {
					child := levels[level+1][i*branching+b]
					if c, err = drawTreeConstraint(cfg); err != nil {
						return fmt.Errorf("%s: %w", methodTree, err)
					}
					if err = g.AddEdge(parent, child, c); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodTree, parent, child, err)
					}
				}
			}
		}

		// 3) Targets: the whole deepest level.
		for _, id := range levels[depth-1] {
			if err = g.MarkTarget(id); err != nil {
				return fmt.Errorf("%s: MarkTarget(%s): %w", methodTree, id, err)
			}
		}

		// Success: tree fully constructed.
		return nil
	}
}

// drawTreeConstraint draws one tree edge constraint from the four-way menu.
func drawTreeConstraint(cfg builderConfig) (temporal.Constraint, error) {
	switch cfg.rng.Intn(4) {
	case 0:
		return temporal.Always(), nil
	case 1:
		return drawModEq(cfg.rng, 2, 6)
	case 2:
		return drawExplicitSet(cfg.rng, 15, 1, 4)
	default:
		if cfg.rng.Float64() < treeOrFormProb {
			// Two independent small moduli at phases 0 and 1.
			left, err := temporal.Mod(intBetween(cfg.rng, 2, 4), 0)
			if err != nil {
				return temporal.Always(), err
			}
			right, err := temporal.Mod(intBetween(cfg.rng, 2, 4), 1)
			if err != nil {
				return temporal.Always(), err
			}

			return temporal.Or(left, right), nil
		}
		inner, err := temporal.Mod(intBetween(cfg.rng, 3, 5), 0)
		if err != nil {
			return temporal.Always(), err
		}

		return temporal.Not(inner), nil
	}
}
