// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 2 and cols ≥ 2 (else ErrTooFewNodes); cfg.rng required.
//   • Nodes row-major (y outer, x inner) via cfg.idFn; checkerboard
//     ownership (x+y) mod 2; labels "({x},{y})".
//   • Rightward edges: unconstrained at the critical columns x=0 and
//     x=cols-2, otherwise (not (= (mod t 4) x mod 4)).
//   • Downward edges: unconstrained at the critical rows y=0 and y=rows-2,
//     otherwise (>= t 2y).
//   • Diagonal shortcut to (x+1,y+1) with probability 0.3, constrained
//     (and (>= t 3) (= (mod t 5) 0)).
//   • The bottom-right corner is the target.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time/space: O(rows·cols) nodes, O(rows·cols) edges.
//
// Determinism:
//   • Fixed emission order per cell: right, down, diagonal coin.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodGrid = "Grid"
	minGridDim = 2

	// Diagonal shortcut probability.
	gridDiagonalProb = 0.3
)

// Grid returns a Constructor that builds a rows×cols lattice game.
func Grid(rows, cols int) Constructor {
	return func(g *game.Game, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}
		// Diagonal shortcut coins draw from the RNG.
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodGrid, ErrNeedRandSource)
		}

		// 1) Nodes row-major with checkerboard ownership; at(x,y) indexes them.
		ids := make([]string, rows*cols)
		at := func(x, y int) string { return ids[y*cols+x] }
		seq := idSequence(cfg)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				id := seq()
				ids[y*cols+x] = id
				label := fmt.Sprintf("(%d,%d)", x, y)
				if err := g.AddNode(id, label, (x+y)%playerCount); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, id, err)
				}
			}
		}

		// 2) Edges per cell: right, then down, then the diagonal coin.
		var (
			c   temporal.Constraint
			err error
		)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				cur := at(x, y)

				// Rightward movement; critical columns stay open.
				if x < cols-1 {
					c = temporal.Always()
					if x != 0 && x != cols-2 {
						var inner temporal.Constraint
						if inner, err = temporal.Mod(4, x%4); err != nil {
							return fmt.Errorf("%s: %w", methodGrid, err)
						}
						c = temporal.Not(inner)
					}
					if err = g.AddEdge(cur, at(x+1, y), c); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, cur, at(x+1, y), err)
					}
				}

				// Downward movement; critical rows stay open.
				if y < rows-1 {
					c = temporal.Always()
					if y != 0 && y != rows-2 {
						c = temporal.GreaterEq(y * 2)
					}
					if err = g.AddEdge(cur, at(x, y+1), c); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, cur, at(x, y+1), err)
					}
				}

				// Occasional diagonal shortcut under a strict gate.
				if x < cols-1 && y < rows-1 && cfg.rng.Float64() < gridDiagonalProb {
					var phase temporal.Constraint
					if phase, err = temporal.Mod(5, 0); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
					c = temporal.And(temporal.GreaterEq(3), phase)
					if err = g.AddEdge(cur, at(x+1, y+1), c); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, cur, at(x+1, y+1), err)
					}
				}
			}
		}

		// 3) Target: the bottom-right corner.
		corner := at(cols-1, rows-1)
		if err = g.MarkTarget(corner); err != nil {
			return fmt.Errorf("%s: MarkTarget(%s): %w", methodGrid, corner, err)
		}

		// Success: lattice fully constructed.
		return nil
	}
}
