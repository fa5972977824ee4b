// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes); cfg.rng required (ErrNeedRandSource).
//   • Nodes 0..n-1 via cfg.idFn, owners drawn uniform, labels "c0".."c{n-1}".
//   • Ring edges i → (i+1) mod n in ascending i; every ring edge is
//     constrained and NEVER Always (three-way draw: modular gate, spread-out
//     explicit set, or a compound form).
//   • Per node, in ascending i: a timing self-loop with probability 0.3 and,
//     for n > 3, a non-adjacent shortcut with probability 0.2.
//   • The last node is the target (ring edges keep out-degree ≥ 1 everywhere).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges (ring + expected 0.5n extras).
//   • Space: O(n) for the ID slice.
//
// Determinism:
//   • Fixed draw order: ring constraints ascending, then per-node
//     self-loop coin before shortcut coin.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3

	// Per-node extras.
	cycleSelfLoopProb = 0.3
	cycleShortcutProb = 0.2
	// Compound ring form: nested coin thresholds.
	cycleAndFormProb = 0.3
	cycleOrFormProb  = 0.6
)

// Cycle returns a Constructor that builds an n-node constrained ring.
func Cycle(n int) Constructor {
	return func(g *game.Game, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		// Ring constraints and extras all draw from the RNG.
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodCycle, ErrNeedRandSource)
		}

		// 1) Nodes with uniform random owners and positional labels.
		ids, err := addIndexedNodes(g, cfg, n,
			func(int) int { return cfg.rng.Intn(playerCount) },
			func(i int) string { return fmt.Sprintf("c%d", i) })
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		// 2) Ring edges: every edge constrained, three-way form draw.
		var c temporal.Constraint
		for i := 0; i < n; i++ {
			next := ids[(i+1)%n]
			if c, err = drawRingConstraint(cfg); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
			if err = g.AddEdge(ids[i], next, c); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, ids[i], next, err)
			}
		}

		// 3) Per-node extras: timing self-loops and non-adjacent shortcuts.
		for i := 0; i < n; i++ {
			// Self-loop opens every m-th step (phase 0) for a small modulus.
			if cfg.rng.Float64() < cycleSelfLoopProb {
				if c, err = temporal.Mod(intBetween(cfg.rng, 2, 4), 0); err != nil {
					return fmt.Errorf("%s: %w", methodCycle, err)
				}
				if err = g.AddEdge(ids[i], ids[i], c); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, ids[i], ids[i], err)
				}
			}

			// Shortcut to a node that is neither self nor a ring neighbour.
			if cfg.rng.Float64() < cycleShortcutProb && n > minCycleNodes {
				candidates := make([]string, 0, n-minCycleNodes)
				for j := 0; j < n; j++ {
					if j == i || j == (i+1)%n || j == (i-1+n)%n {
						continue
					}
					candidates = append(candidates, ids[j])
				}
				dst := candidates[cfg.rng.Intn(len(candidates))]
				if c, err = drawExplicitSet(cfg.rng, 15, 1, 3); err != nil {
					return fmt.Errorf("%s: %w", methodCycle, err)
				}
				if err = g.AddEdge(ids[i], dst, c); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, ids[i], dst, err)
				}
			}
		}

		// 4) Target: the last declared node.
		if err = g.MarkTarget(ids[n-1]); err != nil {
			return fmt.Errorf("%s: MarkTarget(%s): %w", methodCycle, ids[n-1], err)
		}

		// Success: ring fully constructed.
		return nil
	}
}

// drawRingConstraint draws one never-Always ring edge constraint:
// modular gate, spread-out explicit set, or a compound form.
func drawRingConstraint(cfg builderConfig) (temporal.Constraint, error) {
	switch cfg.rng.Intn(3) {
	case 0:
		// Modular gate with moduli up to 7 to desynchronize ring laps.
		return drawModEq(cfg.rng, 2, 7)
	case 1:
		// Spread-out instants: larger domain and cardinality than shortcuts.
		return drawExplicitSet(cfg.rng, 25, 2, 6)
	default:
		return drawRingCompound(cfg)
	}
}

// drawRingCompound draws the compound ring form via nested coins:
// and(mod, not mod) at cycleAndFormProb, same-modulus two-remainder or at
// cycleOrFormProb of the remainder, plain not-mod otherwise.
func drawRingCompound(cfg builderConfig) (temporal.Constraint, error) {
	if cfg.rng.Float64() < cycleAndFormProb {
		left, err := temporal.Mod(intBetween(cfg.rng, 2, 4), 0)
		if err != nil {
			return temporal.Always(), err
		}
		inner, err := temporal.Mod(intBetween(cfg.rng, 3, 5), 0)
		if err != nil {
			return temporal.Always(), err
		}

		return temporal.And(left, temporal.Not(inner)), nil
	}
	if cfg.rng.Float64() < cycleOrFormProb {
		// Same modulus, two distinct remainders.
		m := intBetween(cfg.rng, 2, 5)
		rems := cfg.rng.Perm(m)
		left, err := temporal.Mod(m, rems[0])
		if err != nil {
			return temporal.Always(), err
		}
		right, err := temporal.Mod(m, rems[1])
		if err != nil {
			return temporal.Always(), err
		}

		return temporal.Or(left, right), nil
	}
	inner, err := temporal.Mod(intBetween(cfg.rng, 3, 6), 0)
	if err != nil {
		return temporal.Always(), err
	}

	return temporal.Not(inner), nil
}
