// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_chain.go — implementation of Chain(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes); cfg.rng required (ErrNeedRandSource).
//   • Nodes 0..n-1 via cfg.idFn, owners alternate i mod 2.
//   • The first min(3, n-1) chain edges are unconstrained so the target stays
//     reachable; each later chain edge is timed with probability 0.7 (fair
//     coin between a modular gate and a bounded and(>=,<=) window anchored
//     at the edge position).
//   • For n > 4: one shortcut edge (= (mod t 3) 1) from a random early node
//     to a node at least two steps later, and one timing self-loop
//     (= (mod t 2) 0) on a random interior node.
//   • The final node carries an Always self-loop (out-degree ≥ 1 everywhere)
//     and is the target.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges. Space: O(n) for the ID slice.
//
// Determinism:
//   • Fixed draw order: per-edge coins ascending, then shortcut endpoints,
//     then the self-loop position.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodChain   = "Chain"
	minChainNodes = 2

	// Unconstrained prefix length cap: the guaranteed path.
	chainFreePrefix = 3
	// Probability that a suffix edge is timed at all.
	chainTimedProb = 0.7
	// Fair coin between the modular gate and the bounded window.
	chainModularProb = 0.5
	// Window length bounds: end = 2i + U[5,15].
	chainWindowMin = 5
	chainWindowMax = 15
)

// Chain returns a Constructor that builds a guaranteed-reachable n-node chain.
func Chain(n int) Constructor {
	return func(g *game.Game, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}
		// Suffix coins and strategic placements draw from the RNG.
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodChain, ErrNeedRandSource)
		}

		// 1) Nodes with alternating ownership; labels default to the IDs.
		ids, err := addIndexedNodes(g, cfg, n, func(i int) int { return i % playerCount }, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", methodChain, err)
		}

		// 2) Guaranteed path: the first min(3, n-1) edges are unconstrained.
		prefix := chainFreePrefix
		if prefix > n-1 {
			prefix = n - 1
		}
		for i := 0; i < prefix; i++ {
			if err = g.AddEdge(ids[i], ids[i+1], temporal.Always()); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodChain, ids[i], ids[i+1], err)
			}
		}

		// 3) Timed suffix: each remaining chain edge is constrained with
		//    probability chainTimedProb, split between modular and window forms.
		var c temporal.Constraint
		for i := prefix; i < n-1; i++ {
			c = temporal.Always()
			if cfg.rng.Float64() < chainTimedProb {
				if cfg.rng.Float64() < chainModularProb {
					// Modular gate with a small modulus: open every m-th step.
					if c, err = drawModEq(cfg.rng, 2, 4); err != nil {
						return fmt.Errorf("%s: %w", methodChain, err)
					}
				} else {
					// Bounded window anchored at the edge position.
					start := i * 2
					end := start + intBetween(cfg.rng, chainWindowMin, chainWindowMax)
					c = temporal.And(temporal.GreaterEq(start), temporal.LessEq(end))
				}
			}
			if err = g.AddEdge(ids[i], ids[i+1], c); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodChain, ids[i], ids[i+1], err)
			}
		}

		// 4) Strategic extras for longer chains: one shortcut, one self-loop.
		if n > 4 {
			// Shortcut skips at least two positions; opens when t ≡ 1 (mod 3).
			ss := cfg.rng.Intn(n - 2)
			se := intBetween(cfg.rng, ss+2, n-1)
			if c, err = temporal.Mod(3, 1); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
			if err = g.AddEdge(ids[ss], ids[se], c); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodChain, ids[ss], ids[se], err)
			}

			// Interior self-loop lets its owner burn time on even steps.
			loop := intBetween(cfg.rng, 1, n-2)
			if c, err = temporal.Mod(2, 0); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
			if err = g.AddEdge(ids[loop], ids[loop], c); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodChain, ids[loop], ids[loop], err)
			}
		}

		// 5) Terminal node: Always self-loop keeps out-degree ≥ 1, then target.
		if err = g.AddEdge(ids[n-1], ids[n-1], temporal.Always()); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodChain, ids[n-1], ids[n-1], err)
		}
		if err = g.MarkTarget(ids[n-1]); err != nil {
			return fmt.Errorf("%s: MarkTarget(%s): %w", methodChain, ids[n-1], err)
		}

		// Success: chain fully constructed.
		return nil
	}
}
