// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_racing.go — implementation of Racing(paths, pathLen) constructor.
//
// Contract:
//   • paths ≥ 1 and pathLen ≥ 2 (else ErrTooFewNodes); cfg.rng required.
//   • One shared start node (owner 0), then per path pathLen-1 intermediate
//     nodes (owners alternate (path+i+1) mod 2), then the goal (owner 0);
//     IDs run through a single cfg.idFn counter in that order.
//   • Path strategies: path 0 is fully unconstrained (the fast route);
//     path 1 is phase-locked (= (mod t 3) i mod 3) with a phase-2 finish;
//     later paths open after a per-path delay (>= t 2·path), mix free and
//     (not (= (mod t 4) 3)) middles, keep the next-to-last hop free, and
//     finish under (< t 20).
//   • For paths > 1 and pathLen > 2, one cross edge between two distinct
//     random paths at random interior positions, gated (= (mod t 5) 0).
//   • The goal is the target.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time/space: O(paths·pathLen) nodes and edges.
//
// Determinism:
//   • Fixed draw order: middle-edge coins path-major ascending, then the
//     cross-edge path pair and positions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodRacing   = "Racing"
	minRacingPaths = 1
	minRacingLen   = 2

	// Mixed-strategy middle edges: coin between free and blocked-phase.
	racingFreeProb = 0.5
	// Slow-path deadline: the goal hop must land before this instant.
	racingDeadline = 20
)

// Racing returns a Constructor that builds a multi-path racing game.
func Racing(paths, pathLen int) Constructor {
	return func(g *game.Game, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if paths < minRacingPaths || pathLen < minRacingLen {
			return fmt.Errorf("%s: paths=%d pathLen=%d < min=(%d,%d): %w",
				methodRacing, paths, pathLen, minRacingPaths, minRacingLen, ErrTooFewNodes)
		}
		// Middle-edge coins and the cross edge draw from the RNG.
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRacing, ErrNeedRandSource)
		}

		// 1) Nodes: shared start, per-path intermediates, shared goal.
		seq := idSequence(cfg)
		start := seq()
		if err := g.AddNode(start, "", playerReach); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodRacing, start, err)
		}
		lanes := make([][]string, paths)
		for p := 0; p < paths; p++ {
			lane := make([]string, 1, pathLen)
			lane[0] = start
			for i := 0; i < pathLen-1; i++ {
				id := seq()
				if err := g.AddNode(id, "", (p+i+1)%playerCount); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodRacing, id, err)
				}
				lane = append(lane, id)
			}
			lanes[p] = lane
		}
		goal := seq()
		if err := g.AddNode(goal, "", playerReach); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodRacing, goal, err)
		}

		// 2) Per-path edges, each lane with its own timing strategy.
		var (
			c   temporal.Constraint
			err error
		)
		for p, lane := range lanes {
			switch {
			case p == 0:
				// Fast route: always available end to end.
				for i := 0; i+1 < len(lane); i++ {
					if err = g.AddEdge(lane[i], lane[i+1], temporal.Always()); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRacing, lane[i], lane[i+1], err)
					}
				}
				if err = g.AddEdge(lane[len(lane)-1], goal, temporal.Always()); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRacing, lane[len(lane)-1], goal, err)
				}
			case p == 1:
				// Phase-locked route: each hop opens on its own residue mod 3.
				for i := 0; i+1 < len(lane); i++ {
					if c, err = temporal.Mod(3, i%3); err != nil {
						return fmt.Errorf("%s: %w", methodRacing, err)
					}
					if err = g.AddEdge(lane[i], lane[i+1], c); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRacing, lane[i], lane[i+1], err)
					}
				}
				if c, err = temporal.Mod(3, 2); err != nil {
					return fmt.Errorf("%s: %w", methodRacing, err)
				}
				if err = g.AddEdge(lane[len(lane)-1], goal, c); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRacing, lane[len(lane)-1], goal, err)
				}
			default:
				// Mixed-strategy route: delayed start, free or blocked middles,
				// free next-to-last hop, deadline finish.
				for i := 0; i+1 < len(lane); i++ {
					switch {
					case i == 0:
						c = temporal.GreaterEq(p * 2)
					case i == len(lane)-2:
						c = temporal.Always()
					default:
						c = temporal.Always()
						if cfg.rng.Float64() >= racingFreeProb {
							var inner temporal.Constraint
							if inner, err = temporal.Mod(4, 3); err != nil {
								return fmt.Errorf("%s: %w", methodRacing, err)
							}
							c = temporal.Not(inner)
						}
					}
					if err = g.AddEdge(lane[i], lane[i+1], c); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRacing, lane[i], lane[i+1], err)
					}
				}
				if err = g.AddEdge(lane[len(lane)-1], goal, temporal.LessThan(racingDeadline)); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRacing, lane[len(lane)-1], goal, err)
				}
			}
		}

		// 3) Cross edge between two distinct lanes at interior positions.
		if paths > 1 && pathLen > 2 {
			perm := cfg.rng.Perm(paths)
			from := lanes[perm[0]][intBetween(cfg.rng, 1, pathLen-2)]
			to := lanes[perm[1]][intBetween(cfg.rng, 1, pathLen-2)]
			if c, err = temporal.Mod(5, 0); err != nil {
				return fmt.Errorf("%s: %w", methodRacing, err)
			}
			if err = g.AddEdge(from, to, c); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRacing, from, to, err)
			}
		}

		// 4) Target: the shared goal.
		if err = g.MarkTarget(goal); err != nil {
			return fmt.Errorf("%s: MarkTarget(%s): %w", methodRacing, goal, err)
		}

		// Success: racing game fully constructed.
		return nil
	}
}
