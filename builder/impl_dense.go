// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_dense.go — implementation of Dense(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes); cfg.rng required (ErrNeedRandSource);
//     target fraction pair validated (ErrBadFraction).
//   • Nodes 0..n-1 via cfg.idFn, owners uniform; labels: node 0 "start",
//     node n-1 "target", interior nodes a three-way draw between "n{i}",
//     "state{i}" and a cycling lowercase letter.
//   • Every ordered pair (i,j), i≠j, is included with probability
//     min(0.3, 6/n); the constraint is a six-way uniform draw:
//     always | mod | explicit set | not-mod | or of two mods | and of two mods.
//   • Targets: benchmark-style sample over all nodes, plus the last node
//     (the one labelled "target") unconditionally.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n²) pair checks. Space: O(n) for the ID slice.
//
// Determinism:
//   • Fixed draw order: owners/labels ascending, pair coins row-major,
//     then target sampling.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodDense   = "Dense"
	minDenseNodes = 2

	// Inclusion probability cap and its density numerator: p = min(cap, 6/n).
	denseProbCap     = 0.3
	denseDegreeScale = 6.0
)

// Dense returns a Constructor that builds an n-node dense random game.
func Dense(n int) Constructor {
	return func(g *game.Game, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < minDenseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodDense, n, minDenseNodes, ErrTooFewNodes)
		}
		// Owners, labels, pair coins and constraints all draw from the RNG.
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodDense, ErrNeedRandSource)
		}
		// Target sampling consumes the fraction pair; reject broken profiles.
		if err := validateTargetFraction(methodDense, cfg); err != nil {
			return err
		}

		// 1) Nodes with uniform owners and varied labels.
		label := func(i int) string {
			switch {
			case i == 0:
				return "start"
			case i == n-1:
				return "target"
			default:
				switch cfg.rng.Intn(3) {
				case 0:
					return fmt.Sprintf("n%d", i)
				case 1:
					return fmt.Sprintf("state%d", i)
				default:
					return string(rune('a' + i%26))
				}
			}
		}
		ids, err := addIndexedNodes(g, cfg, n, func(int) int { return cfg.rng.Intn(playerCount) }, label)
		if err != nil {
			return fmt.Errorf("%s: %w", methodDense, err)
		}

		// 2) Ordered-pair edges; density shrinks with n to keep degree bounded.
		prob := denseProbCap
		if scaled := denseDegreeScale / float64(n); scaled < prob {
			prob = scaled
		}
		var c temporal.Constraint
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || cfg.rng.Float64() >= prob {
					continue
				}
				if c, err = drawDenseConstraint(cfg); err != nil {
					return fmt.Errorf("%s: %w", methodDense, err)
				}
				if err = g.AddEdge(ids[i], ids[j], c); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodDense, ids[i], ids[j], err)
				}
			}
		}

		// 3) Targets: benchmark-style sample plus the "target"-labelled node.
		if err = markSampledTargets(g, cfg, ids); err != nil {
			return fmt.Errorf("%s: %w", methodDense, err)
		}
		if err = g.MarkTarget(ids[n-1]); err != nil {
			return fmt.Errorf("%s: MarkTarget(%s): %w", methodDense, ids[n-1], err)
		}

		// Success: dense game fully constructed.
		return nil
	}
}

// drawDenseConstraint draws one dense edge constraint from the six-way menu.
func drawDenseConstraint(cfg builderConfig) (temporal.Constraint, error) {
	switch cfg.rng.Intn(6) {
	case 0:
		return temporal.Always(), nil
	case 1:
		// Modular gate with the widest modulus range of all shapes.
		return drawModEq(cfg.rng, 2, 8)
	case 2:
		// Explicit set over a per-edge random horizon.
		return drawExplicitSet(cfg.rng, intBetween(cfg.rng, 15, 30), 1, 5)
	case 3:
		inner, err := drawModEq(cfg.rng, 2, 6)
		if err != nil {
			return temporal.Always(), err
		}

		return temporal.Not(inner), nil
	case 4:
		left, err := drawModEq(cfg.rng, 2, 5)
		if err != nil {
			return temporal.Always(), err
		}
		right, err := drawModEq(cfg.rng, 2, 5)
		if err != nil {
			return temporal.Always(), err
		}

		return temporal.Or(left, right), nil
	default:
		left, err := drawModEq(cfg.rng, 2, 4)
		if err != nil {
			return temporal.Always(), err
		}
		right, err := drawModEq(cfg.rng, 3, 5)
		if err != nil {
			return temporal.Always(), err
		}

		return temporal.And(left, right), nil
	}
}
