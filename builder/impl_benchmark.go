// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// impl_benchmark.go — implementation of Benchmark(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes); cfg.rng required (ErrNeedRandSource).
//   • Fraction pairs validated against cfg (ErrBadFraction).
//   • Adds nodes via cfg.idFn in ascending index order; owners drawn uniform.
//   • Targets: uniform fraction from [targetLo,targetHi] of nodes, ≥ 1,
//     sampled without replacement.
//   • Edges: one guaranteed outgoing edge per node (uniform destination,
//     self-loops and parallel edges admitted), then extras up to
//     int(n·U(edgeLo,edgeHi)) total; every constraint drawn via
//     temporal.Synthesize(cfg.rng, cfg.weights).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n + E) where E = int(n·U(edgeLo,edgeHi)).
//   • Space: O(n) for the ID slice.
//
// Determinism:
//   • Fixed draw order: owners → target fraction → target sample →
//     edge factor → guaranteed edges → extra edges.
//   • Same seed and options ⇒ identical game.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/game"
	"github.com/katalvlaran/tempograph/temporal"
)

// File-local constants (no magic numbers; stable method tag for context).
const (
	methodBenchmark   = "Benchmark"
	minBenchmarkNodes = 2
)

// Benchmark returns a Constructor that builds an n-node benchmark-suite game.
func Benchmark(n int) Constructor {
	// Return a closure capturing n; BuildGame will pass (g,cfg).
	return func(g *game.Game, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < minBenchmarkNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodBenchmark, n, minBenchmarkNodes, ErrTooFewNodes)
		}
		// Every draw below needs the RNG; refuse to run without one.
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodBenchmark, ErrNeedRandSource)
		}
		// Both fraction pairs are consumed here; reject broken profiles.
		if err := validateTargetFraction(methodBenchmark, cfg); err != nil {
			return err
		}
		if err := validateEdgeFactor(methodBenchmark, cfg); err != nil {
			return err
		}

		// 1) Nodes with uniform random owners; labels default to the IDs.
		ids, err := addIndexedNodes(g, cfg, n, func(int) int { return cfg.rng.Intn(playerCount) }, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", methodBenchmark, err)
		}

		// 2) Target set: fraction draw, then sample without replacement.
		if err = markSampledTargets(g, cfg, ids); err != nil {
			return fmt.Errorf("%s: %w", methodBenchmark, err)
		}

		// 3) Total edge volume for this game.
		total := int(float64(n) * uniformIn(cfg.rng, cfg.edgeLo, cfg.edgeHi))

		// 4) Guaranteed outgoing edge per node (out-degree ≥ 1 by construction).
		var c temporal.Constraint
		for i := 0; i < n; i++ {
			dst := ids[cfg.rng.Intn(n)]
			if c, err = temporal.Synthesize(cfg.rng, cfg.weights); err != nil {
				return fmt.Errorf("%s: %w", methodBenchmark, err)
			}
			if err = g.AddEdge(ids[i], dst, c); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodBenchmark, ids[i], dst, err)
			}
		}

		// 5) Extra edges with uniform endpoints until the volume is reached.
		for k := n; k < total; k++ {
			src := ids[cfg.rng.Intn(n)]
			dst := ids[cfg.rng.Intn(n)]
			if c, err = temporal.Synthesize(cfg.rng, cfg.weights); err != nil {
				return fmt.Errorf("%s: %w", methodBenchmark, err)
			}
			if err = g.AddEdge(src, dst, c); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodBenchmark, src, dst, err)
			}
		}

		// Success: benchmark game fully constructed.
		return nil
	}
}
