// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn       = VertexIDFn          ("v0","v1","v2",...)
//   • rng        = nil                  (stochastic shapes then refuse to run)
//   • weights    = DefaultShapeWeights  (benchmark constraint distribution)
//   • targetLo/Hi = 0.10 / 0.20         (benchmark target fraction bounds)
//   • edgeLo/Hi   = 1.5 / 3.0           (benchmark edge factor bounds)
//   • name       = ""                   (game.NewGame resolves the fallback)

package builder

import (
	"math/rand" // RNG for stochastic shape constructors

	"github.com/katalvlaran/tempograph/temporal"
)

// builderConfig aggregates all knobs used by shape constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness available”.
	rng *rand.Rand
	// Constraint shape distribution for temporal.Synthesize draws.
	weights temporal.ShapeWeights
	// Target fraction bounds for benchmark-style target sampling.
	targetLo, targetHi float64
	// Edge factor bounds: total edges ≈ n·U(edgeLo, edgeHi).
	edgeLo, edgeHi float64
	// Game name; empty delegates to game.DefaultName.
	name string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Fraction pairs are validated by the constructors that
// consume them (profile-sourced values must surface as errors, not panics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuildOption) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		idFn:     VertexIDFn,                    // "v0","v1","v2",...
		rng:      nil,                           // no RNG unless explicitly set
		weights:  temporal.DefaultShapeWeights(), // benchmark distribution
		targetLo: defaultTargetLo,               // 0.10
		targetHi: defaultTargetHi,               // 0.20
		edgeLo:   defaultEdgeLo,                 // 1.5
		edgeHi:   defaultEdgeHi,                 // 3.0
		name:     "",                            // resolved by game.NewGame
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}
