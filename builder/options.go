// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuildOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on programmer error (nil IDFn,
//     nil RNG). Value domains that may come from profile files (fractions,
//     factors, weights) are stored as-is and validated by the consuming
//     constructor, which returns a sentinel instead of panicking.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic shape constructors

	"github.com/katalvlaran/tempograph/temporal"
)

// BuildOption customizes the behavior of a constructor by mutating a
// builderConfig instance before game construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuildOption func(*builderConfig)

// WithIDScheme sets the deterministic node ID generator: idx -> string.
// Panics on nil to surface programmer error early and keep invariants tight.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn IDFn) BuildOption {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		// Assign the provided function; used by all shape constructors.
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic shape constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuildOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and fixtures to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuildOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible draws across the whole build.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithShapeWeights overrides the constraint shape distribution used wherever
// a constructor draws via temporal.Synthesize (Benchmark, Dense). The table
// is validated at draw time; a degenerate table surfaces as
// temporal.ErrBadWeights from BuildGame rather than a panic here, because
// weight tables are routinely sourced from profile files.
// Complexity: O(1) time, O(1) space.
func WithShapeWeights(w temporal.ShapeWeights) BuildOption {
	return func(c *builderConfig) {
		// Store the table by value; constructors pass it straight to Synthesize.
		c.weights = w
	}
}

// WithTargetFraction sets the benchmark target sampling bounds: the marked
// fraction is drawn uniformly from [lo, hi]. Values are stored as-is and
// validated by the consuming constructor (0 < lo ≤ hi ≤ 1, else
// ErrBadFraction), so profile-sourced pairs fail softly.
// Complexity: O(1) time, O(1) space.
func WithTargetFraction(lo, hi float64) BuildOption {
	return func(c *builderConfig) {
		c.targetLo, c.targetHi = lo, hi
	}
}

// WithEdgeFactor sets the benchmark edge volume bounds: total edges ≈
// n·U(lo, hi). Stored as-is; the consuming constructor validates
// (0 < lo ≤ hi, else ErrBadFraction).
// Complexity: O(1) time, O(1) space.
func WithEdgeFactor(lo, hi float64) BuildOption {
	return func(c *builderConfig) {
		c.edgeLo, c.edgeHi = lo, hi
	}
}

// WithGameName sets the name recorded on the built game (used by the DOT
// header and report lines). Empty keeps the game.DefaultName fallback.
// Complexity: O(1) time, O(1) space.
func WithGameName(name string) BuildOption {
	return func(c *builderConfig) {
		c.name = name
	}
}
