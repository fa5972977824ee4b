// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGame(opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public shape factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuildOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical games.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGame to assemble layered fixtures deterministically.
//   - Use WithSeed(...) to freeze every stochastic draw (owners, constraints, topology).
//   - WithIDScheme(...)/WithStateIDs() align node IDs with the strategic-shape corpus.
//   - WithShapeWeights(...) retunes the constraint distribution for Benchmark/Dense.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tempograph/game"
)

// Constructor applies a deterministic game mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Thread every random draw through cfg.rng (ErrNeedRandSource when absent).
//   - Preserve determinism for the same config and call order.
//
// Rationale: isolates shape logic behind a uniform function type.
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *game.Game, cfg builderConfig) error

// BuildGame creates a new game.Game named per the resolved options and applies
// all constructors in order. Any constructor error is wrapped with the context
// "BuildGame: %w" and returned immediately; no partial cleanup is attempted.
//
// Rationale:
//   - Single public entry-point ensures consistent option resolution & error wrapping.
//   - Enforces deterministic composition order of constructors.
//
// Complexity:
//   - Resolving options: O(len(opts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewNodes, ErrNeedRandSource, ...) or the
//     game construction sentinels the shape forwarded.
func BuildGame(opts []BuildOption, cons ...Constructor) (*game.Game, error) {
	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(opts...)

	// Create the target game; empty cfg.name falls back to game.DefaultName.
	g := game.NewGame(cfg.name)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			// Use a sentinel that communicates construction failure; keep %w for Is().
			return nil, fmt.Errorf("BuildGame: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		// Execute the constructor. Implementations must not panic; they must return errors.
		if err := fn(g, cfg); err != nil {
			// Wrap once at the API boundary; inner layers have already added method context.
			return nil, fmt.Errorf("BuildGame: %w", err)
		}
	}

	// Success: return the fully constructed game (deterministic for equal inputs).
	return g, nil
}

// =============================================================================
// Shape factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add nodes via cfg.idFn in a stable, documented order.
//   - Emit edges in a stable, documented order (constraint draws included).
//   - Mark targets per the documented shape rule.
//   - Return only sentinel errors; NEVER panic at runtime.

// Benchmark builds the benchmark-suite random game: owners uniform, targets
// sampled per cfg target fraction, one guaranteed outgoing edge per node plus
// extras to n·U(edgeLo,edgeHi) total, constraints via cfg.weights.
// Complexity: O(n + E) where E ≈ n·edgeHi.
//func Benchmark(n int) Constructor

// Chain builds a guaranteed-reachable chain: an unconstrained prefix, a timed
// suffix, one shortcut and one timing self-loop for n > 4, an Always self-loop
// on the final node, final node target.
// Complexity: O(n) nodes + O(n) edges.
//func Chain(n int) Constructor

// Cycle builds a ring whose every edge is constrained (never Always), plus
// probabilistic timing self-loops and non-adjacent shortcuts; the last node
// is the target.
// Complexity: O(n) nodes + O(n) edges.
//func Cycle(n int) Constructor

// Tree builds a branching^level tree with per-edge constraints drawn from
// {always, modulo, explicit-set, compound}; deepest-level nodes are targets.
// Complexity: O(branching^depth) nodes and edges.
//func Tree(depth, branching int) Constructor

// Grid builds a rows×cols lattice with checkerboard ownership, critical
// unconstrained rows/columns, timed inner edges, probabilistic diagonal
// shortcuts, and the bottom-right corner as the target.
// Complexity: O(rows·cols) nodes + O(rows·cols) edges.
//func Grid(rows, cols int) Constructor

// Dense builds an ordered-pair random graph with inclusion probability
// min(0.3, 6/n) and constraints from a six-way menu; benchmark-style targets
// plus the last node (labelled "target").
// Complexity: O(n²) pair checks.
//func Dense(n int) Constructor

// Racing builds parallel start→goal paths with contrasting timing strategies
// and an optional cross edge; the goal is the target.
// Complexity: O(paths·pathLen) nodes and edges.
//func Racing(paths, pathLen int) Constructor

// Diamond builds the fixed five-node strategic diamond (fast risky route vs
// slow safe route, merge under time pressure); fully deterministic.
// Complexity: O(1).
//func Diamond() Constructor
