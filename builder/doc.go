// Package builder synthesizes temporal-reachability games from a library of
// topology shapes, using “functional-options”-style configuration shared by
// every constructor. It sits between temporal (constraint synthesis) and game
// (the model being built), keeping shape logic DRY, seedable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuildOption:       a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme, shape weights, fraction pairs.
//   - Node-ID schemes (IDFn implementations):
//     – VertexIDFn:        benchmark scheme "v0","v1",… (the default).
//     – StateIDFn:         strategic-shape scheme "s0","s1",….
//     – DefaultIDFn:       bare decimal strings "0","1",….
//     – PrefixIDFn:        arbitrary prefix + decimal index.
//   - Shape constructors (Constructor implementations, one impl_*.go each):
//     – Benchmark(n):      random game, guaranteed out-degree, sampled targets.
//     – Chain(n):          guaranteed-reachable chain with timed suffix.
//     – Cycle(n):          constrained ring with self-loops and shortcuts.
//     – Tree(d,b):         branching levels with a four-way constraint menu.
//     – Grid(r,c):         checkerboard lattice with critical open lanes.
//     – Dense(n):          ordered-pair random graph, six-way constraint menu.
//     – Racing(p,l):       parallel lanes racing toward a shared goal.
//     – Diamond():         fixed five-node strategic diamond.
//   - Orchestration:
//     – BuildGame(opts, cons...): resolve options once, run constructors in order.
//
// Guarantees:
//
//   - Determinism: identical options, seed, and constructor order produce an
//     identical game, node for node and edge for edge.
//   - Fast-fail on invalid option parameters via panics in option constructors
//     (nil IDFn, nil RNG); value domains that may arrive from profile files
//     (fractions, factors, weights) surface as sentinel errors instead.
//   - Structured runtime errors wrapping method tags for easy filtering;
//     constructors never panic.
//   - Out-degree ≥ 1 by construction for Benchmark, Chain, and Cycle games.
//
// See individual constructor documentation for detailed contracts, draw
// orders, and per-shape constraint menus.
package builder
