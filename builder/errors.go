// SPDX-License-Identifier: MIT
// Package: tempograph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Shape constructors attach context using `%w` (method tag + parameters).
//   • Shape constructors MUST NOT panic at runtime; validation panics are
//     confined to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a numeric shape parameter (n, depth, rows, ...)
// is smaller than the allowed minimum for the requested constructor.
// Classification: validation error (parameters).
// Typical origins: Chain/Cycle/Tree/Grid/Dense/Racing/Benchmark size checks.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Diamond is the only fully deterministic shape; every other constructor draws.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadFraction indicates that a resolved fraction pair is outside its domain:
// target fraction bounds must satisfy 0 < lo ≤ hi ≤ 1, edge factor bounds
// must satisfy 0 < lo ≤ hi. The pairs arrive via WithTargetFraction and
// WithEdgeFactor, frequently sourced from profile files, so constructors
// validate the resolved config at run time instead of panicking in options.
// Usage: if errors.Is(err, ErrBadFraction) { /* fix the profile knobs */ }.
var ErrBadFraction = errors.New("builder: fraction out of range")

// ErrConstructFailed indicates that BuildGame was handed a nil constructor or
// a downstream game mutation failed (duplicate node from a colliding ID
// scheme, empty endpoint from a broken IDFn). Inner errors stay wrapped, so
// errors.Is also matches the underlying game sentinel when one exists.
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect the wrapped cause */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
