// SPDX-License-Identifier: MIT
// Package: tempograph/temporal
//
// errors.go — sentinel errors for the temporal package.
//
// Error policy:
//   • Only package-level sentinel variables are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with fmt.Errorf("...: %w", ErrX),
//     prefixed by a stable method tag.
//   • No function in this package panics.

package temporal

import "errors"

// ErrMalformed indicates Polish text that matches no recognized grammar
// production. Recoverable: batch translation substitutes Always and
// records a warning instead of failing the batch.
// Usage: if errors.Is(err, ErrMalformed) { /* fall back to Always */ }.
var ErrMalformed = errors.New("temporal: malformed polish constraint")

// ErrBadModulus indicates a non-positive modulus or a remainder outside
// [0, modulus) passed to Mod.
// Usage: if errors.Is(err, ErrBadModulus) { /* fix the residue pair */ }.
var ErrBadModulus = errors.New("temporal: modulus/remainder out of domain")

// ErrBadTimeSet indicates an empty instant list or a negative instant
// passed to Set.
// Usage: if errors.Is(err, ErrBadTimeSet) { /* fix the instant list */ }.
var ErrBadTimeSet = errors.New("temporal: invalid explicit time set")

// ErrNilRand indicates a stochastic entry point (Synthesize) was called
// without a random source. Randomness is always threaded explicitly;
// there is no package-level fallback generator.
// Usage: if errors.Is(err, ErrNilRand) { /* supply rand.New(...) */ }.
var ErrNilRand = errors.New("temporal: rand source is required")

// ErrBadWeights indicates a shape weight table with negative, NaN or
// infinite entries, or with no positive mass to draw from.
// Usage: if errors.Is(err, ErrBadWeights) { /* fix ShapeWeights */ }.
var ErrBadWeights = errors.New("temporal: invalid shape weights")

// ErrMismatch indicates that printed infix text and the constraint's own
// evaluation disagreed at some horizon point during VerifyInfix.
// Usage: if errors.Is(err, ErrMismatch) { /* printer/semantics bug */ }.
var ErrMismatch = errors.New("temporal: infix semantics mismatch")
