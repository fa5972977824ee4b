// SPDX-License-Identifier: MIT
// Package: tempograph/temporal
//
// synth.go - randomized Constraint synthesis under a shape distribution.
//
// Contract:
//   • Randomness is explicit: Synthesize takes a caller-supplied *rand.Rand
//     and never touches package-level random state. Same rng stream and
//     weights ⇒ identical constraint.
//   • The AST is constructed first and text derived from it, so round-trip
//     fidelity through Polish()/ParsePolish is structural, never textual.
//   • Draw order is part of the contract: shape first, then that shape's
//     numeric parameters in the documented order below.
//   • Compound shapes draw their operands from the atomic portion of the
//     weight table (uniform over atomic shapes when that portion has no
//     positive mass), bounding tree depth at 2.
//
// Numeric domains:
//   • equality instant ∈ [0, 20]
//   • greater-equal instant ∈ [1, 15]
//   • less / less-equal instant ∈ [5, 25], strict vs inclusive by fair coin
//   • modulus ∈ [2, 8], remainder ∈ [0, modulus)
//   • explicit set: size ∈ [1, 6] drawn without replacement from [0, 30)

package temporal

import (
	"fmt"
	"math"
	"math/rand"
)

// File-local constants: method tag and numeric domains (no magic literals).
const (
	methodSynthesize = "Synthesize"

	eqInstantMax   = 20 // equality instant drawn from [0, eqInstantMax]
	geInstantMin   = 1  // greater-equal instant lower bound
	geInstantMax   = 15 // greater-equal instant upper bound
	lessInstantMin = 5  // less / less-equal instant lower bound
	lessInstantMax = 25 // less / less-equal instant upper bound
	modulusMin     = 2  // smallest admissible modulus
	modulusMax     = 8  // largest admissible modulus
	setSizeMax     = 6  // largest explicit-set cardinality
	setDomain      = 30 // explicit-set instants drawn from [0, setDomain)
)

// ShapeWeights is the probability table over constraint forms.
// Weights are relative, not normalized; negative, NaN or infinite entries
// are rejected, and at least one entry must be positive.
type ShapeWeights struct {
	Always      float64 // no constraint
	Equality    float64 // time == N
	Modulo      float64 // time % M == R
	GreaterEq   float64 // time >= N
	Less        float64 // time < N or time <= N (fair coin)
	ExplicitSet float64 // time ∈ {n1,...,nk}
	Conjunction float64 // and of two atomic draws
	Disjunction float64 // or of two atomic draws
	Negation    float64 // not of one atomic draw
}

// DefaultShapeWeights mirrors the benchmark distribution: simple shapes
// dominate, compounds are rare, explicit sets and negation are opt-in.
func DefaultShapeWeights() ShapeWeights {
	return ShapeWeights{
		Always:      0.30,
		Equality:    0.20,
		Modulo:      0.20,
		GreaterEq:   0.15,
		Less:        0.10,
		ExplicitSet: 0,
		Conjunction: 0.025,
		Disjunction: 0.025,
		Negation:    0,
	}
}

// shapeEntry pairs a Kind with its weight for cumulative draws.
type shapeEntry struct {
	kind   Kind
	weight float64
}

// table returns the full weight table in the fixed draw order.
func (w ShapeWeights) table() []shapeEntry {
	return []shapeEntry{
		{AlwaysKind, w.Always},
		{EqKind, w.Equality},
		{ModKind, w.Modulo},
		{GreaterEqKind, w.GreaterEq},
		{LessThanKind, w.Less},
		{SetKind, w.ExplicitSet},
		{AndKind, w.Conjunction},
		{OrKind, w.Disjunction},
		{NotKind, w.Negation},
	}
}

// atomicTable returns the non-compound portion (everything a compound
// operand may be) in the fixed draw order.
func (w ShapeWeights) atomicTable() []shapeEntry {
	return []shapeEntry{
		{EqKind, w.Equality},
		{ModKind, w.Modulo},
		{GreaterEqKind, w.GreaterEq},
		{LessThanKind, w.Less},
		{SetKind, w.ExplicitSet},
	}
}

// validate rejects weight tables the draw cannot use.
func (w ShapeWeights) validate() error {
	total := 0.0
	for _, e := range w.table() {
		if e.weight < 0 || math.IsNaN(e.weight) || math.IsInf(e.weight, 0) {
			return fmt.Errorf("%s: weight for %s is %v: %w", methodSynthesize, e.kind, e.weight, ErrBadWeights)
		}
		total += e.weight
	}
	if total <= 0 {
		return fmt.Errorf("%s: no positive weight: %w", methodSynthesize, ErrBadWeights)
	}

	return nil
}

// Synthesize draws one Constraint from the shape distribution w using rng.
// A nil rng is ErrNilRand; a weight table with no positive mass (or with
// negative/NaN/Inf entries) is ErrBadWeights.
func Synthesize(rng *rand.Rand, w ShapeWeights) (Constraint, error) {
	// 1) Validate inputs before consuming any randomness.
	if rng == nil {
		return Constraint{}, fmt.Errorf("%s: %w", methodSynthesize, ErrNilRand)
	}
	if err := w.validate(); err != nil {
		return Constraint{}, err
	}

	// 2) Draw the shape from the full table.
	switch kind := drawKind(rng, w.table()); kind {
	case AlwaysKind:
		return Always(), nil
	case AndKind:
		// 3) Compounds draw left then right from the atomic portion.
		left, err := synthesizeAtomic(rng, w)
		if err != nil {
			return Constraint{}, err
		}
		right, err := synthesizeAtomic(rng, w)
		if err != nil {
			return Constraint{}, err
		}

		return And(left, right), nil
	case OrKind:
		left, err := synthesizeAtomic(rng, w)
		if err != nil {
			return Constraint{}, err
		}
		right, err := synthesizeAtomic(rng, w)
		if err != nil {
			return Constraint{}, err
		}

		return Or(left, right), nil
	case NotKind:
		inner, err := synthesizeAtomic(rng, w)
		if err != nil {
			return Constraint{}, err
		}

		return Not(inner), nil
	default:
		return synthesizeKind(rng, kind)
	}
}

// synthesizeAtomic draws one non-compound constraint from the atomic portion
// of w, falling back to a uniform draw when that portion has no mass (a
// table may legitimately weight only compounds at the top level).
func synthesizeAtomic(rng *rand.Rand, w ShapeWeights) (Constraint, error) {
	entries := w.atomicTable()
	total := 0.0
	for _, e := range entries {
		total += e.weight
	}
	if total <= 0 {
		for i := range entries {
			entries[i].weight = 1
		}
	}

	return synthesizeKind(rng, drawKind(rng, entries))
}

// drawKind walks the cumulative distribution over entries. Entries with
// zero weight are never selected; the caller guarantees positive total.
func drawKind(rng *rand.Rand, entries []shapeEntry) Kind {
	total := 0.0
	for _, e := range entries {
		total += e.weight
	}
	r := rng.Float64() * total
	acc := 0.0
	last := entries[0].kind
	for _, e := range entries {
		if e.weight <= 0 {
			continue
		}
		acc += e.weight
		last = e.kind
		if r < acc {
			return e.kind
		}
	}

	// Float accumulation can leave r == acc at the boundary; the last
	// positive entry absorbs it.
	return last
}

// synthesizeKind draws the numeric parameters for one atomic shape.
func synthesizeKind(rng *rand.Rand, kind Kind) (Constraint, error) {
	switch kind {
	case EqKind:
		return Eq(rng.Intn(eqInstantMax + 1)), nil
	case GreaterEqKind:
		return GreaterEq(geInstantMin + rng.Intn(geInstantMax-geInstantMin+1)), nil
	case LessThanKind:
		// Instant first, then the strict-vs-inclusive coin.
		instant := lessInstantMin + rng.Intn(lessInstantMax-lessInstantMin+1)
		if rng.Intn(2) == 0 {
			return LessThan(instant), nil
		}

		return LessEq(instant), nil
	case ModKind:
		modulus := modulusMin + rng.Intn(modulusMax-modulusMin+1)

		return Mod(modulus, rng.Intn(modulus))
	case SetKind:
		size := 1 + rng.Intn(setSizeMax)

		return Set(rng.Perm(setDomain)[:size]...)
	default:
		return Constraint{}, fmt.Errorf("%s: no parameters for shape %s: %w", methodSynthesize, kind, ErrBadWeights)
	}
}
