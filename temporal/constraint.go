// SPDX-License-Identifier: MIT
// Package: tempograph/temporal
//
// constraint.go - the Constraint value type, its constructors and
// structural equality.
//
// Contract:
//   • Constraint is an immutable value; the zero value is Always.
//   • Mod and Set validate their domain and return sentinel errors;
//     every other constructor is total.
//   • Set canonicalizes its instants (sorted ascending, deduplicated).
//   • FoldAnd/FoldOr reduce n-ary operand lists to right-nested trees.

package temporal

import (
	"fmt"
	"sort"
)

// Kind discriminates the constraint forms.
type Kind uint8

const (
	// AlwaysKind admits every time step (no constraint).
	AlwaysKind Kind = iota
	// EqKind admits exactly one instant: time == N.
	EqKind
	// GreaterEqKind admits time >= N.
	GreaterEqKind
	// LessThanKind admits time < N.
	LessThanKind
	// LessEqKind admits time <= N.
	LessEqKind
	// ModKind admits time % M == R.
	ModKind
	// SetKind admits membership in an explicit instant set.
	SetKind
	// NotKind negates its operand.
	NotKind
	// AndKind is binary conjunction.
	AndKind
	// OrKind is binary disjunction.
	OrKind
)

// String returns the lowercase shape name used in messages and profiles.
func (k Kind) String() string {
	switch k {
	case AlwaysKind:
		return "always"
	case EqKind:
		return "eq"
	case GreaterEqKind:
		return "greater_eq"
	case LessThanKind:
		return "less_than"
	case LessEqKind:
		return "less_eq"
	case ModKind:
		return "mod"
	case SetKind:
		return "set"
	case NotKind:
		return "not"
	case AndKind:
		return "and"
	case OrKind:
		return "or"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Constraint is a temporal availability predicate over a discrete time
// variable. Values are immutable once constructed; each node exclusively
// owns its children. The zero value is Always.
type Constraint struct {
	kind      Kind
	time      int   // EqKind, GreaterEqKind, LessThanKind, LessEqKind
	modulus   int   // ModKind
	remainder int   // ModKind
	times     []int // SetKind, sorted ascending, no duplicates
	left      *Constraint
	right     *Constraint
}

// File-local method tags for error context.
const (
	methodMod = "Mod"
	methodSet = "Set"
)

// Always returns the unconstrained predicate (identical to the zero value).
func Always() Constraint { return Constraint{} }

// Eq returns the predicate time == timeValue.
func Eq(timeValue int) Constraint { return Constraint{kind: EqKind, time: timeValue} }

// GreaterEq returns the predicate time >= timeValue.
func GreaterEq(timeValue int) Constraint { return Constraint{kind: GreaterEqKind, time: timeValue} }

// LessThan returns the predicate time < timeValue.
func LessThan(timeValue int) Constraint { return Constraint{kind: LessThanKind, time: timeValue} }

// LessEq returns the predicate time <= timeValue.
func LessEq(timeValue int) Constraint { return Constraint{kind: LessEqKind, time: timeValue} }

// Mod returns the predicate time % modulus == remainder.
// Requires modulus > 0 and 0 <= remainder < modulus, else ErrBadModulus.
func Mod(modulus, remainder int) (Constraint, error) {
	if modulus <= 0 {
		return Constraint{}, fmt.Errorf("%s: modulus=%d must be positive: %w", methodMod, modulus, ErrBadModulus)
	}
	if remainder < 0 || remainder >= modulus {
		return Constraint{}, fmt.Errorf("%s: remainder=%d outside [0,%d): %w", methodMod, remainder, modulus, ErrBadModulus)
	}
	return Constraint{kind: ModKind, modulus: modulus, remainder: remainder}, nil
}

// Set returns the predicate time ∈ times. The instants are copied,
// sorted ascending and deduplicated (canonical form, required for stable
// round-trips). The set must be non-empty and non-negative, else
// ErrBadTimeSet.
func Set(times ...int) (Constraint, error) {
	if len(times) == 0 {
		return Constraint{}, fmt.Errorf("%s: empty instant set: %w", methodSet, ErrBadTimeSet)
	}
	sorted := make([]int, len(times))
	copy(sorted, times)
	sort.Ints(sorted)
	if sorted[0] < 0 {
		return Constraint{}, fmt.Errorf("%s: negative instant %d: %w", methodSet, sorted[0], ErrBadTimeSet)
	}
	uniq := sorted[:1]
	for _, t := range sorted[1:] {
		if t != uniq[len(uniq)-1] {
			uniq = append(uniq, t)
		}
	}
	return Constraint{kind: SetKind, times: uniq}, nil
}

// Not returns the negation of inner.
func Not(inner Constraint) Constraint {
	in := inner
	return Constraint{kind: NotKind, left: &in}
}

// And returns the binary conjunction of left and right.
func And(left, right Constraint) Constraint {
	l, r := left, right
	return Constraint{kind: AndKind, left: &l, right: &r}
}

// Or returns the binary disjunction of left and right.
func Or(left, right Constraint) Constraint {
	l, r := left, right
	return Constraint{kind: OrKind, left: &l, right: &r}
}

// FoldAnd reduces operands into a right-nested binary conjunction.
// No operands fold to Always; a single operand folds to itself.
func FoldAnd(operands ...Constraint) Constraint {
	switch len(operands) {
	case 0:
		return Always()
	case 1:
		return operands[0]
	default:
		return And(operands[0], FoldAnd(operands[1:]...))
	}
}

// FoldOr reduces operands into a right-nested binary disjunction,
// mirroring FoldAnd.
func FoldOr(operands ...Constraint) Constraint {
	switch len(operands) {
	case 0:
		return Always()
	case 1:
		return operands[0]
	default:
		return Or(operands[0], FoldOr(operands[1:]...))
	}
}

// Kind reports which form this constraint is.
func (c Constraint) Kind() Kind { return c.kind }

// Time returns the comparison instant of Eq/GreaterEq/LessThan/LessEq.
func (c Constraint) Time() int { return c.time }

// Modulus returns the divisor of a ModKind constraint.
func (c Constraint) Modulus() int { return c.modulus }

// Remainder returns the residue of a ModKind constraint.
func (c Constraint) Remainder() int { return c.remainder }

// Times returns a copy of the instants of a SetKind constraint,
// sorted ascending.
func (c Constraint) Times() []int {
	if len(c.times) == 0 {
		return nil
	}
	out := make([]int, len(c.times))
	copy(out, c.times)
	return out
}

// Inner returns the operand of a NotKind constraint; Always otherwise.
func (c Constraint) Inner() Constraint {
	if c.left == nil {
		return Constraint{}
	}
	return *c.left
}

// Left returns the first operand of a binary constraint; Always otherwise.
func (c Constraint) Left() Constraint {
	if c.left == nil {
		return Constraint{}
	}
	return *c.left
}

// Right returns the second operand of a binary constraint; Always otherwise.
func (c Constraint) Right() Constraint {
	if c.right == nil {
		return Constraint{}
	}
	return *c.right
}

// Equal reports deep structural equality.
func (c Constraint) Equal(d Constraint) bool {
	if c.kind != d.kind {
		return false
	}
	switch c.kind {
	case AlwaysKind:
		return true
	case EqKind, GreaterEqKind, LessThanKind, LessEqKind:
		return c.time == d.time
	case ModKind:
		return c.modulus == d.modulus && c.remainder == d.remainder
	case SetKind:
		if len(c.times) != len(d.times) {
			return false
		}
		for i := range c.times {
			if c.times[i] != d.times[i] {
				return false
			}
		}
		return true
	case NotKind:
		return c.Inner().Equal(d.Inner())
	case AndKind, OrKind:
		return c.Left().Equal(d.Left()) && c.Right().Equal(d.Right())
	default:
		return false
	}
}

// String renders the Polish form (empty for Always); see Polish.
func (c Constraint) String() string { return c.Polish() }
