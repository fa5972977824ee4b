// SPDX-License-Identifier: MIT
// Package: tempograph/temporal
//
// semantics.go - direct evaluation of a Constraint and the infix
// cross-check used by conversion tooling.
//
// Contract:
//   • HoldsAt is the reference semantics: total, pure, defined for every
//     integer t (negative instants use the canonical non-negative residue
//     for modular constraints).
//   • VerifyInfix compiles the printed infix text with expr-lang and
//     compares it against HoldsAt at every point of [0, horizon]; any
//     disagreement is a printer bug and wraps ErrMismatch.

package temporal

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
)

const methodVerify = "VerifyInfix"

// HoldsAt reports whether the constraint admits time step t.
func (c Constraint) HoldsAt(t int) bool {
	switch c.kind {
	case AlwaysKind:
		return true
	case EqKind:
		return t == c.time
	case GreaterEqKind:
		return t >= c.time
	case LessThanKind:
		return t < c.time
	case LessEqKind:
		return t <= c.time
	case ModKind:
		r := t % c.modulus
		if r < 0 {
			r += c.modulus
		}

		return r == c.remainder
	case SetKind:
		i := sort.SearchInts(c.times, t)

		return i < len(c.times) && c.times[i] == t
	case NotKind:
		return !c.Inner().HoldsAt(t)
	case AndKind:
		return c.Left().HoldsAt(t) && c.Right().HoldsAt(t)
	case OrKind:
		return c.Left().HoldsAt(t) || c.Right().HoldsAt(t)
	default:
		return false
	}
}

// VerifyInfix checks that the printed infix text and the constraint's own
// evaluation agree at every t in [0, horizon]. The infix string is compiled
// once with expr-lang and run per point with the time variable bound.
// Always (empty infix) verifies trivially. A compile or evaluation failure
// is returned as-is; a semantic disagreement wraps ErrMismatch.
func VerifyInfix(c Constraint, horizon int) error {
	source := c.Infix()
	if source == "" {
		// Always admits every instant; HoldsAt agrees by definition.
		return nil
	}

	env := map[string]interface{}{"time": 0}
	program, err := expr.Compile(source, expr.Env(env), expr.AsBool())
	if err != nil {
		return fmt.Errorf("%s: compile %q: %w", methodVerify, source, err)
	}

	for t := 0; t <= horizon; t++ {
		out, err := expr.Run(program, map[string]interface{}{"time": t})
		if err != nil {
			return fmt.Errorf("%s: eval %q at t=%d: %w", methodVerify, source, t, err)
		}
		got, ok := out.(bool)
		if !ok {
			return fmt.Errorf("%s: %q evaluated to %T, want bool: %w", methodVerify, source, out, ErrMismatch)
		}
		if want := c.HoldsAt(t); got != want {
			return fmt.Errorf("%s: %q disagrees at t=%d (infix=%v, constraint=%v): %w",
				methodVerify, source, t, got, want, ErrMismatch)
		}
	}

	return nil
}
