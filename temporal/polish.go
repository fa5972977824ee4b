// SPDX-License-Identifier: MIT
// Package: tempograph/temporal
//
// polish.go - recursive-descent parser for the Polish constraint syntax.
//
// Grammar (fully parenthesized prefix):
//
//	formula := "(" "=" "t" INT ")"
//	         | "(" ">=" "t" INT ")"
//	         | "(" "<" "t" INT ")"
//	         | "(" "<=" "t" INT ")"
//	         | "(" "=" "(" "mod" "t" INT ")" INT ")"
//	         | "(" "not" formula ")"
//	         | "(" "and" formula formula ")"
//	         | "(" "or" formula formula ")"
//	         | "(" INT ("," INT)* ")"      // explicit time set
//	         | "(" formula ")"             // redundant wrapping, any depth
//
// Contract:
//   • Empty or all-whitespace input is Always (no constraint).
//   • Upstream generators sometimes emit one extra wrapping layer around a
//     recognized pattern; the "(" formula ")" production tolerates any depth.
//   • Anything else wraps ErrMalformed with the byte offset and the
//     offending token; productions are never guessed.
//   • The parser holds no state between calls: each ParsePolish call scans
//     its own input, so batch parsing is safe to parallelize caller-side.

package temporal

import (
	"fmt"
	"strconv"
	"strings"
)

const methodParse = "ParsePolish"

// ParsePolish parses text into a Constraint. Empty input (after trimming
// whitespace) parses to Always. Unrecognized input returns an error wrapping
// ErrMalformed; the Constraint result is the zero value in that case.
func ParsePolish(text string) (Constraint, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Always(), nil
	}

	sc := &polishScanner{src: trimmed}
	c, err := sc.formula()
	if err != nil {
		return Constraint{}, err
	}

	// The whole input must be one formula; trailing text is malformed.
	sc.skipSpace()
	if !sc.eof() {
		return Constraint{}, sc.errorf("trailing input %q", sc.rest())
	}

	return c, nil
}

// polishScanner is a cursor over one input string. It is created per call
// and never shared, keeping ParsePolish referentially transparent.
type polishScanner struct {
	src string
	pos int
}

// errorf builds a parse error carrying the current byte offset, wrapping
// ErrMalformed so callers can branch with errors.Is.
func (sc *polishScanner) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: offset %d: %s: %w", methodParse, sc.pos, fmt.Sprintf(format, args...), ErrMalformed)
}

func (sc *polishScanner) eof() bool { return sc.pos >= len(sc.src) }

// rest returns the unconsumed tail, clipped for error messages.
func (sc *polishScanner) rest() string {
	const clip = 24
	tail := sc.src[sc.pos:]
	if len(tail) > clip {
		return tail[:clip] + "..."
	}

	return tail
}

func (sc *polishScanner) peek() byte {
	if sc.eof() {
		return 0
	}

	return sc.src[sc.pos]
}

func (sc *polishScanner) skipSpace() {
	for !sc.eof() {
		switch sc.src[sc.pos] {
		case ' ', '\t', '\n', '\r':
			sc.pos++
		default:
			return
		}
	}
}

// expect consumes one byte b or fails.
func (sc *polishScanner) expect(b byte) error {
	if sc.eof() || sc.src[sc.pos] != b {
		return sc.errorf("expected %q, found %q", string(b), sc.rest())
	}
	sc.pos++

	return nil
}

// word consumes a run of lowercase letters ("t", "mod", "not", "and", "or").
func (sc *polishScanner) word() string {
	start := sc.pos
	for !sc.eof() {
		b := sc.src[sc.pos]
		if b < 'a' || b > 'z' {
			break
		}
		sc.pos++
	}

	return sc.src[start:sc.pos]
}

// keyword consumes exactly want or fails.
func (sc *polishScanner) keyword(want string) error {
	sc.skipSpace()
	at := sc.pos
	if got := sc.word(); got != want {
		sc.pos = at

		return sc.errorf("expected %q, found %q", want, sc.rest())
	}

	return nil
}

// integer consumes a decimal integer with an optional leading minus.
func (sc *polishScanner) integer() (int, error) {
	sc.skipSpace()
	start := sc.pos
	if !sc.eof() && sc.src[sc.pos] == '-' {
		sc.pos++
	}
	for !sc.eof() && sc.src[sc.pos] >= '0' && sc.src[sc.pos] <= '9' {
		sc.pos++
	}
	if sc.pos == start || sc.src[start:sc.pos] == "-" {
		sc.pos = start

		return 0, sc.errorf("expected integer, found %q", sc.rest())
	}
	n, err := strconv.Atoi(sc.src[start:sc.pos])
	if err != nil {
		sc.pos = start

		return 0, sc.errorf("integer %q out of range", sc.src[start:sc.pos])
	}

	return n, nil
}

// formula parses one production. The opening parenthesis dispatches on the
// first significant byte: an operator, a nested formula, or a digit run.
func (sc *polishScanner) formula() (Constraint, error) {
	sc.skipSpace()
	if err := sc.expect('('); err != nil {
		return Constraint{}, err
	}
	sc.skipSpace()

	switch b := sc.peek(); {
	case b == '=':
		sc.pos++

		return sc.equalityTail()
	case b == '>':
		sc.pos++
		if err := sc.expect('='); err != nil {
			return Constraint{}, err
		}

		return sc.comparisonTail(GreaterEqKind)
	case b == '<':
		sc.pos++
		kind := LessThanKind
		if sc.peek() == '=' {
			sc.pos++
			kind = LessEqKind
		}

		return sc.comparisonTail(kind)
	case b == '(':
		// Redundant extra wrapping: "(" formula ")". Recursion tolerates
		// any depth, matching what upstream generators are known to emit.
		inner, err := sc.formula()
		if err != nil {
			return Constraint{}, err
		}
		sc.skipSpace()
		if err = sc.expect(')'); err != nil {
			return Constraint{}, err
		}

		return inner, nil
	case b >= '0' && b <= '9':
		return sc.explicitSetTail()
	case b >= 'a' && b <= 'z':
		return sc.operatorTail()
	default:
		return Constraint{}, sc.errorf("unexpected %q after '('", sc.rest())
	}
}

// equalityTail finishes "= t INT )" or "= ( mod t INT ) INT )".
func (sc *polishScanner) equalityTail() (Constraint, error) {
	sc.skipSpace()
	if sc.peek() == '(' {
		// Modular form: = (mod t M) R
		sc.pos++
		if err := sc.keyword("mod"); err != nil {
			return Constraint{}, err
		}
		if err := sc.keyword("t"); err != nil {
			return Constraint{}, err
		}
		modulus, err := sc.integer()
		if err != nil {
			return Constraint{}, err
		}
		sc.skipSpace()
		if err = sc.expect(')'); err != nil {
			return Constraint{}, err
		}
		remainder, err := sc.integer()
		if err != nil {
			return Constraint{}, err
		}
		sc.skipSpace()
		if err = sc.expect(')'); err != nil {
			return Constraint{}, err
		}
		c, err := Mod(modulus, remainder)
		if err != nil {
			// Syntactically a modular condition, semantically out of
			// domain: still malformed input, not a caller bug.
			return Constraint{}, sc.errorf("mod t %d / %d: %v", modulus, remainder, err)
		}

		return c, nil
	}

	return sc.comparisonTail(EqKind)
}

// comparisonTail finishes "t INT )" for =, >=, < and <=.
func (sc *polishScanner) comparisonTail(kind Kind) (Constraint, error) {
	if err := sc.keyword("t"); err != nil {
		return Constraint{}, err
	}
	instant, err := sc.integer()
	if err != nil {
		return Constraint{}, err
	}
	sc.skipSpace()
	if err = sc.expect(')'); err != nil {
		return Constraint{}, err
	}

	switch kind {
	case EqKind:
		return Eq(instant), nil
	case GreaterEqKind:
		return GreaterEq(instant), nil
	case LessThanKind:
		return LessThan(instant), nil
	default:
		return LessEq(instant), nil
	}
}

// explicitSetTail finishes "INT ("," INT)* )".
func (sc *polishScanner) explicitSetTail() (Constraint, error) {
	var times []int
	for {
		t, err := sc.integer()
		if err != nil {
			return Constraint{}, err
		}
		times = append(times, t)
		sc.skipSpace()
		if sc.peek() != ',' {
			break
		}
		sc.pos++
	}
	sc.skipSpace()
	if err := sc.expect(')'); err != nil {
		return Constraint{}, err
	}
	c, err := Set(times...)
	if err != nil {
		return Constraint{}, sc.errorf("time set %v: %v", times, err)
	}

	return c, nil
}

// operatorTail finishes "not formula )", "and formula formula )" and
// "or formula formula )". Any other word is an unknown operator.
func (sc *polishScanner) operatorTail() (Constraint, error) {
	at := sc.pos
	switch op := sc.word(); op {
	case "not":
		inner, err := sc.formula()
		if err != nil {
			return Constraint{}, err
		}
		sc.skipSpace()
		if err = sc.expect(')'); err != nil {
			return Constraint{}, err
		}

		return Not(inner), nil
	case "and", "or":
		left, err := sc.formula()
		if err != nil {
			return Constraint{}, err
		}
		right, err := sc.formula()
		if err != nil {
			return Constraint{}, err
		}
		sc.skipSpace()
		if err = sc.expect(')'); err != nil {
			return Constraint{}, err
		}
		if op == "and" {
			return And(left, right), nil
		}

		return Or(left, right), nil
	default:
		sc.pos = at

		return Constraint{}, sc.errorf("unknown operator %q", op)
	}
}
