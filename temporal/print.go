// SPDX-License-Identifier: MIT
// Package: tempograph/temporal
//
// print.go - the two concrete syntaxes of a Constraint.
//
// Contract:
//   • Polish and Infix are total: every Constraint value renders, including
//     the zero value (empty string).
//   • Printing is deterministic and side-effect free; repeated calls on the
//     same value yield byte-identical text.
//   • Polish output is re-parseable by ParsePolish for every value the
//     package can construct through its public constructors.
//
// Determinism:
//   • Emission order is structural (left before right, ascending instants).
//   • No locale, no padding, no trailing whitespace.

package temporal

import (
	"strconv"
	"strings"
)

// Polish renders the fully-parenthesized prefix syntax:
// (= t N), (>= t N), (< t N), (<= t N), (= (mod t M) R),
// (not F), (and F G), (or F G), (n1,n2,...) and "" for Always.
func (c Constraint) Polish() string {
	if c.kind == AlwaysKind {
		return ""
	}
	var sb strings.Builder
	writePolish(&sb, c)

	return sb.String()
}

// writePolish appends the Polish form of c to sb.
func writePolish(sb *strings.Builder, c Constraint) {
	switch c.kind {
	case AlwaysKind:
		// Nothing: Always has no textual form in either syntax.
	case EqKind:
		sb.WriteString("(= t ")
		sb.WriteString(strconv.Itoa(c.time))
		sb.WriteByte(')')
	case GreaterEqKind:
		sb.WriteString("(>= t ")
		sb.WriteString(strconv.Itoa(c.time))
		sb.WriteByte(')')
	case LessThanKind:
		sb.WriteString("(< t ")
		sb.WriteString(strconv.Itoa(c.time))
		sb.WriteByte(')')
	case LessEqKind:
		sb.WriteString("(<= t ")
		sb.WriteString(strconv.Itoa(c.time))
		sb.WriteByte(')')
	case ModKind:
		sb.WriteString("(= (mod t ")
		sb.WriteString(strconv.Itoa(c.modulus))
		sb.WriteString(") ")
		sb.WriteString(strconv.Itoa(c.remainder))
		sb.WriteByte(')')
	case SetKind:
		sb.WriteByte('(')
		for i, t := range c.times {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(t))
		}
		sb.WriteByte(')')
	case NotKind:
		sb.WriteString("(not ")
		writePolish(sb, c.Inner())
		sb.WriteByte(')')
	case AndKind:
		sb.WriteString("(and ")
		writePolish(sb, c.Left())
		sb.WriteByte(' ')
		writePolish(sb, c.Right())
		sb.WriteByte(')')
	case OrKind:
		sb.WriteString("(or ")
		writePolish(sb, c.Left())
		sb.WriteByte(' ')
		writePolish(sb, c.Right())
		sb.WriteByte(')')
	}
}

// Infix renders the C-like boolean/arithmetic expression syntax:
// time == N, time >= N, time < N, time <= N, time % M == R,
// !(F), (F) && (G), (F) || (G), time == n1 || time == n2 || ...
// and "" for Always.
func (c Constraint) Infix() string {
	if c.kind == AlwaysKind {
		return ""
	}
	var sb strings.Builder
	writeInfix(&sb, c)

	return sb.String()
}

// writeInfix appends the infix form of c to sb.
func writeInfix(sb *strings.Builder, c Constraint) {
	switch c.kind {
	case AlwaysKind:
		// Nothing: see writePolish.
	case EqKind:
		sb.WriteString("time == ")
		sb.WriteString(strconv.Itoa(c.time))
	case GreaterEqKind:
		sb.WriteString("time >= ")
		sb.WriteString(strconv.Itoa(c.time))
	case LessThanKind:
		sb.WriteString("time < ")
		sb.WriteString(strconv.Itoa(c.time))
	case LessEqKind:
		sb.WriteString("time <= ")
		sb.WriteString(strconv.Itoa(c.time))
	case ModKind:
		sb.WriteString("time % ")
		sb.WriteString(strconv.Itoa(c.modulus))
		sb.WriteString(" == ")
		sb.WriteString(strconv.Itoa(c.remainder))
	case SetKind:
		// Membership becomes a flat disjunction of equalities.
		for i, t := range c.times {
			if i > 0 {
				sb.WriteString(" || ")
			}
			sb.WriteString("time == ")
			sb.WriteString(strconv.Itoa(t))
		}
	case NotKind:
		sb.WriteString("!(")
		writeInfix(sb, c.Inner())
		sb.WriteByte(')')
	case AndKind:
		sb.WriteByte('(')
		writeInfix(sb, c.Left())
		sb.WriteString(") && (")
		writeInfix(sb, c.Right())
		sb.WriteByte(')')
	case OrKind:
		sb.WriteByte('(')
		writeInfix(sb, c.Left())
		sb.WriteString(") || (")
		writeInfix(sb, c.Right())
		sb.WriteByte(')')
	}
}
