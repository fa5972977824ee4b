// Package temporal implements the constraint sub-language shared by the two
// temporal-game file formats: one immutable Constraint value type with one
// parser and two printers, replacing per-call-site pattern matching.
//
// The package offers the following key components:
//
//   - Constraint: a tagged variant over Always, Eq, GreaterEq, LessThan,
//     LessEq, Mod, Set, Not, And and Or. The zero value is Always. Values
//     are immutable; Mod and Set validate their domain, every other
//     constructor is total. FoldAnd/FoldOr reduce n-ary operand lists to
//     right-nested binary trees.
//   - ParsePolish: recursive-descent parser for the fully-parenthesized
//     prefix syntax, e.g. (= (mod t 3) 0). Redundant extra parenthesis
//     wrapping is tolerated to any depth; empty input is Always; anything
//     unrecognized wraps ErrMalformed with a byte offset.
//   - Polish/Infix: the two printers. Both are total, deterministic and
//     side-effect free; Always renders as the empty string in both.
//   - PolishToInfix / TranslateBatch: the only translation direction the
//     system needs (Polish → AST → Infix). Batch translation is per-item:
//     malformed items fall back to Always and surface as Warnings, never
//     as batch failures.
//   - Synthesize: randomized constraint generation under a ShapeWeights
//     distribution with an explicitly threaded *rand.Rand; deterministic
//     per seed.
//   - HoldsAt / VerifyInfix: reference evaluation at a time step, and an
//     expr-lang cross-check of printed infix text against that evaluation
//     over a bounded horizon.
//
// Guarantees:
//
//   - Round-trip: ParsePolish(c.Polish()) is structurally Equal to c for
//     every c this package can construct.
//   - No hidden state: parsing, printing and evaluation are referentially
//     transparent; synthesis consumes only the rng handed to it.
//   - Sentinel errors (ErrMalformed, ErrBadModulus, ErrBadTimeSet,
//     ErrNilRand, ErrBadWeights, ErrMismatch) matched with errors.Is.
package temporal
