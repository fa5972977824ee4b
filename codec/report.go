// SPDX-License-Identifier: MIT
// Package: tempograph/codec
//
// report.go - per-line bookkeeping for the readers.
//
// Contract:
//   - Reading a game file is never fatal to the file: every recoverable
//     problem becomes one LineError entry and the scan continues.
//   - Entries keep input order except target-directive failures, which
//     resolve after the scan (directives may precede the declarations they
//     reference) and are appended last.

package codec

import "fmt"

// LineError records one recoverable per-line failure. Err wraps the cause:
// ErrMalformedLine for unclassifiable lines, temporal.ErrMalformed for an
// unparseable constraint clause, or a game construction sentinel
// (game.ErrDuplicateNode, game.ErrNodeNotFound).
type LineError struct {
	Line int    // 1-based line number in the input
	Text string // the offending line, surrounding whitespace trimmed
	Err  error
}

// Error renders the entry as "line N: cause: "text"".
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap exposes the cause to errors.Is/errors.As.
func (e LineError) Unwrap() error { return e.Err }

// ReadReport aggregates the outcome of one ReadTG/ReadDOT call.
type ReadReport struct {
	Lines int // input lines scanned, blank and comment lines included
	Nodes int // node declarations admitted into the game
	Edges int // edge declarations admitted into the game

	// DroppedConstraints counts edges whose constraint text was not carried
	// into the model: every constraint attribute on a .dot edge (infix text
	// is never parsed back) and every unparseable Polish clause on a .tg
	// edge (replaced by the Always fallback).
	DroppedConstraints int

	Errors []LineError
}

// OK reports whether the read recorded no line errors. DroppedConstraints
// alone does not fail a report: dropping .dot constraint attributes is
// ReadDOT's documented behavior, not a defect of the input.
func (r ReadReport) OK() bool { return len(r.Errors) == 0 }
